// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-media-keeper/internal/logger"
	"github.com/MKhiriev/go-media-keeper/internal/utils"
	"github.com/MKhiriev/go-media-keeper/internal/validators"
	"github.com/MKhiriev/go-media-keeper/models"
)

// maxJSONBodySize caps the body of every JSON route.
const maxJSONBodySize = 1 << 20

type bodyCtxKey[T any] struct{}

// validated decodes the JSON body into T, normalizes it when T implements
// [models.Normalizer] and validates it. The handler only runs for a valid
// body, which it reads back with [bodyFrom].
//
// An undecodable body is answered with 400 "invalid JSON body"; rule
// violations with 400 {"message":"validation failed","errors":[...]}.
func validated[T any](v validators.Validator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			var body T
			if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodySize)).Decode(&body); err != nil {
				log.Info().Err(err).Msg("request body is not valid JSON")
				writeError(w, r, ErrInvalidJSON)
				return
			}

			if n, ok := any(&body).(models.Normalizer); ok {
				n.Normalize()
			}

			ctx := r.Context()
			if err := v.Validate(ctx, body); err != nil {
				var verr *validators.ValidationError
				if !errors.As(err, &verr) {
					log.Err(err).Msg("request validation could not run")
					utils.WriteError(w, msgInternal, http.StatusInternalServerError)
					return
				}

				log.Info().Int("violations", len(verr.Fields)).Msg("request body failed validation")
				_, _ = utils.WriteJSON(w, models.ErrorResponse{
					Message: msgValidationFailed,
					Errors:  verr.Fields,
				}, http.StatusBadRequest)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, bodyCtxKey[T]{}, body)))
		})
	}
}

// bodyFrom returns the body stored by validated[T].
func bodyFrom[T any](r *http.Request) T {
	body, _ := r.Context().Value(bodyCtxKey[T]{}).(T)
	return body
}

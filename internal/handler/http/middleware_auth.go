// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-media-keeper/internal/logger"
	"github.com/MKhiriev/go-media-keeper/internal/utils"
	"github.com/MKhiriev/go-media-keeper/models"
)

// auth gates protected routes behind a bearer token.
//
// The "Authorization" header must read "Bearer <token>" and the token must
// pass [service.AuthService.ParseToken]. On success the caller's
// [models.Identity] is attached to the request context. Every failure is
// answered with the same 401 body; the reason is only logged.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Info().Err(err).Msg("request without a bearer token")
			utils.WriteError(w, msgUnauthorized, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Info().Err(err).Msg("bearer token rejected")
			utils.WriteError(w, msgUnauthorized, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}

// identityFrom returns the identity attached by [Handler.auth].
func identityFrom(r *http.Request) (models.Identity, error) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		return models.Identity{}, ErrMissingIdentity
	}
	return identity, nil
}

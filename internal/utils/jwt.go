// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-media-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// TokenParams configures issuing and verifying access tokens.
type TokenParams struct {
	// SignKey is the HMAC secret. Required.
	SignKey string
	// Issuer is written to and required on the "iss" claim when non-empty.
	Issuer string
	// Duration sets the "exp" claim; zero issues a token without expiry.
	Duration time.Duration
}

var validSigningMethods = []string{
	jwt.SigningMethodHS256.Alg(),
	jwt.SigningMethodHS384.Alg(),
	jwt.SigningMethodHS512.Alg(),
}

// GenerateJWTToken creates an HMAC-SHA256 signed token for the user.
//
// The token carries:
//   - sub   (numeric): the user ID
//   - email (string):  the user's email at issuance
//   - iat:             the current time
//   - iss, exp:        only when configured in params
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(42, "a@b.io", utils.TokenParams{SignKey: "secret", Duration: 24 * time.Hour})
func GenerateJWTToken(userID int64, email string, params TokenParams) (models.Token, error) {
	if params.SignKey == "" {
		return models.Token{}, errEmptySignKey
	}

	now := time.Now()
	claims := models.Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   params.Issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if params.Duration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(params.Duration))
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(params.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, Claims: claims}, nil
}

// ValidateAndParseJWTToken verifies tokenString and extracts the caller identity.
//
// Verification includes:
//   - signature check with an HMAC algorithm only
//   - exp and nbf checks when present
//   - iss check when params.Issuer is set
//   - payload shape: a positive integer "sub" and a string "email"
//
// Errors wrap one of [ErrTokenMalformed], [ErrTokenSignatureInvalid],
// [ErrTokenExpired] or [ErrTokenClaimsInvalid].
func ValidateAndParseJWTToken(tokenString string, params TokenParams) (models.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods(validSigningMethods),
		jwt.WithJSONNumber(),
	}
	if params.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(params.Issuer))
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(params.SignKey), nil
	}, opts...)
	if err != nil {
		return models.Identity{}, classifyTokenError(err)
	}

	return identityFromClaims(claims)
}

func identityFromClaims(claims jwt.MapClaims) (models.Identity, error) {
	sub, ok := claims["sub"].(json.Number)
	if !ok {
		return models.Identity{}, fmt.Errorf("%w: sub must be a number", ErrTokenClaimsInvalid)
	}

	userID, err := sub.Int64()
	if err != nil || userID <= 0 {
		return models.Identity{}, fmt.Errorf("%w: sub must be a positive integer", ErrTokenClaimsInvalid)
	}

	email, ok := claims["email"].(string)
	if !ok {
		return models.Identity{}, fmt.Errorf("%w: email must be a string", ErrTokenClaimsInvalid)
	}

	return models.Identity{UserID: userID, Email: email}, nil
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %w", ErrTokenSignatureInvalid, err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	default:
		return fmt.Errorf("%w: %w", ErrTokenClaimsInvalid, err)
	}
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	token, found := strings.CutPrefix(authorizationHeader, "Bearer ")
	token = strings.TrimSpace(token)
	if !found || token == "" || strings.Contains(token, " ") {
		return "", errInvalidAuthorizationHeader
	}

	return token, nil
}

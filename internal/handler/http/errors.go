// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors raised by the transport itself, before a service is called.
var (
	// ErrInvalidID is returned when an {id} path parameter is not a positive
	// integer.
	ErrInvalidID = errors.New("invalid id")

	// ErrMissingIdentity is returned when a protected handler runs without
	// the identity the auth middleware attaches.
	ErrMissingIdentity = errors.New("no identity in request context")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON body")
)

// Public messages of responses that are not derived from a service error.
const (
	msgUnauthorized     = "unauthorized"
	msgValidationFailed = "validation failed"
	msgTooManyRequests  = "too many requests, please try again later"
	msgNotFound         = "route not found"
	msgInternal         = "internal server error"
	msgPasswordChanged  = "password updated"
)

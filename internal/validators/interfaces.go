// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for request bodies.
//
// Rules are declared with `validate` struct tags on the models and enforced
// by [RequestValidator] on top of go-playground/validator. Failures are
// reported as a [*ValidationError] listing one message per failed field,
// keyed by the field's JSON name.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

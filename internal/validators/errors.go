package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-media-keeper/models"
)

var (
	ErrUnsupportedType  = errors.New("unsupported type for validation")
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError lists every failed rule of a single validated value.
// It matches [ErrValidationFailed] with errors.Is.
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, f.Message)
	}

	return ErrValidationFailed.Error() + ": " + strings.Join(messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

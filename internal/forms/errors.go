package forms

import (
	"errors"
	"strings"
)

var (
	ErrRequiredFields = errors.New("required fields are missing")
	ErrInvalidKey     = errors.New("id may not contain '.', '#', '$', '[', ']' or '/'")
)

// MissingFieldsError lists the required fields that were left empty, in form order.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldsError) Unwrap() error {
	return ErrRequiredFields
}

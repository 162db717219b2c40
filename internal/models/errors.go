package models

import (
	"errors"
	"strings"
)

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

func NewNotFound(resource string) error { return &NotFoundError{Resource: resource} }

// ValidationError carries a store or schema message verbatim to the client.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidation(msg string) error { return &ValidationError{Msg: msg} }

// AsValidation returns err unchanged when it is already typed, otherwise wraps its message.
func AsValidation(err error) error {
	if err == nil {
		return nil
	}
	var nf *NotFoundError
	var ve *ValidationError
	if errors.As(err, &nf) || errors.As(err, &ve) {
		return err
	}
	return &ValidationError{Msg: err.Error()}
}

type schemaErrors []string

func (s *schemaErrors) add(field, msg string) { *s = append(*s, field+": "+msg) }

func (s *schemaErrors) required(field string) {
	s.add(field, "Path `"+field+"` is required.")
}

func (s schemaErrors) err(model string) error {
	if len(s) == 0 {
		return nil
	}
	return &ValidationError{Msg: model + " validation failed: " + strings.Join(s, ", ")}
}

package core

import "github.com/pkg/errors"

// FieldError pins a validation failure to a single input field, named by the
// field's JSON tag.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is a domain rejection: the request was understood but its
// content is invalid. When Fields is populated the API layer renders it as a
// 400 with a field-to-message map.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{Err: err, Fields: flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// shutdown requests a graceful stop of the server. The HTTP error handler
// treats it as a signal, never as response content.
type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

// IsShutdown reports whether err, or its cause, requests a graceful shutdown.
func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}

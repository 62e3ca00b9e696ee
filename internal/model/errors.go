package model

import "errors"

// ValidationCode identifies a class of domain validation failure. The
// values double as API error codes.
type ValidationCode string

const (
	CodeEmptyTitle            ValidationCode = "EMPTY_TITLE"
	CodeNoQuestions           ValidationCode = "NO_QUESTIONS"
	CodeEmptyText             ValidationCode = "EMPTY_TEXT"
	CodeMissingOptions        ValidationCode = "MISSING_OPTIONS"
	CodeAnonymousNotAllowed   ValidationCode = "ANONYMOUS_NOT_ALLOWED"
	CodeMissingRequiredAnswer ValidationCode = "MISSING_REQUIRED_ANSWER"
	CodeKindMismatch          ValidationCode = "KIND_MISMATCH"
	CodeUnknownQuestion       ValidationCode = "UNKNOWN_QUESTION"
)

// ValidationError is a domain-level validation failure. Field names
// the offending input: a request field path for builder errors, a
// question id for answer errors.
type ValidationError struct {
	Code    ValidationCode
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(code ValidationCode, field, message string) *ValidationError {
	return &ValidationError{Code: code, Field: field, Message: message}
}

// AsValidationError unwraps err into a *ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

package errors

import (
	stderrors "errors"
	"net/http"
)

type Kind string

const (
	KindValidation    Kind = "validation"
	KindConflict      Kind = "conflict"
	KindNotFound      Kind = "not_found"
	KindAuthorization Kind = "authorization"
	KindUnauthorized  Kind = "unauthorized"
	KindInternal      Kind = "internal"
)

// CustomError is the single error type crossing layer boundaries. Code is the
// HTTP status the handler answers with.
type CustomError struct {
	Kind    Kind
	Code    int
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

// Retryable reports whether the caller may retry the same request later.
func (e *CustomError) Retryable() bool {
	return e.Kind == KindConflict
}

func ValidationError(msg string) error {
	return &CustomError{Kind: KindValidation, Code: http.StatusBadRequest, Message: msg}
}

func ConflictError(msg string) error {
	return &CustomError{Kind: KindConflict, Code: http.StatusConflict, Message: msg}
}

func NotFoundError(msg string) error {
	return &CustomError{Kind: KindNotFound, Code: http.StatusNotFound, Message: msg}
}

func AuthorizationError(msg string) error {
	return &CustomError{Kind: KindAuthorization, Code: http.StatusForbidden, Message: msg}
}

func BadRequest(msg string) error {
	return ValidationError(msg)
}

func UnauthorizedError(msg string) error {
	return &CustomError{Kind: KindUnauthorized, Code: http.StatusUnauthorized, Message: msg}
}

func InternalServerError(msg string) error {
	return &CustomError{Kind: KindInternal, Code: http.StatusInternalServerError, Message: msg}
}

// KindOf returns the kind of err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var ce *CustomError
	if stderrors.As(err, &ce) {
		return ce.Kind
	}
	return KindInternal
}

func IsValidation(err error) bool    { return KindOf(err) == KindValidation }
func IsConflict(err error) bool      { return KindOf(err) == KindConflict }
func IsNotFound(err error) bool      { return KindOf(err) == KindNotFound }
func IsAuthorization(err error) bool { return KindOf(err) == KindAuthorization }

// As unwraps err into a CustomError, wrapping foreign errors as internal.
func As(err error) *CustomError {
	var ce *CustomError
	if stderrors.As(err, &ce) {
		return ce
	}
	return &CustomError{Kind: KindInternal, Code: http.StatusInternalServerError, Message: err.Error()}
}

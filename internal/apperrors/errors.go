package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Outcome sentinels. Callers branch with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyStore   = errors.New("dataset not loaded")
)

// Kind names the outcome of a failed lookup.
type Kind string

const (
	KindNotFound     Kind = "NOT_FOUND"
	KindInvalidInput Kind = "INVALID_INPUT"
	KindEmptyStore   Kind = "EMPTY_STORE"
	KindInternal     Kind = "INTERNAL_ERROR"
)

// AppError is a failed lookup carrying a human-readable reason.
type AppError struct {
	Err        error             `json:"-"`
	Kind       Kind              `json:"code"`
	Message    string            `json:"message"`
	HTTPStatus int               `json:"-"`
	Details    map[string]string `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets an empty-store outcome also count as not found.
func (e *AppError) Is(target error) bool {
	return e.Kind == KindEmptyStore && target == ErrNotFound
}

// NotFound reports that a key resolved to zero rows.
func NotFound(resource, key string) *AppError {
	return &AppError{
		Err:        ErrNotFound,
		Kind:       KindNotFound,
		Message:    fmt.Sprintf("%s '%s' not found", resource, key),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]string{"resource": resource, "key": key},
	}
}

// NotFoundf reports a not-found outcome with a custom reason.
func NotFoundf(format string, args ...any) *AppError {
	return &AppError{
		Err:        ErrNotFound,
		Kind:       KindNotFound,
		Message:    fmt.Sprintf(format, args...),
		HTTPStatus: http.StatusNotFound,
	}
}

// InvalidInput reports a malformed argument or a key absent from the schema.
func InvalidInput(format string, args ...any) *AppError {
	return &AppError{
		Err:        ErrInvalidInput,
		Kind:       KindInvalidInput,
		Message:    fmt.Sprintf(format, args...),
		HTTPStatus: http.StatusBadRequest,
	}
}

// EmptyStore reports that the dataset behind a lookup was never loaded.
func EmptyStore(dataset string) *AppError {
	return &AppError{
		Err:        ErrEmptyStore,
		Kind:       KindEmptyStore,
		Message:    fmt.Sprintf("%s data not found", dataset),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]string{"dataset": dataset},
	}
}

// Internal wraps an unexpected failure.
func Internal(err error) *AppError {
	return &AppError{
		Err:        err,
		Kind:       KindInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
	}
}

// From converts any error into an AppError, wrapping unknown errors as internal.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// KindOf returns the outcome kind of err, or "OK" for nil.
func KindOf(err error) string {
	if err == nil {
		return "OK"
	}
	return string(From(err).Kind)
}

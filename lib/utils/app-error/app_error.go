// Package apperror classifies request failures into a small, role independent taxonomy.
package apperror

import (
	"net/http"

	"github.com/pkg/errors"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindPermissionDenied
	KindValidation
	KindConflict
	KindUnauthorized
)

var kindCodes = map[Kind]string{
	KindInternal:         "INTERNAL_ERROR",
	KindNotFound:         "NOT_FOUND",
	KindPermissionDenied: "PERMISSION_DENIED",
	KindValidation:       "VALIDATION_ERROR",
	KindConflict:         "CONFLICT",
	KindUnauthorized:     "UNAUTHORIZED",
}

var kindStatuses = map[Kind]int{
	KindInternal:         http.StatusInternalServerError,
	KindNotFound:         http.StatusNotFound,
	KindPermissionDenied: http.StatusForbidden,
	KindValidation:       http.StatusBadRequest,
	KindConflict:         http.StatusConflict,
	KindUnauthorized:     http.StatusUnauthorized,
}

func (k Kind) Code() string {
	return kindCodes[k]
}

func (k Kind) HTTPStatus() int {
	return kindStatuses[k]
}

type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Wrap keeps cause for logging; Message is what the caller sees.
func Wrap(kind Kind, cause error, message string) error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

func NotFound(message string) error {
	return New(KindNotFound, message)
}

func PermissionDenied(message string) error {
	return New(KindPermissionDenied, message)
}

func Validation(message string) error {
	return New(KindValidation, message)
}

func Conflict(message string) error {
	return New(KindConflict, message)
}

func Unauthorized(message string) error {
	return New(KindUnauthorized, message)
}

// KindOf returns KindInternal for anything not produced by this package.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// PublicMessage hides internal details from the caller.
func PublicMessage(err error, fallback string) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Message
	}
	return fallback
}

package domain

import (
	"errors"
	"net/http"
)

type ErrorCode string

const (
	ErrorCodeNotFound        ErrorCode = "NOT_FOUND"
	ErrorCodeAlreadySignedUp ErrorCode = "ALREADY_SIGNED_UP"
	ErrorCodeNotSignedUp     ErrorCode = "NOT_SIGNED_UP"
	ErrorCodeActivityFull    ErrorCode = "ACTIVITY_FULL"
	ErrorCodeValidation      ErrorCode = "VALIDATION_ERROR"
)

// DomainError is returned by services for failures the caller can act on.
// HTTPStatus and Message are surfaced to API clients as-is.
type DomainError struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
}

func (e *DomainError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func NewNotFound(msg string) *DomainError {
	return &DomainError{Code: ErrorCodeNotFound, Message: msg, HTTPStatus: http.StatusNotFound}
}

func NewValidation(msg string) *DomainError {
	return &DomainError{Code: ErrorCodeValidation, Message: msg, HTTPStatus: http.StatusUnprocessableEntity}
}

// HasCode reports whether err is a DomainError carrying code.
func HasCode(err error, code ErrorCode) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Code == code
}

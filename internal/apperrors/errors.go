// Package apperrors defines the typed failures shared by the service layer.
// Each error carries the HTTP status the handler layer should respond with.
package apperrors

import (
	"errors"
	"net/http"
)

// Error is a failure with an HTTP status attached. Values are compared with
// errors.Is, so services return the sentinels below directly.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrForbidden         = &Error{Status: http.StatusForbidden, Message: "forbidden"}
	ErrItemMissing       = &Error{Status: http.StatusNotFound, Message: "no item found"}
	ErrCategoryMissing   = &Error{Status: http.StatusNotFound, Message: "no category found"}
	ErrAddressMissing    = &Error{Status: http.StatusNotFound, Message: "no address found"}
	ErrOrderMissing      = &Error{Status: http.StatusNotFound, Message: "no order found"}
	ErrBranchMissing     = &Error{Status: http.StatusNotFound, Message: "no branch found"}
	ErrBranchUnavailable = &Error{Status: http.StatusNotFound, Message: "no open branch close to your location"}
)

// StatusOf returns the HTTP status carried by err, or 500 for anything that
// is not an *Error.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

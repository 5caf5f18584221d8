// Package failure carries the HTTP status an error should surface as.
// Anything that is not a *Failure is treated as an unexpected 500.
package failure

import (
	"errors"
	"fmt"
	"net/http"
)

type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`

	cause error
}

var (
	ForbiddenError   = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
	InvalidDockError = &Failure{Code: http.StatusBadRequest, Message: "dock number is not part of this facility"}
)

func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the error a Failure was built from, so errors.Is still sees driver errors.
func (e *Failure) Unwrap() error {
	return e.cause
}

func New(code int, message string) error {
	return &Failure{Code: code, Message: message}
}

func Newf(code int, format string, args ...any) error {
	return &Failure{Code: code, Message: fmt.Sprintf(format, args...)}
}

func wrap(code int, err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: code, Message: err.Error(), cause: err}
}

// BadRequest keeps err's text as the client message. A nil err stays nil.
func BadRequest(err error) error {
	return wrap(http.StatusBadRequest, err)
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return New(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) error {
	return New(http.StatusForbidden, msg)
}

func NotFound(msg string) error {
	return New(http.StatusNotFound, msg)
}

// Conflict is used for state races such as a dock claimed by someone else or a taken slot.
func Conflict(msg string) error {
	return New(http.StatusConflict, msg)
}

// Unprocessable is for well formed requests that the current state rejects, such as closing a closed visit.
func Unprocessable(msg string) error {
	return New(http.StatusUnprocessableEntity, msg)
}

func Unavailable(msg string) error {
	return New(http.StatusServiceUnavailable, msg)
}

// InternalError surfaces err's text with a 500. Use it only when the text is safe for clients.
func InternalError(err error) error {
	return wrap(http.StatusInternalServerError, err)
}

func IsCode(err error, code int) bool {
	var fail *Failure

	return errors.As(err, &fail) && fail.Code == code
}

// GetCode returns the status carried by err, or 500 for anything else.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

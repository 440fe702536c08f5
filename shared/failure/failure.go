package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

// Scheduling errors. Detail is attached by wrapping, e.g. fmt.Errorf("%w: ...", ErrPolicyViolation).
var (
	ErrResourceNotFound       = &Failure{Code: http.StatusNotFound, Message: "resource not found"}
	ErrRangeTooLarge          = &Failure{Code: http.StatusBadRequest, Message: "requested range is too large"}
	ErrPolicyViolation        = &Failure{Code: http.StatusUnprocessableEntity, Message: "booking policy violation"}
	ErrSlotNoLongerAvailable  = &Failure{Code: http.StatusConflict, Message: "slot is no longer available"}
	ErrCapacityExceeded       = &Failure{Code: http.StatusConflict, Message: "not enough capacity left for the requested quantity"}
	ErrReservationContended   = &Failure{Code: http.StatusServiceUnavailable, Message: "reservation is contended, retry shortly"}
	ErrInvalidTransition      = &Failure{Code: http.StatusConflict, Message: "invalid status transition"}
	ErrIdempotencyKeyMismatch = &Failure{Code: http.StatusUnprocessableEntity, Message: "idempotency key was used for a different request"}
)

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// Wrap attaches detail to one of the predefined failures while keeping errors.Is working.
func Wrap(base *Failure, format string, args ...any) error {
	return fmt.Errorf("%w: %s", base, fmt.Sprintf(format, args...))
}

// IsRetryable reports whether the caller should retry the same request later.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrReservationContended)
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

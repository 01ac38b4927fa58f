package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/workboard/internal/models"
)

var (
	// ErrInvalidInput marks input rejected before the store is touched
	ErrInvalidInput = errors.New("invalid input")

	// ErrUsage marks flag errors reported by cobra
	ErrUsage = errors.New("usage error")
)

// ResponseError reports a non-success repository outcome as an error so the
// command can exit with the matching code
type ResponseError struct {
	Response models.Response
	Entity   string
	ID       int
	Reason   string
}

// NewResponseError builds a ResponseError for entity id
func NewResponseError(resp models.Response, entity string, id int, reason string) *ResponseError {
	return &ResponseError{Response: resp, Entity: entity, ID: id, Reason: reason}
}

func (e *ResponseError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Entity, e.Response)
	if e.ID > 0 {
		msg = fmt.Sprintf("%s %d: %s", e.Entity, e.ID, e.Response)
	}
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

// Code returns the machine-readable error code used in JSON output
func (e *ResponseError) Code() string {
	switch e.Response {
	case models.Conflict:
		return "CONFLICT"
	case models.NotFound:
		return "NOT_FOUND"
	case models.BadRequest:
		return "BAD_REQUEST"
	default:
		return "UNEXPECTED_RESPONSE"
	}
}

// ExitCode returns the process exit code for the response
func (e *ResponseError) ExitCode() int {
	return ExitCodeForResponse(e.Response)
}

// reportedError wraps an error the formatter has already written out
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Reported marks err as already shown to the user
func Reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// IsReported reports whether err was already written by a formatter
func IsReported(err error) bool {
	var reported *reportedError
	return errors.As(err, &reported)
}

// ExitCode maps any command error to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var respErr *ResponseError
	switch {
	case errors.As(err, &respErr):
		return respErr.ExitCode()
	case errors.Is(err, ErrInvalidInput):
		return ExitValidation
	case errors.Is(err, ErrUsage):
		return ExitUsage
	default:
		return ExitError
	}
}

// errorCode returns the JSON error code for err
func errorCode(err error) string {
	var respErr *ResponseError
	switch {
	case errors.As(err, &respErr):
		return respErr.Code()
	case errors.Is(err, ErrInvalidInput):
		return "INVALID_INPUT"
	case errors.Is(err, ErrUsage):
		return "USAGE"
	default:
		return "ERROR"
	}
}

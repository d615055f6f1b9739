// Package response writes the catalog API's JSON responses. Successful
// responses carry the resource itself; failures carry an error envelope.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/agentstation/lensmap/pkg/errors"
)

// Envelope wraps an error body.
type Envelope struct {
	Error *Error `json:"error"`
}

// Error represents an API error with code, message, and optional details.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Fail creates an error envelope.
func Fail(code, message, details string) Envelope {
	return Envelope{
		Error: &Error{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// JSON writes v as JSON with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent, so an encoding failure cannot be reported.
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes data with 200 status.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// BadRequest writes a 400 error response.
func BadRequest(w http.ResponseWriter, message, details string) {
	JSON(w, http.StatusBadRequest, Fail("BAD_REQUEST", message, details))
}

// Unauthorized writes a 401 error response.
func Unauthorized(w http.ResponseWriter, message, details string) {
	JSON(w, http.StatusUnauthorized, Fail("UNAUTHORIZED", message, details))
}

// NotFound writes a 404 error response.
func NotFound(w http.ResponseWriter, message, details string) {
	JSON(w, http.StatusNotFound, Fail("NOT_FOUND", message, details))
}

// MethodNotAllowed writes a 405 error response.
func MethodNotAllowed(w http.ResponseWriter, method string) {
	JSON(w, http.StatusMethodNotAllowed, Fail(
		"METHOD_NOT_ALLOWED",
		"Method not allowed",
		"Method "+method+" is not supported for this endpoint",
	))
}

// RateLimited writes a 429 error response.
func RateLimited(w http.ResponseWriter, message string) {
	JSON(w, http.StatusTooManyRequests, Fail("RATE_LIMITED", "Rate limit exceeded", message))
}

// InternalError writes a 500 error response without exposing the cause.
func InternalError(w http.ResponseWriter, _ error) {
	JSON(w, http.StatusInternalServerError, Fail(
		"INTERNAL_ERROR",
		"Internal server error",
		"An unexpected error occurred",
	))
}

// BadGateway writes a 502 error response.
func BadGateway(w http.ResponseWriter, code, message string) {
	JSON(w, http.StatusBadGateway, Fail(code, message, ""))
}

// ServiceUnavailable writes a 503 error response.
func ServiceUnavailable(w http.ResponseWriter, message string) {
	JSON(w, http.StatusServiceUnavailable, Fail("SERVICE_UNAVAILABLE", "Service unavailable", message))
}

// ErrorFromType maps catalog errors to HTTP responses. The error code is
// the failure kind, so clients can classify without parsing messages.
func ErrorFromType(w http.ResponseWriter, err error) {
	if kind, ok := errors.KindOf(err); ok {
		message := errors.UserMessage(err, 0)
		switch kind {
		case errors.KindLensNotFound, errors.KindCameraNotFound, errors.KindRentalNotFound:
			JSON(w, http.StatusNotFound, Fail(string(kind), message, err.Error()))
		case errors.KindNetwork, errors.KindDataCorrupted:
			BadGateway(w, string(kind), message)
		default:
			JSON(w, http.StatusConflict, Fail(string(kind), err.Error(), ""))
		}
		return
	}
	if errors.IsValidationError(err) {
		BadRequest(w, err.Error(), "")
		return
	}
	InternalError(w, err)
}

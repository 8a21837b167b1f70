package dto

import "net/http"

// Error codes used across the API
const (
	// Client errors
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeNotFound   = "NOT_FOUND"

	// Domain errors
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeInvalidState  = "INVALID_STATE"
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeConflict      = "CONCURRENCY_CONFLICT"

	// Server errors
	ErrCodeInternal = "INTERNAL_ERROR"
)

// errorCodeHTTPStatus maps error codes to HTTP status codes.
// Everything the client could have fixed in the request body lands on 422,
// matching the semantic-failure contract of the API.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeBadRequest:    http.StatusBadRequest,
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeValidation:    http.StatusUnprocessableEntity,
	ErrCodeAlreadyExists: http.StatusUnprocessableEntity,
	ErrCodeInvalidState:  http.StatusUnprocessableEntity,
	ErrCodeInvalidInput:  http.StatusUnprocessableEntity,
	ErrCodeConflict:      http.StatusConflict,
	ErrCodeInternal:      http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes default to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// IsSemanticFailure reports whether an error code renders as a 422
// validation-style response rather than a single-message error.
func IsSemanticFailure(code string) bool {
	return GetHTTPStatus(code) == http.StatusUnprocessableEntity
}

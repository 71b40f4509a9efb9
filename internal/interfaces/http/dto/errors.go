package dto

import "net/http"

// Error codes used by the HTTP layer itself. Domain codes come from
// shared.DomainError and are mapped below.
const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeInvalidJSON  = "INVALID_JSON"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeUnauthorized = "UNAUTHORIZED"
)

// errorCodeHTTPStatus maps known error codes to HTTP status codes.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:    http.StatusInternalServerError,
	ErrCodeBadRequest:  http.StatusBadRequest,
	ErrCodeInvalidJSON: http.StatusBadRequest,

	"NOT_FOUND":           http.StatusNotFound,
	"ALREADY_EXISTS":      http.StatusConflict,
	"UNAUTHORIZED":        http.StatusUnauthorized,
	"FORBIDDEN":           http.StatusForbidden,
	"INVALID_STATE":       http.StatusUnprocessableEntity,
	"INTEGRITY_VIOLATION": http.StatusConflict,
	"RENDERING_DISABLED":  http.StatusServiceUnavailable,
}

// GetHTTPStatus returns the status for an error code. Codes not in the
// table are validation failures raised while normalizing loose input
// (INVALID_NAME, INVALID_DIRECTION, EMPTY_BATCH and friends), so the
// fallback is 400 rather than 500.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusBadRequest
}

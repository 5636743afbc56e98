package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"studyspaces/internal/domain"
)

// ErrorDetail is the machine-readable error payload of every non-2xx response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an ErrorDetail, matching {"error": {...}} on the wire.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// writeJSON encodes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a service error onto the wire: domain.ErrNotFound → 404,
// domain.ErrValidation → 422, anything else → 500 with a generic message so
// internals never leak to clients.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			Error: ErrorDetail{Code: "not_found", Message: unwrapMessage(err)},
		})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error: ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)},
		})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: ErrorDetail{Code: "internal_error", Message: "internal server error"},
		})
	}
}

// requestError writes a 422 for a bad request rejected before reaching the
// service layer (e.g. a missing query parameter).
func requestError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error: ErrorDetail{Code: "validation_error", Message: message},
	})
}

// unwrapMessage extracts the human-readable tail from a wrapped sentinel
// error, e.g. "service.AvailabilityService.AvailableRooms: validation error:
// day must be a weekday name" → "day must be a weekday name".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, sentinel := range []string{
		domain.ErrValidation.Error() + ": ",
		domain.ErrNotFound.Error(),
	} {
		if i := strings.LastIndex(msg, sentinel); i >= 0 {
			tail := msg[i+len(sentinel):]
			if tail == "" {
				return strings.TrimSuffix(sentinel, ": ")
			}
			return tail
		}
	}
	return msg
}

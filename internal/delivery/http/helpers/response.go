package helpers

import (
	"encoding/json"
	"errors"
	"net/http"

	"wemetstudio/internal/domain"
)

// Codes carried in APIError.Code.
const (
	ErrCodeBadRequest         = "bad_request"
	ErrCodeUnauthorized       = "unauthorized"
	ErrCodeNotFound           = "not_found"
	ErrCodeConflict           = "conflict"
	ErrCodeCatalogUnavailable = "catalog_unavailable"
	ErrCodeInternalError      = "internal_error"
)

const internalErrorMessage = "internal server error"

// APIError describes why a request failed.
// swagger:model APIError
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse wraps every JSON body. Exactly one of Data and Error is set.
// swagger:model APIResponse
type APIResponse struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

func writeEnvelope(w http.ResponseWriter, status int, body APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteJSONSuccess writes data inside the envelope.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	writeEnvelope(w, statusCode, APIResponse{Data: data})
}

// WriteJSONError writes an error envelope with a nil data field.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	writeEnvelope(w, statusCode, APIResponse{Error: &APIError{Code: code, Message: message}})
}

// StatusForError maps a domain error to its HTTP status and error code.
func StatusForError(err error) (int, string) {
	var loadErr *domain.CatalogLoadError
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, ErrCodeBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrCodeNotFound
	case errors.Is(err, domain.ErrNoActiveBooking):
		return http.StatusConflict, ErrCodeConflict
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusUnauthorized, ErrCodeUnauthorized
	case errors.As(err, &loadErr):
		return http.StatusServiceUnavailable, ErrCodeCatalogUnavailable
	default:
		return http.StatusInternalServerError, ErrCodeInternalError
	}
}

// WriteDomainError writes err using StatusForError. Unmapped errors are
// reported without their text.
func WriteDomainError(w http.ResponseWriter, err error) {
	status, code := StatusForError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = internalErrorMessage
	}
	WriteJSONError(w, status, code, msg)
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"pikalba/internal/middleware"
	"pikalba/internal/model"

	"github.com/rs/zerolog"
)

// idResponse is the body returned by every create operation.
type idResponse struct {
	ID string `json:"id"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already gone; nothing useful left to do.
		return
	}
}

// writeError writes a standardised error response.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	correlationID := middleware.RequestIDFromContext(r.Context())
	logger.Error().
		Str("error_code", code).
		Str("error", message).
		Int("status", status).
		Str("correlation_id", correlationID).
		Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: correlationID,
	})
}

// writeServiceError maps a service error onto the HTTP taxonomy:
// validation failures to 400, not-found to 404, anything else to a
// generic 500 that never leaks internals.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case model.ErrCodeNotFound:
			writeError(w, r, http.StatusNotFound, domainErr.Code, domainErr.Message, logger)
			return
		case model.ErrCodeValidation, model.ErrCodeInvalidJSON:
			writeError(w, r, http.StatusBadRequest, domainErr.Code, domainErr.Message, logger)
			return
		}
	}

	writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
}

// decodeJSON decodes the request body into v, mapping malformed payloads to
// the INVALID_JSON domain error.
func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "invalid request body")
	}
	return nil
}

package handler

import (
	"net/http"

	"pikalba/internal/store"

	"github.com/rs/zerolog"
)

// HealthHandler reports store connectivity. Diagnostic only.
type HealthHandler struct {
	store  store.Store
	logger zerolog.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(s store.Store, logger zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		store:  s,
		logger: logger.With().Str("handler", "health").Logger(),
	}
}

// healthResponse is the health probe body.
type healthResponse struct {
	Status      string   `json:"status"`
	Store       string   `json:"store"`
	Collections []string `json:"collections,omitempty"`
}

// Check handles GET /health requests.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp := healthResponse{Status: "ok", Store: "connected"}

	if err := h.store.Ping(r.Context()); err != nil {
		h.logger.Warn().Err(err).Msg("store ping failed")
		resp.Status = "degraded"
		resp.Store = "unavailable"
		writeJSON(w, http.StatusOK, resp)
		return
	}

	names, err := h.store.CollectionNames(r.Context())
	if err != nil {
		h.logger.Warn().Err(err).Msg("failed to list collections")
	} else {
		if len(names) > 10 {
			names = names[:10]
		}
		resp.Collections = names
	}

	writeJSON(w, http.StatusOK, resp)
}

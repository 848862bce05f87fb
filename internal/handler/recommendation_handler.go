package handler

import (
	"net/http"
	"strconv"
	"strings"

	"pikalba/internal/model"
	"pikalba/internal/service"

	"github.com/rs/zerolog"
)

// RecommendationHandler handles recommendation HTTP requests.
type RecommendationHandler struct {
	service service.RecommendationService
	logger  zerolog.Logger
}

// NewRecommendationHandler creates a new recommendation handler.
func NewRecommendationHandler(service service.RecommendationService, logger zerolog.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		service: service,
		logger:  logger.With().Str("handler", "recommendation").Logger(),
	}
}

// recommendationsResponse wraps the recommended products.
type recommendationsResponse struct {
	Items []model.Product `json:"items"`
}

// Recommend handles GET /api/recommendations/{sku} requests.
func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeValidation, "method not allowed", h.logger)
		return
	}

	sku := strings.TrimPrefix(r.URL.Path, "/api/recommendations/")
	if sku == "" || strings.Contains(sku, "/") {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeValidation, "sku is required", h.logger)
		return
	}

	var limit int64
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.ParseInt(limitStr, 10, 64)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeValidation, "invalid limit parameter", h.logger)
			return
		}
		limit = parsed
	}

	items, err := h.service.Recommend(r.Context(), sku, limit)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, recommendationsResponse{Items: items})
}

// Feedback handles POST /api/recommendations/feedback requests.
func (h *RecommendationHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeValidation, "method not allowed", h.logger)
		return
	}

	var feedback model.RecommendationFeedback
	if err := decodeJSON(r, &feedback); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	id, err := h.service.RecordFeedback(r.Context(), &feedback)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

package handler

import (
	"net/http"
	"strconv"

	"pikalba/internal/model"
	"pikalba/internal/repository"
	"pikalba/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles catalogue HTTP requests.
type ProductHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.CatalogService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products requests with category, free-text and
// limit filters.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeValidation, "method not allowed", h.logger)
		return
	}

	q := repository.ProductQuery{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("q"),
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.ParseInt(limitStr, 10, 64)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeValidation, "invalid limit parameter", h.logger)
			return
		}
		q.Limit = limit
	}

	products, err := h.service.List(r.Context(), q)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeValidation, "method not allowed", h.logger)
		return
	}

	var product model.Product
	if err := decodeJSON(r, &product); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	id, err := h.service.Create(r.Context(), &product)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

package handler

import (
	"net/http"
	"strings"

	"pikalba/internal/model"
	"pikalba/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Create handles POST /api/orders requests.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeValidation, "method not allowed", h.logger)
		return
	}

	var req model.CreateOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	receipt, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, receipt)
}

// Track handles GET /api/orders/track/{order_id} requests.
func (h *OrderHandler) Track(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeValidation, "method not allowed", h.logger)
		return
	}

	idFragment := strings.TrimPrefix(r.URL.Path, "/api/orders/track/")
	if idFragment == "" || strings.Contains(idFragment, "/") {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeValidation, "order ID is required", h.logger)
		return
	}

	order, err := h.service.Track(r.Context(), idFragment)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

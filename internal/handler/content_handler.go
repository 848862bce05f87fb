package handler

import (
	"net/http"
	"strconv"

	"pikalba/internal/model"
	"pikalba/internal/service"

	"github.com/rs/zerolog"
)

// ContentHandler handles blog, event, wishlist and newsletter HTTP requests.
type ContentHandler struct {
	service service.ContentService
	logger  zerolog.Logger
}

// NewContentHandler creates a new content handler.
func NewContentHandler(service service.ContentService, logger zerolog.Logger) *ContentHandler {
	return &ContentHandler{
		service: service,
		logger:  logger.With().Str("handler", "content").Logger(),
	}
}

// parseLimit reads the optional limit query parameter; ok is false when the
// parameter is present but malformed.
func (h *ContentHandler) parseLimit(w http.ResponseWriter, r *http.Request) (int64, bool) {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return 0, true
	}
	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeValidation, "invalid limit parameter", h.logger)
		return 0, false
	}
	return limit, true
}

// Blog handles GET and POST /api/blog requests.
func (h *ContentHandler) Blog(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		limit, ok := h.parseLimit(w, r)
		if !ok {
			return
		}
		posts, err := h.service.ListBlogPosts(r.Context(), limit)
		if err != nil {
			writeServiceError(w, r, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, posts)

	case http.MethodPost:
		var post model.BlogPost
		if err := decodeJSON(r, &post); err != nil {
			writeServiceError(w, r, err, h.logger)
			return
		}
		id, err := h.service.CreateBlogPost(r.Context(), &post)
		if err != nil {
			writeServiceError(w, r, err, h.logger)
			return
		}
		writeJSON(w, http.StatusCreated, idResponse{ID: id})

	default:
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeValidation, "method not allowed", h.logger)
	}
}

// Events handles GET and POST /api/events requests.
func (h *ContentHandler) Events(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		limit, ok := h.parseLimit(w, r)
		if !ok {
			return
		}
		events, err := h.service.ListEvents(r.Context(), limit)
		if err != nil {
			writeServiceError(w, r, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, events)

	case http.MethodPost:
		var event model.Event
		if err := decodeJSON(r, &event); err != nil {
			writeServiceError(w, r, err, h.logger)
			return
		}
		id, err := h.service.CreateEvent(r.Context(), &event)
		if err != nil {
			writeServiceError(w, r, err, h.logger)
			return
		}
		writeJSON(w, http.StatusCreated, idResponse{ID: id})

	default:
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeValidation, "method not allowed", h.logger)
	}
}

// Wishlist handles POST /api/wishlist requests.
func (h *ContentHandler) Wishlist(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeValidation, "method not allowed", h.logger)
		return
	}

	var wishlist model.Wishlist
	if err := decodeJSON(r, &wishlist); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	id, err := h.service.SaveWishlist(r.Context(), &wishlist)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

// Newsletter handles POST /api/newsletter requests.
func (h *ContentHandler) Newsletter(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeValidation, "method not allowed", h.logger)
		return
	}

	var signup model.Newsletter
	if err := decodeJSON(r, &signup); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	id, err := h.service.SubscribeNewsletter(r.Context(), &signup)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

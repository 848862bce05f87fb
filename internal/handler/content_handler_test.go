package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pikalba/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContentHandler_Blog_Get(t *testing.T) {
	svc := new(MockContentService)
	h := NewContentHandler(svc, zerolog.Nop())

	svc.On("ListBlogPosts", mock.Anything, int64(5)).
		Return([]model.BlogPost{{Title: "Choosing a paddle", Slug: "choosing-a-paddle"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/blog?limit=5", nil)
	rec := httptest.NewRecorder()
	h.Blog(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var posts []model.BlogPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "choosing-a-paddle", posts[0].Slug)
}

func TestContentHandler_Blog_Post(t *testing.T) {
	svc := new(MockContentService)
	h := NewContentHandler(svc, zerolog.Nop())

	svc.On("CreateBlogPost", mock.Anything, mock.Anything).Return("post-1", nil)

	body := `{"title": "Choosing a paddle", "slug": "choosing-a-paddle", "content": "..."}`
	req := httptest.NewRequest(http.MethodPost, "/api/blog", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Blog(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp idResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "post-1", resp.ID)
}

func TestContentHandler_Blog_InvalidLimit(t *testing.T) {
	svc := new(MockContentService)
	h := NewContentHandler(svc, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/blog?limit=many", nil)
	rec := httptest.NewRecorder()
	h.Blog(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "ListBlogPosts", mock.Anything, mock.Anything)
}

func TestContentHandler_Blog_MethodNotAllowed(t *testing.T) {
	svc := new(MockContentService)
	h := NewContentHandler(svc, zerolog.Nop())

	req := httptest.NewRequest(http.MethodDelete, "/api/blog", nil)
	rec := httptest.NewRecorder()
	h.Blog(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestContentHandler_Events_Get(t *testing.T) {
	svc := new(MockContentService)
	h := NewContentHandler(svc, zerolog.Nop())

	svc.On("ListEvents", mock.Anything, int64(0)).
		Return([]model.Event{{
			Title:    "Spring Open",
			Date:     time.Date(2026, 4, 18, 9, 0, 0, 0, time.UTC),
			Location: "Austin, TX",
		}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()
	h.Events(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var events []model.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "Spring Open", events[0].Title)
}

func TestContentHandler_Events_Post(t *testing.T) {
	svc := new(MockContentService)
	h := NewContentHandler(svc, zerolog.Nop())

	svc.On("CreateEvent", mock.Anything, mock.Anything).Return("ev-1", nil)

	body := `{"title": "Spring Open", "date": "2026-04-18T09:00:00Z", "location": "Austin, TX"}`
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Events(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestContentHandler_Wishlist(t *testing.T) {
	svc := new(MockContentService)
	h := NewContentHandler(svc, zerolog.Nop())

	var received *model.Wishlist
	svc.On("SaveWishlist", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			received = args.Get(1).(*model.Wishlist)
		}).
		Return("wl-1", nil)

	body := `{"user_id": "u-42", "skus": ["PB-001", "PB-014"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/wishlist", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Wishlist(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, received)
	assert.Equal(t, []string{"PB-001", "PB-014"}, received.SKUs)
}

func TestContentHandler_Wishlist_MethodNotAllowed(t *testing.T) {
	svc := new(MockContentService)
	h := NewContentHandler(svc, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/wishlist", nil)
	rec := httptest.NewRecorder()
	h.Wishlist(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestContentHandler_Newsletter(t *testing.T) {
	svc := new(MockContentService)
	h := NewContentHandler(svc, zerolog.Nop())

	svc.On("SubscribeNewsletter", mock.Anything, mock.Anything).Return("nl-1", nil)

	body := `{"email": "fan@example.com", "source": "footer"}`
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Newsletter(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestContentHandler_Newsletter_InvalidEmail(t *testing.T) {
	svc := new(MockContentService)
	h := NewContentHandler(svc, zerolog.Nop())

	svc.On("SubscribeNewsletter", mock.Anything, mock.Anything).
		Return("", model.NewValidationError("invalid email address"))

	body := `{"email": "not-an-email"}`
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Newsletter(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

package service

import (
	"context"
	"testing"
	"time"

	"pikalba/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockContentRepository is a mock implementation of ContentRepository.
type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) ListBlogPosts(ctx context.Context, limit int64) ([]model.BlogPost, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BlogPost), args.Error(1)
}

func (m *MockContentRepository) CreateBlogPost(ctx context.Context, p *model.BlogPost) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

func (m *MockContentRepository) ListEvents(ctx context.Context, limit int64) ([]model.Event, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Event), args.Error(1)
}

func (m *MockContentRepository) CreateEvent(ctx context.Context, e *model.Event) (string, error) {
	args := m.Called(ctx, e)
	return args.String(0), args.Error(1)
}

func (m *MockContentRepository) CreateWishlist(ctx context.Context, w *model.Wishlist) (string, error) {
	args := m.Called(ctx, w)
	return args.String(0), args.Error(1)
}

func (m *MockContentRepository) CreateNewsletter(ctx context.Context, n *model.Newsletter) (string, error) {
	args := m.Called(ctx, n)
	return args.String(0), args.Error(1)
}

func TestContentService_ListBlogPosts_DefaultAndClampedLimits(t *testing.T) {
	tests := []struct {
		name      string
		requested int64
		expected  int64
	}{
		{name: "Zero uses default", requested: 0, expected: 20},
		{name: "Negative uses default", requested: -3, expected: 20},
		{name: "Oversized is clamped", requested: 1000, expected: 100},
		{name: "In range passes through", requested: 7, expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contentRepo := new(MockContentRepository)
			svc := NewContentService(contentRepo, zerolog.Nop())

			contentRepo.On("ListBlogPosts", mock.Anything, tt.expected).
				Return([]model.BlogPost{}, nil)

			_, err := svc.ListBlogPosts(context.Background(), tt.requested)
			require.NoError(t, err)
			contentRepo.AssertExpectations(t)
		})
	}
}

func TestContentService_CreateBlogPost_DefaultsPublished(t *testing.T) {
	contentRepo := new(MockContentRepository)
	svc := NewContentService(contentRepo, zerolog.Nop())

	var stored *model.BlogPost
	contentRepo.On("CreateBlogPost", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*model.BlogPost)
		}).
		Return("post-1", nil)

	id, err := svc.CreateBlogPost(context.Background(), &model.BlogPost{
		Title:   "Choosing a paddle",
		Slug:    "choosing-a-paddle",
		Content: "Weight and grip size matter more than brand.",
	})
	require.NoError(t, err)
	assert.Equal(t, "post-1", id)

	require.NotNil(t, stored.Published)
	assert.True(t, *stored.Published)
	assert.NotNil(t, stored.Tags)
}

func TestContentService_CreateBlogPost_MissingSlug(t *testing.T) {
	contentRepo := new(MockContentRepository)
	svc := NewContentService(contentRepo, zerolog.Nop())

	_, err := svc.CreateBlogPost(context.Background(), &model.BlogPost{
		Title:   "Untitled",
		Content: "body",
	})
	require.Error(t, err)

	var domainErr *model.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, model.ErrCodeValidation, domainErr.Code)
	contentRepo.AssertNotCalled(t, "CreateBlogPost", mock.Anything, mock.Anything)
}

func TestContentService_ListEvents_LimitClamped(t *testing.T) {
	contentRepo := new(MockContentRepository)
	svc := NewContentService(contentRepo, zerolog.Nop())

	contentRepo.On("ListEvents", mock.Anything, int64(200)).
		Return([]model.Event{}, nil)

	_, err := svc.ListEvents(context.Background(), 9999)
	require.NoError(t, err)
	contentRepo.AssertExpectations(t)
}

func TestContentService_CreateEvent(t *testing.T) {
	contentRepo := new(MockContentRepository)
	svc := NewContentService(contentRepo, zerolog.Nop())

	event := &model.Event{
		Title:    "Spring Open",
		Date:     time.Date(2026, 4, 18, 9, 0, 0, 0, time.UTC),
		Location: "Austin, TX",
	}
	contentRepo.On("CreateEvent", mock.Anything, event).Return("ev-1", nil)

	id, err := svc.CreateEvent(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, "ev-1", id)
}

func TestContentService_CreateEvent_MissingDate(t *testing.T) {
	contentRepo := new(MockContentRepository)
	svc := NewContentService(contentRepo, zerolog.Nop())

	_, err := svc.CreateEvent(context.Background(), &model.Event{
		Title:    "Spring Open",
		Location: "Austin, TX",
	})
	require.Error(t, err)
	contentRepo.AssertNotCalled(t, "CreateEvent", mock.Anything, mock.Anything)
}

func TestContentService_SaveWishlist_NilSKUsBecomesEmpty(t *testing.T) {
	contentRepo := new(MockContentRepository)
	svc := NewContentService(contentRepo, zerolog.Nop())

	var stored *model.Wishlist
	contentRepo.On("CreateWishlist", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*model.Wishlist)
		}).
		Return("wl-1", nil)

	_, err := svc.SaveWishlist(context.Background(), &model.Wishlist{UserID: "u-42"})
	require.NoError(t, err)
	require.NotNil(t, stored.SKUs)
	assert.Empty(t, stored.SKUs)
}

func TestContentService_SaveWishlist_MissingUser(t *testing.T) {
	contentRepo := new(MockContentRepository)
	svc := NewContentService(contentRepo, zerolog.Nop())

	_, err := svc.SaveWishlist(context.Background(), &model.Wishlist{SKUs: []string{"PB-001"}})
	require.Error(t, err)
	contentRepo.AssertNotCalled(t, "CreateWishlist", mock.Anything, mock.Anything)
}

func TestContentService_SubscribeNewsletter(t *testing.T) {
	contentRepo := new(MockContentRepository)
	svc := NewContentService(contentRepo, zerolog.Nop())

	signup := &model.Newsletter{Email: "fan@example.com", Source: "footer"}
	contentRepo.On("CreateNewsletter", mock.Anything, signup).Return("nl-1", nil)

	id, err := svc.SubscribeNewsletter(context.Background(), signup)
	require.NoError(t, err)
	assert.Equal(t, "nl-1", id)
}

func TestContentService_SubscribeNewsletter_InvalidEmail(t *testing.T) {
	contentRepo := new(MockContentRepository)
	svc := NewContentService(contentRepo, zerolog.Nop())

	_, err := svc.SubscribeNewsletter(context.Background(), &model.Newsletter{Email: "not-an-email"})
	require.Error(t, err)

	var domainErr *model.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, model.ErrCodeValidation, domainErr.Code)
	contentRepo.AssertNotCalled(t, "CreateNewsletter", mock.Anything, mock.Anything)
}

package repository

import (
	"context"
	"fmt"

	"pikalba/internal/model"
	"pikalba/internal/store"

	"github.com/rs/zerolog"
)

// contentRepository implements ContentRepository over the document store.
type contentRepository struct {
	store  store.Store
	logger zerolog.Logger
}

// NewContentRepository creates a new store-backed content repository.
func NewContentRepository(s store.Store, logger zerolog.Logger) ContentRepository {
	return &contentRepository{
		store:  s,
		logger: logger.With().Str("repository", "content").Logger(),
	}
}

// ListBlogPosts retrieves published blog posts.
func (r *contentRepository) ListBlogPosts(ctx context.Context, limit int64) ([]model.BlogPost, error) {
	posts := []model.BlogPost{}
	if err := r.store.Query(ctx, store.BlogPosts, store.Where(store.Eq("published", true)), limit, &posts); err != nil {
		r.logger.Error().Err(err).Msg("failed to list blog posts")
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	return posts, nil
}

// CreateBlogPost persists a blog post.
func (r *contentRepository) CreateBlogPost(ctx context.Context, p *model.BlogPost) (string, error) {
	id, err := r.store.Create(ctx, store.BlogPosts, p)
	if err != nil {
		r.logger.Error().Err(err).Str("slug", p.Slug).Msg("failed to create blog post")
		return "", fmt.Errorf("failed to create blog post: %w", err)
	}
	return id, nil
}

// ListEvents retrieves events with no predicate beyond the limit.
func (r *contentRepository) ListEvents(ctx context.Context, limit int64) ([]model.Event, error) {
	events := []model.Event{}
	if err := r.store.Query(ctx, store.Events, store.Where(), limit, &events); err != nil {
		r.logger.Error().Err(err).Msg("failed to list events")
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// CreateEvent persists an event.
func (r *contentRepository) CreateEvent(ctx context.Context, e *model.Event) (string, error) {
	id, err := r.store.Create(ctx, store.Events, e)
	if err != nil {
		r.logger.Error().Err(err).Str("title", e.Title).Msg("failed to create event")
		return "", fmt.Errorf("failed to create event: %w", err)
	}
	return id, nil
}

// CreateWishlist persists a wishlist.
func (r *contentRepository) CreateWishlist(ctx context.Context, w *model.Wishlist) (string, error) {
	id, err := r.store.Create(ctx, store.Wishlists, w)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", w.UserID).Msg("failed to create wishlist")
		return "", fmt.Errorf("failed to create wishlist: %w", err)
	}
	return id, nil
}

// CreateNewsletter persists a newsletter signup.
func (r *contentRepository) CreateNewsletter(ctx context.Context, n *model.Newsletter) (string, error) {
	id, err := r.store.Create(ctx, store.Newsletters, n)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to create newsletter signup")
		return "", fmt.Errorf("failed to create newsletter signup: %w", err)
	}
	return id, nil
}

// feedbackRepository implements FeedbackRepository over the document store.
type feedbackRepository struct {
	store  store.Store
	logger zerolog.Logger
}

// NewFeedbackRepository creates a new store-backed feedback repository.
func NewFeedbackRepository(s store.Store, logger zerolog.Logger) FeedbackRepository {
	return &feedbackRepository{
		store:  s,
		logger: logger.With().Str("repository", "feedback").Logger(),
	}
}

// Create appends a feedback record.
func (r *feedbackRepository) Create(ctx context.Context, f *model.RecommendationFeedback) (string, error) {
	id, err := r.store.Create(ctx, store.Feedback, f)
	if err != nil {
		r.logger.Error().Err(err).Str("sku", f.SKU).Msg("failed to record feedback")
		return "", fmt.Errorf("failed to record feedback: %w", err)
	}
	return id, nil
}

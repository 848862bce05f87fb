package service

import (
	"context"
	"fmt"

	"pikalba/internal/model"
	"pikalba/internal/repository"

	"github.com/rs/zerolog"
)

// contentService implements ContentService.
type contentService struct {
	contentRepo repository.ContentRepository
	logger      zerolog.Logger
}

// NewContentService creates a new content service.
func NewContentService(contentRepo repository.ContentRepository, logger zerolog.Logger) ContentService {
	return &contentService{
		contentRepo: contentRepo,
		logger:      logger.With().Str("service", "content").Logger(),
	}
}

// ListBlogPosts retrieves published blog posts.
func (s *contentService) ListBlogPosts(ctx context.Context, limit int64) ([]model.BlogPost, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	posts, err := s.contentRepo.ListBlogPosts(ctx, limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list blog posts")
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	return posts, nil
}

// CreateBlogPost validates and persists a blog post.
func (s *contentService) CreateBlogPost(ctx context.Context, p *model.BlogPost) (string, error) {
	p.Normalize()
	if err := p.Validate(); err != nil {
		s.logger.Warn().Err(err).Msg("invalid blog post payload")
		return "", err
	}

	id, err := s.contentRepo.CreateBlogPost(ctx, p)
	if err != nil {
		s.logger.Error().Err(err).Str("slug", p.Slug).Msg("failed to create blog post")
		return "", fmt.Errorf("failed to create blog post: %w", err)
	}

	s.logger.Info().Str("slug", p.Slug).Str("post_id", id).Msg("blog post created")
	return id, nil
}

// ListEvents retrieves events.
func (s *contentService) ListEvents(ctx context.Context, limit int64) ([]model.Event, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	events, err := s.contentRepo.ListEvents(ctx, limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list events")
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// CreateEvent validates and persists an event.
func (s *contentService) CreateEvent(ctx context.Context, e *model.Event) (string, error) {
	if err := e.Validate(); err != nil {
		s.logger.Warn().Err(err).Msg("invalid event payload")
		return "", err
	}

	id, err := s.contentRepo.CreateEvent(ctx, e)
	if err != nil {
		s.logger.Error().Err(err).Str("title", e.Title).Msg("failed to create event")
		return "", fmt.Errorf("failed to create event: %w", err)
	}

	s.logger.Info().Str("title", e.Title).Str("event_id", id).Msg("event created")
	return id, nil
}

// SaveWishlist validates and persists a wishlist.
func (s *contentService) SaveWishlist(ctx context.Context, w *model.Wishlist) (string, error) {
	if err := w.Validate(); err != nil {
		s.logger.Warn().Err(err).Msg("invalid wishlist payload")
		return "", err
	}
	if w.SKUs == nil {
		w.SKUs = []string{}
	}

	id, err := s.contentRepo.CreateWishlist(ctx, w)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", w.UserID).Msg("failed to save wishlist")
		return "", fmt.Errorf("failed to save wishlist: %w", err)
	}

	return id, nil
}

// SubscribeNewsletter validates and persists a newsletter signup.
func (s *contentService) SubscribeNewsletter(ctx context.Context, n *model.Newsletter) (string, error) {
	if err := n.Validate(); err != nil {
		s.logger.Warn().Err(err).Msg("invalid newsletter payload")
		return "", err
	}

	id, err := s.contentRepo.CreateNewsletter(ctx, n)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to subscribe to newsletter")
		return "", fmt.Errorf("failed to subscribe to newsletter: %w", err)
	}

	return id, nil
}

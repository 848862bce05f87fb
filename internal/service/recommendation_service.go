package service

import (
	"context"
	"fmt"

	"pikalba/internal/model"
	"pikalba/internal/repository"

	"github.com/rs/zerolog"
)

// recommendationService implements RecommendationService.
type recommendationService struct {
	productRepo  repository.ProductRepository
	feedbackRepo repository.FeedbackRepository
	logger       zerolog.Logger
}

// NewRecommendationService creates a new recommendation service.
func NewRecommendationService(
	productRepo repository.ProductRepository,
	feedbackRepo repository.FeedbackRepository,
	logger zerolog.Logger,
) RecommendationService {
	return &recommendationService{
		productRepo:  productRepo,
		feedbackRepo: feedbackRepo,
		logger:       logger.With().Str("service", "recommendation").Logger(),
	}
}

// Recommend returns up to limit active products sharing a tag, brand or
// category with the source product. Results are store-ordered; no scoring
// is computed.
func (s *recommendationService) Recommend(ctx context.Context, sku string, limit int64) ([]model.Product, error) {
	if limit <= 0 {
		limit = 8
	}
	if limit > 50 {
		limit = 50
	}

	source, err := s.productRepo.GetBySKU(ctx, sku)
	if err != nil {
		s.logger.Error().Err(err).Str("sku", sku).Msg("failed to load source product")
		return nil, fmt.Errorf("failed to load source product: %w", err)
	}
	if source == nil {
		return nil, model.ErrProductNotFound
	}

	products, err := s.productRepo.FindSimilar(ctx, source, limit)
	if err != nil {
		s.logger.Error().Err(err).Str("sku", sku).Msg("failed to find similar products")
		return nil, fmt.Errorf("failed to find similar products: %w", err)
	}

	s.logger.Debug().
		Str("sku", sku).
		Int("count", len(products)).
		Msg("recommendations computed")

	return products, nil
}

// RecordFeedback appends a feedback record.
func (s *recommendationService) RecordFeedback(ctx context.Context, f *model.RecommendationFeedback) (string, error) {
	if err := f.Validate(); err != nil {
		s.logger.Warn().Err(err).Msg("invalid feedback payload")
		return "", err
	}

	id, err := s.feedbackRepo.Create(ctx, f)
	if err != nil {
		s.logger.Error().Err(err).Str("sku", f.SKU).Msg("failed to record feedback")
		return "", fmt.Errorf("failed to record feedback: %w", err)
	}

	return id, nil
}

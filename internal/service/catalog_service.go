package service

import (
	"context"
	"fmt"

	"pikalba/internal/model"
	"pikalba/internal/repository"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalogue service.
func NewCatalogService(productRepo repository.ProductRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "catalog").Logger(),
	}
}

// List retrieves active products matching the query.
func (s *catalogService) List(ctx context.Context, q repository.ProductQuery) ([]model.Product, error) {
	if q.Limit <= 0 {
		q.Limit = 50
	}
	if q.Limit > 200 {
		q.Limit = 200
	}

	products, err := s.productRepo.List(ctx, q)
	if err != nil {
		s.logger.Error().Err(err).
			Str("category", q.Category).
			Str("search", q.Search).
			Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().
		Int("count", len(products)).
		Str("category", q.Category).
		Str("search", q.Search).
		Msg("listed products")

	return products, nil
}

// Create validates and persists a product.
func (s *catalogService) Create(ctx context.Context, p *model.Product) (string, error) {
	p.Normalize()
	if err := p.Validate(); err != nil {
		s.logger.Warn().Err(err).Str("sku", p.SKU).Msg("invalid product payload")
		return "", err
	}

	id, err := s.productRepo.Create(ctx, p)
	if err != nil {
		s.logger.Error().Err(err).Str("sku", p.SKU).Msg("failed to create product")
		return "", fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("sku", p.SKU).
		Str("product_id", id).
		Msg("product created")

	return id, nil
}

package repository

import (
	"context"
	"fmt"

	"pikalba/internal/model"
	"pikalba/internal/store"

	"github.com/rs/zerolog"
)

// productRepository implements ProductRepository over the document store.
type productRepository struct {
	store  store.Store
	logger zerolog.Logger
}

// NewProductRepository creates a new store-backed product repository.
func NewProductRepository(s store.Store, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		store:  s,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// List retrieves active products matching the query. A search term matches
// title, description or tags case-insensitively.
func (r *productRepository) List(ctx context.Context, q ProductQuery) ([]model.Product, error) {
	preds := []store.Predicate{store.Eq("active", true)}
	if q.Category != "" {
		preds = append(preds, store.Eq("category", q.Category))
	}
	if q.Search != "" {
		preds = append(preds, store.AnyOf(
			store.Contains("title", q.Search),
			store.Contains("description", q.Search),
			store.Contains("tags", q.Search),
		))
	}

	products := []model.Product{}
	if err := r.store.Query(ctx, store.Products, store.Where(preds...), q.Limit, &products); err != nil {
		r.logger.Error().Err(err).
			Str("category", q.Category).
			Str("search", q.Search).
			Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// GetBySKU retrieves a single product by SKU.
func (r *productRepository) GetBySKU(ctx context.Context, sku string) (*model.Product, error) {
	var p model.Product
	found, err := r.store.FindOne(ctx, store.Products, store.Where(store.Eq("sku", sku)), &p)
	if err != nil {
		r.logger.Error().Err(err).Str("sku", sku).Msg("failed to get product by SKU")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if !found {
		r.logger.Debug().Str("sku", sku).Msg("product not found")
		return nil, nil
	}
	return &p, nil
}

// FindSimilar retrieves active products sharing a tag, brand or category with
// the source product, excluding the source SKU. When the source carries none
// of those attributes the disjunction is empty and the filter degenerates to
// all other active products.
func (r *productRepository) FindSimilar(ctx context.Context, source *model.Product, limit int64) ([]model.Product, error) {
	var overlap []store.Predicate
	if len(source.Tags) > 0 {
		overlap = append(overlap, store.In("tags", source.Tags...))
	}
	if source.Brand != "" {
		overlap = append(overlap, store.Eq("brand", source.Brand))
	}
	if source.Category != "" {
		overlap = append(overlap, store.Eq("category", source.Category))
	}

	filter := store.Where(
		store.Eq("active", true),
		store.Ne("sku", source.SKU),
		store.AnyOf(overlap...),
	)

	products := []model.Product{}
	if err := r.store.Query(ctx, store.Products, filter, limit, &products); err != nil {
		r.logger.Error().Err(err).Str("sku", source.SKU).Msg("failed to find similar products")
		return nil, fmt.Errorf("failed to find similar products: %w", err)
	}

	return products, nil
}

// Create persists a product.
func (r *productRepository) Create(ctx context.Context, p *model.Product) (string, error) {
	id, err := r.store.Create(ctx, store.Products, p)
	if err != nil {
		r.logger.Error().Err(err).Str("sku", p.SKU).Msg("failed to create product")
		return "", fmt.Errorf("failed to create product: %w", err)
	}
	return id, nil
}

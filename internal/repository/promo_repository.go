package repository

import (
	"context"
	"fmt"

	"pikalba/internal/model"
	"pikalba/internal/store"

	"github.com/rs/zerolog"
)

// promoRepository implements PromoRepository over the document store.
type promoRepository struct {
	store  store.Store
	logger zerolog.Logger
}

// NewPromoRepository creates a new store-backed promo repository.
func NewPromoRepository(s store.Store, logger zerolog.Logger) PromoRepository {
	return &promoRepository{
		store:  s,
		logger: logger.With().Str("repository", "promo").Logger(),
	}
}

// FindActive retrieves the active promo with the exact, case-sensitive code.
func (r *promoRepository) FindActive(ctx context.Context, code string) (*model.PromoCode, error) {
	var p model.PromoCode
	filter := store.Where(store.Eq("code", code), store.Eq("active", true))
	found, err := r.store.FindOne(ctx, store.PromoCodes, filter, &p)
	if err != nil {
		r.logger.Error().Err(err).Str("code", code).Msg("failed to look up promo code")
		return nil, fmt.Errorf("failed to look up promo code: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &p, nil
}

// Exists reports whether any promo with the code is stored.
func (r *promoRepository) Exists(ctx context.Context, code string) (bool, error) {
	var p model.PromoCode
	found, err := r.store.FindOne(ctx, store.PromoCodes, store.Where(store.Eq("code", code)), &p)
	if err != nil {
		return false, fmt.Errorf("failed to check promo code: %w", err)
	}
	return found, nil
}

// Create persists a promo code.
func (r *promoRepository) Create(ctx context.Context, p *model.PromoCode) (string, error) {
	id, err := r.store.Create(ctx, store.PromoCodes, p)
	if err != nil {
		r.logger.Error().Err(err).Str("code", p.Code).Msg("failed to create promo code")
		return "", fmt.Errorf("failed to create promo code: %w", err)
	}
	return id, nil
}

package repository

import (
	"context"
	"fmt"

	"pikalba/internal/model"
	"pikalba/internal/store"

	"github.com/rs/zerolog"
)

// orderRepository implements OrderRepository over the document store.
type orderRepository struct {
	store  store.Store
	logger zerolog.Logger
}

// NewOrderRepository creates a new store-backed order repository.
func NewOrderRepository(s store.Store, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		store:  s,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// Create persists an order.
func (r *orderRepository) Create(ctx context.Context, o *model.Order) (string, error) {
	id, err := r.store.Create(ctx, store.Orders, o)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to create order")
		return "", fmt.Errorf("failed to create order: %w", err)
	}
	return id, nil
}

// FindByIDFragment retrieves the first order whose identifier contains the
// given fragment. Substring rather than exact-equality lookup is a tracking
// convenience carried over from the original system.
func (r *orderRepository) FindByIDFragment(ctx context.Context, fragment string) (*model.Order, error) {
	var o model.Order
	found, err := r.store.FindOne(ctx, store.Orders, store.Where(store.Contains("_id", fragment)), &o)
	if err != nil {
		r.logger.Error().Err(err).Str("fragment", fragment).Msg("failed to look up order")
		return nil, fmt.Errorf("failed to look up order: %w", err)
	}
	if !found {
		r.logger.Debug().Str("fragment", fragment).Msg("order not found")
		return nil, nil
	}
	return &o, nil
}

package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"pikalba/internal/model"
	"pikalba/internal/repository"

	"github.com/rs/zerolog"
)

// paypalOrderIDPrefix derives the simulated payment-provider reference from
// the store-assigned order identifier. No real gateway is contacted.
const paypalOrderIDPrefix = "SIM-PAYPAL-"

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	promoRepo repository.PromoRepository
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	promoRepo repository.PromoRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		promoRepo: promoRepo,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// Create validates the order, applies an optional promo code, persists the
// order and returns a receipt with the simulated payment-provider reference.
//
// Without a promo code the caller-supplied subtotal, shipping cost and total
// are trusted verbatim. An unknown or inactive promo code is not an error;
// the order proceeds with no discount change.
func (s *orderService) Create(ctx context.Context, req *model.CreateOrderRequest) (*model.OrderReceipt, error) {
	if req == nil {
		return nil, model.NewValidationError("order request is required")
	}

	order := req.Order
	order.Normalize()
	if err := order.Validate(); err != nil {
		s.logger.Warn().Err(err).Msg("invalid order payload")
		return nil, err
	}

	if req.PromoCode != "" {
		if err := s.applyPromo(ctx, &order, req.PromoCode); err != nil {
			return nil, err
		}
	}

	if order.CreatedAt == nil {
		now := time.Now().UTC()
		order.CreatedAt = &now
	}

	id, err := s.orderRepo.Create(ctx, &order)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to persist order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", id).
		Int("item_count", len(order.Items)).
		Float64("total", order.Total).
		Msg("order created")

	return &model.OrderReceipt{
		ID:            id,
		PayPalOrderID: paypalOrderIDPrefix + id,
	}, nil
}

// applyPromo looks up an active promo by exact code and folds its reductions
// into the order. A promo may define a percentage, a flat amount, or both;
// both apply when both are set.
func (s *orderService) applyPromo(ctx context.Context, order *model.Order, code string) error {
	promo, err := s.promoRepo.FindActive(ctx, code)
	if err != nil {
		s.logger.Error().Err(err).Str("promo_code", code).Msg("promo lookup failed")
		return fmt.Errorf("failed to look up promo code: %w", err)
	}

	if promo == nil {
		s.logger.Debug().Str("promo_code", code).Msg("promo code unknown or inactive, no discount applied")
		return nil
	}

	if promo.PercentOff != nil {
		order.Discount += round2(order.Subtotal * float64(*promo.PercentOff) / 100)
	}
	if promo.AmountOff != nil {
		order.Discount += *promo.AmountOff
	}

	order.Total = math.Max(0, round2(order.Subtotal+order.ShippingCost-order.Discount))

	s.logger.Debug().
		Str("promo_code", code).
		Float64("discount", order.Discount).
		Float64("total", order.Total).
		Msg("promo code applied")

	return nil
}

// Track retrieves the first order whose identifier contains the fragment.
func (s *orderService) Track(ctx context.Context, idFragment string) (*model.Order, error) {
	if idFragment == "" {
		return nil, model.ErrOrderNotFound
	}

	order, err := s.orderRepo.FindByIDFragment(ctx, idFragment)
	if err != nil {
		s.logger.Error().Err(err).Str("fragment", idFragment).Msg("failed to track order")
		return nil, fmt.Errorf("failed to track order: %w", err)
	}

	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	return order, nil
}

// round2 rounds to two decimal places (banker-free, half away from zero).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

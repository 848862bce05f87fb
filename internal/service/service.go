package service

import (
	"context"

	"pikalba/internal/model"
	"pikalba/internal/repository"
)

// CatalogService defines operations for catalogue browsing and writes.
type CatalogService interface {
	// List retrieves active products matching the query.
	List(ctx context.Context, q repository.ProductQuery) ([]model.Product, error)

	// Create validates and persists a product, returning its identifier.
	Create(ctx context.Context, p *model.Product) (string, error)
}

// OrderService defines operations for order placement and tracking.
type OrderService interface {
	// Create validates the order, applies an optional promo code, persists
	// the order and returns its identifier plus the simulated
	// payment-provider reference.
	Create(ctx context.Context, req *model.CreateOrderRequest) (*model.OrderReceipt, error)

	// Track retrieves the first order whose identifier contains the fragment.
	Track(ctx context.Context, idFragment string) (*model.Order, error)
}

// RecommendationService defines operations for the content-overlap recommender.
type RecommendationService interface {
	// Recommend returns up to limit active products sharing a tag, brand or
	// category with the product identified by sku.
	Recommend(ctx context.Context, sku string, limit int64) ([]model.Product, error)

	// RecordFeedback appends a feedback record and returns its identifier.
	RecordFeedback(ctx context.Context, f *model.RecommendationFeedback) (string, error)
}

// ContentService defines the blog, event, wishlist and newsletter
// pass-through operations.
type ContentService interface {
	// ListBlogPosts retrieves published blog posts.
	ListBlogPosts(ctx context.Context, limit int64) ([]model.BlogPost, error)

	// CreateBlogPost validates and persists a blog post.
	CreateBlogPost(ctx context.Context, p *model.BlogPost) (string, error)

	// ListEvents retrieves events.
	ListEvents(ctx context.Context, limit int64) ([]model.Event, error)

	// CreateEvent validates and persists an event.
	CreateEvent(ctx context.Context, e *model.Event) (string, error)

	// SaveWishlist validates and persists a wishlist.
	SaveWishlist(ctx context.Context, w *model.Wishlist) (string, error)

	// SubscribeNewsletter validates and persists a newsletter signup.
	SubscribeNewsletter(ctx context.Context, n *model.Newsletter) (string, error)
}

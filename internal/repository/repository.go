package repository

import (
	"context"

	"pikalba/internal/model"
)

// ProductQuery holds the supported catalogue list filters.
type ProductQuery struct {
	Category string
	Search   string
	Limit    int64
}

// ProductRepository defines the interface for catalogue data access.
type ProductRepository interface {
	// List retrieves active products matching the query.
	List(ctx context.Context, q ProductQuery) ([]model.Product, error)

	// GetBySKU retrieves a single product by SKU. Returns nil when absent.
	GetBySKU(ctx context.Context, sku string) (*model.Product, error)

	// FindSimilar retrieves active products sharing a tag, brand or category
	// with the source product, excluding the source itself.
	FindSimilar(ctx context.Context, source *model.Product, limit int64) ([]model.Product, error)

	// Create persists a product and returns its identifier.
	Create(ctx context.Context, p *model.Product) (string, error)
}

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// Create persists an order and returns its identifier.
	Create(ctx context.Context, o *model.Order) (string, error)

	// FindByIDFragment retrieves the first order whose identifier contains
	// the given fragment. Returns nil when none match.
	FindByIDFragment(ctx context.Context, fragment string) (*model.Order, error)
}

// PromoRepository defines the interface for promo code data access.
type PromoRepository interface {
	// FindActive retrieves the active promo with the exact code.
	// Returns nil when absent or inactive.
	FindActive(ctx context.Context, code string) (*model.PromoCode, error)

	// Exists reports whether any promo with the code is stored,
	// active or not.
	Exists(ctx context.Context, code string) (bool, error)

	// Create persists a promo code and returns its identifier.
	Create(ctx context.Context, p *model.PromoCode) (string, error)
}

// ContentRepository defines the interface for blog, event, wishlist and
// newsletter pass-through data access.
type ContentRepository interface {
	// ListBlogPosts retrieves published blog posts.
	ListBlogPosts(ctx context.Context, limit int64) ([]model.BlogPost, error)

	// CreateBlogPost persists a blog post and returns its identifier.
	CreateBlogPost(ctx context.Context, p *model.BlogPost) (string, error)

	// ListEvents retrieves events.
	ListEvents(ctx context.Context, limit int64) ([]model.Event, error)

	// CreateEvent persists an event and returns its identifier.
	CreateEvent(ctx context.Context, e *model.Event) (string, error)

	// CreateWishlist persists a wishlist and returns its identifier.
	CreateWishlist(ctx context.Context, w *model.Wishlist) (string, error)

	// CreateNewsletter persists a newsletter signup and returns its identifier.
	CreateNewsletter(ctx context.Context, n *model.Newsletter) (string, error)
}

// FeedbackRepository defines the interface for recommendation feedback writes.
type FeedbackRepository interface {
	// Create appends a feedback record and returns its identifier.
	Create(ctx context.Context, f *model.RecommendationFeedback) (string, error)
}

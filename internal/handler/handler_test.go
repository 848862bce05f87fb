package handler

import (
	"context"

	"pikalba/internal/model"
	"pikalba/internal/repository"
	"pikalba/internal/store"

	"github.com/stretchr/testify/mock"
)

// MockCatalogService is a mock implementation of service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) List(ctx context.Context, q repository.ProductQuery) ([]model.Product, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockCatalogService) Create(ctx context.Context, p *model.Product) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

// MockOrderService is a mock implementation of service.OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Create(ctx context.Context, req *model.CreateOrderRequest) (*model.OrderReceipt, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderReceipt), args.Error(1)
}

func (m *MockOrderService) Track(ctx context.Context, idFragment string) (*model.Order, error) {
	args := m.Called(ctx, idFragment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

// MockRecommendationService is a mock implementation of service.RecommendationService.
type MockRecommendationService struct {
	mock.Mock
}

func (m *MockRecommendationService) Recommend(ctx context.Context, sku string, limit int64) ([]model.Product, error) {
	args := m.Called(ctx, sku, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockRecommendationService) RecordFeedback(ctx context.Context, f *model.RecommendationFeedback) (string, error) {
	args := m.Called(ctx, f)
	return args.String(0), args.Error(1)
}

// MockContentService is a mock implementation of service.ContentService.
type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) ListBlogPosts(ctx context.Context, limit int64) ([]model.BlogPost, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BlogPost), args.Error(1)
}

func (m *MockContentService) CreateBlogPost(ctx context.Context, p *model.BlogPost) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

func (m *MockContentService) ListEvents(ctx context.Context, limit int64) ([]model.Event, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Event), args.Error(1)
}

func (m *MockContentService) CreateEvent(ctx context.Context, e *model.Event) (string, error) {
	args := m.Called(ctx, e)
	return args.String(0), args.Error(1)
}

func (m *MockContentService) SaveWishlist(ctx context.Context, w *model.Wishlist) (string, error) {
	args := m.Called(ctx, w)
	return args.String(0), args.Error(1)
}

func (m *MockContentService) SubscribeNewsletter(ctx context.Context, n *model.Newsletter) (string, error) {
	args := m.Called(ctx, n)
	return args.String(0), args.Error(1)
}

// MockHealthStore is a mock implementation of store.Store for health checks.
type MockHealthStore struct {
	mock.Mock
}

func (m *MockHealthStore) Create(ctx context.Context, col store.Collection, doc interface{}) (string, error) {
	args := m.Called(ctx, col, doc)
	return args.String(0), args.Error(1)
}

func (m *MockHealthStore) Query(ctx context.Context, col store.Collection, filter store.Filter, limit int64, out interface{}) error {
	args := m.Called(ctx, col, filter, limit, out)
	return args.Error(0)
}

func (m *MockHealthStore) FindOne(ctx context.Context, col store.Collection, filter store.Filter, out interface{}) (bool, error) {
	args := m.Called(ctx, col, filter, out)
	return args.Bool(0), args.Error(1)
}

func (m *MockHealthStore) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockHealthStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockHealthStore) CollectionNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

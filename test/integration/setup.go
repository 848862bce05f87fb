package integration

import (
	"context"
	"testing"

	"pikalba/internal/config"
	"pikalba/internal/database"
	"pikalba/internal/model"
	"pikalba/internal/store"

	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
)

// TestStore represents a MongoDB test container and the store bound to it.
type TestStore struct {
	Container *mongodb.MongoDBContainer
	DB        *mongo.Database
	Store     store.Store
}

// SetupTestStore starts a MongoDB test container, connects to it and ensures
// the collection indexes.
func SetupTestStore(t *testing.T) *TestStore {
	t.Helper()

	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		t.Fatalf("failed to start mongodb container: %v", err)
	}

	connStr, err := container.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	logger := zerolog.Nop()
	db, err := database.Connect(ctx, config.MongoConfig{
		URI:            connStr,
		Database:       "testdb",
		ConnectTimeout: 30,
	}, logger)
	if err != nil {
		t.Fatalf("failed to connect to mongodb: %v", err)
	}

	s := store.New(db, logger)
	if err := s.EnsureIndexes(ctx); err != nil {
		t.Fatalf("failed to ensure indexes: %v", err)
	}

	t.Cleanup(func() {
		database.Disconnect(db, logger)
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestStore{
		Container: container,
		DB:        db,
		Store:     s,
	}
}

// CleanupStore drops every known collection.
func CleanupStore(t *testing.T, ts *TestStore) {
	t.Helper()

	ctx := context.Background()
	for _, col := range store.All() {
		if err := ts.DB.Collection(col.Name).Drop(ctx); err != nil {
			t.Logf("failed to drop collection %s: %v", col.Name, err)
		}
	}
}

func boolPtr(v bool) *bool        { return &v }
func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// SeedProducts inserts a small catalogue spanning categories, brands and tags.
func SeedProducts(t *testing.T, ts *TestStore) {
	t.Helper()

	ctx := context.Background()
	products := []model.Product{
		{
			SKU: "PB-001", Title: "Carbon Fibre Paddle", Category: model.CategoryPickleball,
			Brand: "Pikalba", Price: 89.99, Stock: 12,
			Tags: []string{"paddle", "carbon"}, Active: boolPtr(true),
		},
		{
			SKU: "PB-002", Title: "Composite Paddle", Category: model.CategoryPickleball,
			Brand: "Pikalba", Price: 59.99, Stock: 30,
			Tags: []string{"paddle", "composite"}, Active: boolPtr(true),
		},
		{
			SKU: "PD-001", Title: "Padel Racket Pro", Category: model.CategoryPadel,
			Brand: "CourtKing", Price: 129.00, Stock: 8,
			Tags: []string{"racket", "carbon"}, Active: boolPtr(true),
		},
		{
			SKU: "BC-001", Title: "Beach Towel", Category: model.CategoryBeach,
			Brand: "SunDay", Price: 19.50, Stock: 100,
			Tags: []string{"towel"}, Active: boolPtr(true),
		},
		{
			SKU: "PB-099", Title: "Discontinued Paddle", Category: model.CategoryPickleball,
			Brand: "Pikalba", Price: 39.99, Stock: 0,
			Tags: []string{"paddle"}, Active: boolPtr(false),
		},
	}

	for i := range products {
		products[i].Normalize()
		if _, err := ts.Store.Create(ctx, store.Products, &products[i]); err != nil {
			t.Fatalf("failed to seed product %s: %v", products[i].SKU, err)
		}
	}
}

// SeedPromos inserts promo codes covering the discount shapes.
func SeedPromos(t *testing.T, ts *TestStore) {
	t.Helper()

	ctx := context.Background()
	promos := []model.PromoCode{
		{Code: "SAVE10", Description: "10% off", PercentOff: intPtr(10), Active: boolPtr(true)},
		{Code: "FLAT5", Description: "5 off", AmountOff: floatPtr(5.0), Active: boolPtr(true)},
		{Code: "EXPIRED20", Description: "retired", PercentOff: intPtr(20), Active: boolPtr(false)},
	}

	for i := range promos {
		if _, err := ts.Store.Create(ctx, store.PromoCodes, &promos[i]); err != nil {
			t.Fatalf("failed to seed promo %s: %v", promos[i].Code, err)
		}
	}
}

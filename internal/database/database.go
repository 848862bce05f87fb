package database

import (
	"context"
	"fmt"
	"time"

	"pikalba/internal/config"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect creates a new MongoDB client and returns a handle to the
// configured database. Connectivity is verified with a ping before the
// handle is returned.
func Connect(ctx context.Context, cfg config.MongoConfig, logger zerolog.Logger) (*mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.ConnectTimeout)*time.Second)
	defer cancel()

	logger.Info().
		Str("database", cfg.Database).
		Msg("connecting to document store")

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		// Best effort disconnect; the ping failure is the interesting error.
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping document store: %w", err)
	}

	logger.Info().Msg("document store connection established")

	return client.Database(cfg.Database), nil
}

// Disconnect closes the client behind the database handle.
func Disconnect(db *mongo.Database, logger zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Client().Disconnect(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to disconnect from document store")
		return
	}

	logger.Info().Msg("document store connection closed")
}

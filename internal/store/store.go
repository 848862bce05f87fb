package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Store is the document store gateway every repository talks through.
type Store interface {
	// Create inserts one document into the collection and returns its
	// store-assigned identifier.
	Create(ctx context.Context, col Collection, doc any) (string, error)

	// Query decodes up to limit matching documents into out, which must be
	// a pointer to a slice. Ordering is store-default.
	Query(ctx context.Context, col Collection, filter Filter, limit int64, out any) error

	// FindOne decodes the first matching document into out. It reports
	// whether a document was found.
	FindOne(ctx context.Context, col Collection, filter Filter, out any) (bool, error)

	// EnsureIndexes creates single-field indexes for every indexed field in
	// the collection mapping table.
	EnsureIndexes(ctx context.Context) error

	// Ping verifies store connectivity.
	Ping(ctx context.Context) error

	// CollectionNames lists the collections present in the store.
	CollectionNames(ctx context.Context) ([]string, error)
}

// mongoStore implements Store over a MongoDB database.
type mongoStore struct {
	db     *mongo.Database
	logger zerolog.Logger
}

// New creates a MongoDB-backed store.
func New(db *mongo.Database, logger zerolog.Logger) Store {
	return &mongoStore{
		db:     db,
		logger: logger.With().Str("component", "store").Logger(),
	}
}

// Create inserts one document. Documents without an identifier get a hex
// object-id string assigned here; a string identifier keeps substring
// lookups on "_id" (order tracking) working.
func (s *mongoStore) Create(ctx context.Context, col Collection, doc any) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal document for %s: %w", col.Name, err)
	}

	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal document for %s: %w", col.Name, err)
	}

	id, _ := m["_id"].(string)
	if id == "" {
		id = primitive.NewObjectID().Hex()
		m["_id"] = id
	}

	if _, err := s.db.Collection(col.Name).InsertOne(ctx, m); err != nil {
		s.logger.Error().Err(err).Str("collection", col.Name).Msg("failed to insert document")
		return "", fmt.Errorf("failed to insert document into %s: %w", col.Name, err)
	}

	s.logger.Debug().
		Str("collection", col.Name).
		Str("id", id).
		Msg("document created")

	return id, nil
}

// Query decodes up to limit matching documents into out.
func (s *mongoStore) Query(ctx context.Context, col Collection, filter Filter, limit int64, out any) error {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := s.db.Collection(col.Name).Find(ctx, filter.document(), opts)
	if err != nil {
		s.logger.Error().Err(err).Str("collection", col.Name).Msg("failed to query documents")
		return fmt.Errorf("failed to query %s: %w", col.Name, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		s.logger.Error().Err(err).Str("collection", col.Name).Msg("failed to decode documents")
		return fmt.Errorf("failed to decode %s documents: %w", col.Name, err)
	}

	return nil
}

// FindOne decodes the first matching document into out.
func (s *mongoStore) FindOne(ctx context.Context, col Collection, filter Filter, out any) (bool, error) {
	err := s.db.Collection(col.Name).FindOne(ctx, filter.document()).Decode(out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		s.logger.Error().Err(err).Str("collection", col.Name).Msg("failed to query document")
		return false, fmt.Errorf("failed to query %s: %w", col.Name, err)
	}
	return true, nil
}

// EnsureIndexes creates single-field indexes for every collection in the
// mapping table.
func (s *mongoStore) EnsureIndexes(ctx context.Context) error {
	for _, col := range All() {
		if len(col.Indexed) == 0 {
			continue
		}

		models := make([]mongo.IndexModel, 0, len(col.Indexed))
		for _, field := range col.Indexed {
			models = append(models, mongo.IndexModel{
				Keys: bson.D{{Key: field, Value: 1}},
			})
		}

		if _, err := s.db.Collection(col.Name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", col.Name, err)
		}

		s.logger.Debug().
			Str("collection", col.Name).
			Strs("fields", col.Indexed).
			Msg("indexes ensured")
	}

	return nil
}

// Ping verifies store connectivity.
func (s *mongoStore) Ping(ctx context.Context) error {
	if err := s.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping store: %w", err)
	}
	return nil
}

// CollectionNames lists the collections present in the store.
func (s *mongoStore) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}

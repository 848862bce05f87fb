package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connectivity check for the document store. Reads MONGO_URI and
// MONGO_DATABASE from the environment with local defaults.
func main() {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DATABASE")
	if dbName == "" {
		dbName = "pikalba"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer client.Disconnect(context.Background())

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		fmt.Fprintf(os.Stderr, "Ping failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Connected to document store")

	names, err := client.Database(dbName).ListCollectionNames(ctx, bson.D{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to list collections: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Database %q has %d collections:\n", dbName, len(names))
	for _, name := range names {
		fmt.Printf("  - %s\n", name)
	}
}

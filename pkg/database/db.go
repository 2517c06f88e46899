package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/shashiranjanraj/vastra/config"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

const connectTimeout = 10 * time.Second

// Connect opens the MongoDB connection and verifies it with a ping.
// Returns an error instead of exiting so the caller can decide; at server
// startup a failure here is fatal.
func Connect() error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.MongoURI()))
	if err != nil {
		return fmt.Errorf("database: connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("database: ping: %w", err)
	}

	Client = client
	DB = client.Database(config.MongoDatabase())
	return nil
}

// Open creates the client and collection handles without verifying the
// connection. CLI commands that never touch the store (route:list) use this
// to build the application without a live database.
func Open() error {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(config.MongoURI()))
	if err != nil {
		return fmt.Errorf("database: open: %w", err)
	}

	Client = client
	DB = client.Database(config.MongoDatabase())
	return nil
}

// Disconnect tears the connection down. Part of the explicit
// startup/shutdown lifecycle; called from the server's shutdown path.
func Disconnect(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}

// Collection returns a handle to a named collection on the default database.
func Collection(name string) *mongo.Collection {
	return DB.Collection(name)
}

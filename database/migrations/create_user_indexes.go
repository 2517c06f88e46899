// Package migrations holds the index migrations. Uniqueness the application
// depends on is enforced here, in the store, so it holds under concurrent
// requests.
package migrations

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/vastra/pkg/migration"
)

func init() {
	migration.Register("20260110120000_create_user_indexes", &CreateUserIndexes{})
}

// CreateUserIndexes adds the unique email index on users.
type CreateUserIndexes struct{}

func (CreateUserIndexes) Up(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email"),
	})
	return err
}

func (CreateUserIndexes) Down(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().DropOne(ctx, "uniq_email")
	return err
}

package migrations

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/vastra/pkg/migration"
)

func init() {
	migration.Register("20260110120004_create_cart_indexes", &CreateCartIndexes{})
}

// CreateCartIndexes enforces one cart and one wishlist per user.
type CreateCartIndexes struct{}

func (CreateCartIndexes) Up(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("carts").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_user"),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("wishlists").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_user"),
	})
	return err
}

func (CreateCartIndexes) Down(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection("carts").Indexes().DropOne(ctx, "uniq_user"); err != nil {
		return err
	}
	_, err := db.Collection("wishlists").Indexes().DropOne(ctx, "uniq_user")
	return err
}

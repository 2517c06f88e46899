package migrations

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/vastra/pkg/migration"
)

func init() {
	migration.Register("20260110120003_create_review_indexes", &CreateReviewIndexes{})
}

// CreateReviewIndexes enforces one review per user and product. The review
// service relies on the duplicate-key error from this index.
type CreateReviewIndexes struct{}

func (CreateReviewIndexes) Up(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("reviews").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "productId", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_user_product"),
	})
	return err
}

func (CreateReviewIndexes) Down(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("reviews").Indexes().DropOne(ctx, "uniq_user_product")
	return err
}

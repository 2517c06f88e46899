package migrations

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/vastra/pkg/migration"
)

func init() {
	migration.Register("20260110120002_create_order_indexes", &CreateOrderIndexes{})
}

// CreateOrderIndexes adds the owner index on orders and the order reference
// index on payments.
type CreateOrderIndexes struct{}

func (CreateOrderIndexes) Up(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("orders").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetName("idx_user"),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("payments").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "orderId", Value: 1}},
		Options: options.Index().SetName("idx_order"),
	})
	return err
}

func (CreateOrderIndexes) Down(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection("orders").Indexes().DropOne(ctx, "idx_user"); err != nil {
		return err
	}
	_, err := db.Collection("payments").Indexes().DropOne(ctx, "idx_order")
	return err
}

package migrations

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/vastra/pkg/migration"
)

func init() {
	migration.Register("20260110120001_create_catalog_indexes", &CreateCatalogIndexes{})
}

// CreateCatalogIndexes adds the unique slug index on categories and the
// category reference index on products.
type CreateCatalogIndexes struct{}

func (CreateCatalogIndexes) Up(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("categories").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_slug"),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("products").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "category", Value: 1}},
		Options: options.Index().SetName("idx_category"),
	})
	return err
}

func (CreateCatalogIndexes) Down(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection("categories").Indexes().DropOne(ctx, "uniq_slug"); err != nil {
		return err
	}
	_, err := db.Collection("products").Indexes().DropOne(ctx, "idx_category")
	return err
}

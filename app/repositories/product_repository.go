package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/cache"
	"github.com/shashiranjanraj/vastra/pkg/metrics"
)

// productCacheTTL bounds staleness of the read cache; every write path below
// invalidates the key eagerly as well.
const productCacheTTL = 5 * time.Minute

func productCacheKey(id primitive.ObjectID) string {
	return "product:" + id.Hex()
}

// ProductRepository handles the products collection. Single-document reads
// go through the Redis cache; every mutation, including the atomic stock
// adjustment, invalidates the cached copy.
type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection("products")}
}

// FindByID looks up a product, serving from cache when possible.
func (r *ProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	var product models.Product
	if cache.Get(productCacheKey(id), &product) {
		return product, nil
	}

	defer metrics.ObserveDBQuery("find", time.Now())
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		return product, translate(err)
	}

	cache.Set(productCacheKey(id), product, productCacheTTL) //nolint:errcheck
	return product, nil
}

// FindByIDs returns the products whose ids are in ids. Missing ids are
// simply absent from the result.
func (r *ProductRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	defer metrics.ObserveDBQuery("find", time.Now())

	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, translate(err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, translate(err)
	}
	return products, nil
}

// Create persists a new product. The caller normalizes it first.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	defer metrics.ObserveDBQuery("insert", time.Now())

	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, product)
	if err != nil {
		return translate(err)
	}
	product.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Update replaces an existing product document. The caller normalizes it
// first.
func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	defer metrics.ObserveDBQuery("update", time.Now())

	product.UpdatedAt = time.Now()
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	cache.Forget(productCacheKey(product.ID)) //nolint:errcheck
	return translate(err)
}

// Delete removes a product. Returns ErrNotFound when no document matched.
func (r *ProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	defer metrics.ObserveDBQuery("delete", time.Now())

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translate(err)
	}
	cache.Forget(productCacheKey(id)) //nolint:errcheck
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AdjustStockAndSales applies one order line item to a product in a single
// atomic update: stockQuantity -= quantity, sales += quantity, and inStock
// recomputed from the new stock, all server-side. Returns false when the
// product does not exist; the caller skips such items.
func (r *ProductRepository) AdjustStockAndSales(ctx context.Context, id primitive.ObjectID, quantity int64) (bool, error) {
	defer metrics.ObserveDBQuery("update", time.Now())

	// Pipeline update: the second stage sees the decremented stockQuantity,
	// so the derived inStock flag stays consistent without a read-modify-write.
	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "stockQuantity", Value: bson.D{{Key: "$subtract", Value: bson.A{"$stockQuantity", quantity}}}},
			{Key: "sales", Value: bson.D{{Key: "$add", Value: bson.A{"$sales", quantity}}}},
			{Key: "updatedAt", Value: "$$NOW"},
		}}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "inStock", Value: bson.D{{Key: "$gt", Value: bson.A{"$stockQuantity", 0}}}},
		}}},
	}

	res, err := r.col.UpdateByID(ctx, id, update)
	cache.Forget(productCacheKey(id)) //nolint:errcheck
	if err != nil {
		return false, translate(err)
	}
	return res.MatchedCount > 0, nil
}

// SetRating stores a freshly aggregated average rating.
func (r *ProductRepository) SetRating(ctx context.Context, id primitive.ObjectID, rating float64) error {
	defer metrics.ObserveDBQuery("update", time.Now())

	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"rating": rating, "updatedAt": time.Now()},
	})
	cache.Forget(productCacheKey(id)) //nolint:errcheck
	return translate(err)
}

package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/metrics"
)

// ReviewRepository handles the reviews collection. Uniqueness of one review
// per user and product is enforced by a compound unique index, so concurrent
// inserts surface as ErrDuplicate.
type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{col: db.Collection("reviews")}
}

// Create persists a new review. Returns ErrDuplicate when the user already
// reviewed the product.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	defer metrics.ObserveDBQuery("insert", time.Now())

	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, review)
	if err != nil {
		return translate(err)
	}
	review.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByProduct returns every review for one product in insertion order.
func (r *ReviewRepository) FindByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.Review, error) {
	defer metrics.ObserveDBQuery("find", time.Now())

	cursor, err := r.col.Find(ctx, bson.M{"productId": productID})
	if err != nil {
		return nil, translate(err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, translate(err)
	}
	return reviews, nil
}

// AverageForProduct recomputes the mean rating across every review of one
// product. Returns 0 when the product has no reviews.
func (r *ReviewRepository) AverageForProduct(ctx context.Context, productID primitive.ObjectID) (float64, error) {
	defer metrics.ObserveDBQuery("aggregate", time.Now())

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "productId", Value: productID}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$productId"},
			{Key: "rating", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, translate(err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Rating float64 `bson:"rating"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, translate(err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Rating, nil
}

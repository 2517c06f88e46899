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

// CartRepository handles the carts collection. Each user has at most one
// cart document, enforced by a unique index on userId.
type CartRepository struct {
	col *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{col: db.Collection("carts")}
}

// FindByUser returns the user's cart. Returns ErrNotFound when the user has
// never carted anything.
func (r *CartRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) (models.Cart, error) {
	defer metrics.ObserveDBQuery("find", time.Now())

	var cart models.Cart
	err := r.col.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	return cart, translate(err)
}

// Create persists a new cart for a user.
func (r *CartRepository) Create(ctx context.Context, cart *models.Cart) error {
	defer metrics.ObserveDBQuery("insert", time.Now())

	now := time.Now()
	cart.CreatedAt = now
	cart.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, cart)
	if err != nil {
		return translate(err)
	}
	cart.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Update replaces the cart's items.
func (r *CartRepository) Update(ctx context.Context, cart *models.Cart) error {
	defer metrics.ObserveDBQuery("update", time.Now())

	cart.UpdatedAt = time.Now()
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": cart.ID}, cart)
	return translate(err)
}

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

// WishlistRepository handles the wishlists collection. Each user has at most
// one wishlist document, enforced by a unique index on userId.
type WishlistRepository struct {
	col *mongo.Collection
}

func NewWishlistRepository(db *mongo.Database) *WishlistRepository {
	return &WishlistRepository{col: db.Collection("wishlists")}
}

// FindByUser returns the user's wishlist. Returns ErrNotFound when none
// exists yet.
func (r *WishlistRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) (models.Wishlist, error) {
	defer metrics.ObserveDBQuery("find", time.Now())

	var wishlist models.Wishlist
	err := r.col.FindOne(ctx, bson.M{"userId": userID}).Decode(&wishlist)
	return wishlist, translate(err)
}

// Create persists a new wishlist for a user.
func (r *WishlistRepository) Create(ctx context.Context, wishlist *models.Wishlist) error {
	defer metrics.ObserveDBQuery("insert", time.Now())

	now := time.Now()
	wishlist.CreatedAt = now
	wishlist.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, wishlist)
	if err != nil {
		return translate(err)
	}
	wishlist.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Update replaces the wishlist's items.
func (r *WishlistRepository) Update(ctx context.Context, wishlist *models.Wishlist) error {
	defer metrics.ObserveDBQuery("update", time.Now())

	wishlist.UpdatedAt = time.Now()
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": wishlist.ID}, wishlist)
	return translate(err)
}

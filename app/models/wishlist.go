package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistItem references a product a user saved for later.
type WishlistItem struct {
	ID        primitive.ObjectID `bson:"_id"       json:"id"`
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
}

// Wishlist shares the cart's lifecycle: created lazily, never deleted.
// Adding a product already on the list is a no-op.
type Wishlist struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId"        json:"userId"`
	Items     []WishlistItem     `bson:"items"         json:"items"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"     json:"updatedAt"`
}

// HasProduct reports whether productID is already on the list.
func (w *Wishlist) HasProduct(productID primitive.ObjectID) bool {
	for _, item := range w.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem references a product plus a quantity. Image snapshots the
// product's first image at the time the item was added, for display.
type CartItem struct {
	ID        primitive.ObjectID `bson:"_id"             json:"id"`
	ProductID primitive.ObjectID `bson:"productId"       json:"productId"`
	Quantity  int64              `bson:"quantity"        json:"quantity"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
}

// Cart is the per-user shopping cart. It is created lazily on first access
// and never deleted, only emptied.
type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId"        json:"userId"`
	Items     []CartItem         `bson:"items"         json:"items"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"     json:"updatedAt"`
}

// FindItem returns the index of the item with the given id, or -1.
func (c *Cart) FindItem(itemID primitive.ObjectID) int {
	for i, item := range c.Items {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}

// FindProduct returns the index of the item referencing productID, or -1.
func (c *Cart) FindProduct(productID primitive.ObjectID) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

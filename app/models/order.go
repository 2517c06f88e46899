package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. "payment failed" is set by the payment failure callback.
const (
	OrderStatusPending       = "pending"
	OrderStatusProcessed     = "processed"
	OrderStatusShipped       = "shipped"
	OrderStatusDelivered     = "delivered"
	OrderStatusCanceled      = "canceled"
	OrderStatusPaymentFailed = "payment failed"
)

// OrderItem is a line item. Price is the unit price at order time and never
// changes afterwards, even if the product is repriced.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity  int64              `bson:"quantity"  json:"quantity"`
	Price     float64            `bson:"price"     json:"price"`
}

// Order is created once; only Status mutates afterwards.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"   json:"id"`
	UserID          primitive.ObjectID `bson:"userId"          json:"userId"`
	Items           []OrderItem        `bson:"items"           json:"items"`
	TotalPrice      float64            `bson:"totalPrice"      json:"totalPrice"`
	ShippingAddress Address            `bson:"shippingAddress" json:"shippingAddress"`
	Status          string             `bson:"status"          json:"status"`
	PaymentMethod   string             `bson:"paymentMethod"   json:"paymentMethod"`
	CreatedAt       time.Time          `bson:"createdAt"       json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"       json:"updatedAt"`
}

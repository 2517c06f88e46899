package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment statuses.
const (
	PaymentStatusPending = "pending"
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
)

// Payment records one payment attempt against an order. A new attempt is
// allowed while no successful payment exists for the order.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"           json:"id"`
	OrderID       primitive.ObjectID `bson:"orderId"                 json:"orderId"`
	Amount        float64            `bson:"amount"                  json:"amount"`
	PaymentMethod string             `bson:"paymentMethod"           json:"paymentMethod"`
	Status        string             `bson:"status"                  json:"status"`
	FailureReason string             `bson:"failureReason,omitempty" json:"failureReason,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt"               json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"               json:"updatedAt"`
}

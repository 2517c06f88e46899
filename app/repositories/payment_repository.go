package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/metrics"
)

// PaymentRepository handles the payments collection.
type PaymentRepository struct {
	col *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{col: db.Collection("payments")}
}

// Create persists a new payment attempt.
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	defer metrics.ObserveDBQuery("insert", time.Now())

	now := time.Now()
	payment.CreatedAt = now
	payment.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, payment)
	if err != nil {
		return translate(err)
	}
	payment.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID looks up a payment by id.
func (r *PaymentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Payment, error) {
	defer metrics.ObserveDBQuery("find", time.Now())

	var payment models.Payment
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&payment)
	return payment, translate(err)
}

// FindAll returns every payment, newest first.
func (r *PaymentRepository) FindAll(ctx context.Context) ([]models.Payment, error) {
	defer metrics.ObserveDBQuery("find", time.Now())

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, translate(err)
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, translate(err)
	}
	return payments, nil
}

// HasSuccessForOrder reports whether any payment for the order already
// succeeded.
func (r *PaymentRepository) HasSuccessForOrder(ctx context.Context, orderID primitive.ObjectID) (bool, error) {
	defer metrics.ObserveDBQuery("find", time.Now())

	count, err := r.col.CountDocuments(ctx, bson.M{
		"orderId": orderID,
		"status":  models.PaymentStatusSuccess,
	}, options.Count().SetLimit(1))
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

// SetStatus updates a payment's status and failure reason. Pass an empty
// reason to clear it. Returns ErrNotFound when no payment matched.
func (r *PaymentRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status, failureReason string) error {
	defer metrics.ObserveDBQuery("update", time.Now())

	res, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{
			"status":        status,
			"failureReason": failureReason,
			"updatedAt":     time.Now(),
		},
	})
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

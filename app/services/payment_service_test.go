package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/apperr"
)

func TestInitiatePaymentCopiesOrderTotal(t *testing.T) {
	owner := models.User{ID: primitive.NewObjectID(), Role: models.RoleCustomer}
	order := models.Order{ID: primitive.NewObjectID(), UserID: owner.ID, TotalPrice: 259.50}

	payments := newFakePayments()
	svc := NewPaymentService(payments, newFakeOrders(order))

	payment, err := svc.Initiate(context.Background(), owner, order.ID, "card")
	require.NoError(t, err)

	assert.Equal(t, order.ID, payment.OrderID)
	assert.Equal(t, 259.50, payment.Amount)
	assert.Equal(t, models.PaymentStatusPending, payment.Status)
}

func TestInitiatePaymentRules(t *testing.T) {
	owner := models.User{ID: primitive.NewObjectID(), Role: models.RoleCustomer}
	stranger := models.User{ID: primitive.NewObjectID(), Role: models.RoleCustomer}
	order := models.Order{ID: primitive.NewObjectID(), UserID: owner.ID, TotalPrice: 100}

	ctx := context.Background()

	t.Run("missing order", func(t *testing.T) {
		svc := NewPaymentService(newFakePayments(), newFakeOrders())
		_, err := svc.Initiate(ctx, owner, primitive.NewObjectID(), "card")
		assert.True(t, errors.Is(err, apperr.NotFound("")))
	})

	t.Run("not the owner", func(t *testing.T) {
		svc := NewPaymentService(newFakePayments(), newFakeOrders(order))
		_, err := svc.Initiate(ctx, stranger, order.ID, "card")
		assert.True(t, errors.Is(err, apperr.Authorization("")))
	})

	t.Run("already paid", func(t *testing.T) {
		paid := models.Payment{ID: primitive.NewObjectID(), OrderID: order.ID, Status: models.PaymentStatusSuccess}
		svc := NewPaymentService(newFakePayments(paid), newFakeOrders(order))
		_, err := svc.Initiate(ctx, owner, order.ID, "card")
		assert.True(t, errors.Is(err, apperr.Conflict("")))
	})

	t.Run("failed attempt does not block a retry", func(t *testing.T) {
		failed := models.Payment{ID: primitive.NewObjectID(), OrderID: order.ID, Status: models.PaymentStatusFailed}
		svc := NewPaymentService(newFakePayments(failed), newFakeOrders(order))
		_, err := svc.Initiate(ctx, owner, order.ID, "card")
		assert.NoError(t, err)
	})
}

func TestPaymentCallbacksLastWriteWins(t *testing.T) {
	order := models.Order{ID: primitive.NewObjectID(), UserID: primitive.NewObjectID(), Status: models.OrderStatusPending}
	payment := models.Payment{ID: primitive.NewObjectID(), OrderID: order.ID, Status: models.PaymentStatusPending}

	payments := newFakePayments(payment)
	orders := newFakeOrders(order)
	svc := NewPaymentService(payments, orders)

	ctx := context.Background()

	settled, err := svc.HandleSuccess(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSuccess, settled.Status)
	assert.Equal(t, models.OrderStatusProcessed, orders.byID[order.ID].Status)

	settled, err = svc.HandleFailure(ctx, payment.ID, "card declined")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, settled.Status)
	assert.Equal(t, "card declined", settled.FailureReason)
	assert.Equal(t, models.PaymentStatusFailed, payments.byID[payment.ID].Status)
	assert.Equal(t, models.OrderStatusPaymentFailed, orders.byID[order.ID].Status)
}

func TestPaymentCallbackMissingPayment(t *testing.T) {
	svc := NewPaymentService(newFakePayments(), newFakeOrders())

	_, err := svc.HandleSuccess(context.Background(), primitive.NewObjectID())
	assert.True(t, errors.Is(err, apperr.NotFound("")))
}

func TestPaymentCallbackSurvivesDeletedOrder(t *testing.T) {
	payment := models.Payment{ID: primitive.NewObjectID(), OrderID: primitive.NewObjectID(), Status: models.PaymentStatusPending}
	payments := newFakePayments(payment)
	svc := NewPaymentService(payments, newFakeOrders())

	settled, err := svc.HandleSuccess(context.Background(), payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSuccess, settled.Status)
}

func TestGetPaymentAuthorization(t *testing.T) {
	owner := models.User{ID: primitive.NewObjectID(), Role: models.RoleCustomer}
	admin := models.User{ID: primitive.NewObjectID(), Role: models.RoleAdmin}
	stranger := models.User{ID: primitive.NewObjectID(), Role: models.RoleCustomer}

	order := models.Order{ID: primitive.NewObjectID(), UserID: owner.ID}
	payment := models.Payment{ID: primitive.NewObjectID(), OrderID: order.ID, Status: models.PaymentStatusPending}
	svc := NewPaymentService(newFakePayments(payment), newFakeOrders(order))

	ctx := context.Background()

	view, err := svc.Get(ctx, owner, payment.ID)
	require.NoError(t, err)
	require.NotNil(t, view.Order)
	assert.Equal(t, order.ID, view.Order.ID)

	_, err = svc.Get(ctx, admin, payment.ID)
	assert.NoError(t, err)

	_, err = svc.Get(ctx, stranger, payment.ID)
	assert.True(t, errors.Is(err, apperr.Authorization("")))
}

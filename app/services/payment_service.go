package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/pkg/apperr"
	"github.com/shashiranjanraj/vastra/pkg/event"
	"github.com/shashiranjanraj/vastra/pkg/logger"
)

// PaymentStore is the slice of the payment repository the payment service
// needs.
type PaymentStore interface {
	Create(ctx context.Context, payment *models.Payment) error
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Payment, error)
	FindAll(ctx context.Context) ([]models.Payment, error)
	HasSuccessForOrder(ctx context.Context, orderID primitive.ObjectID) (bool, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status, failureReason string) error
}

// PaymentOrders covers the order lookups and status writes the payment flow
// performs.
type PaymentOrders interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Order, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) error
}

// PaymentView is a payment with its order resolved.
type PaymentView struct {
	models.Payment
	Order *models.Order `json:"order,omitempty"`
}

// PaymentService owns payment attempts and the gateway callbacks.
type PaymentService struct {
	payments PaymentStore
	orders   PaymentOrders
}

func NewPaymentService(payments PaymentStore, orders PaymentOrders) *PaymentService {
	return &PaymentService{payments: payments, orders: orders}
}

// Initiate creates a pending payment for an order. The amount is copied from
// the order's total at initiation time. A prior failed or pending attempt
// does not block a retry; a successful one does.
func (s *PaymentService) Initiate(ctx context.Context, user models.User, orderID primitive.ObjectID, paymentMethod string) (models.Payment, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Payment{}, apperr.NotFound("Order not found")
		}
		return models.Payment{}, fmt.Errorf("initiate payment: lookup order: %w", err)
	}

	if order.UserID != user.ID && !user.IsAdmin() {
		return models.Payment{}, apperr.Authorization("Not authorized to pay for this order")
	}

	paid, err := s.payments.HasSuccessForOrder(ctx, orderID)
	if err != nil {
		return models.Payment{}, fmt.Errorf("initiate payment: check prior success: %w", err)
	}
	if paid {
		return models.Payment{}, apperr.Conflict("Order is already paid")
	}

	payment := models.Payment{
		OrderID:       orderID,
		Amount:        order.TotalPrice,
		PaymentMethod: paymentMethod,
		Status:        models.PaymentStatusPending,
	}
	if err := s.payments.Create(ctx, &payment); err != nil {
		return models.Payment{}, fmt.Errorf("initiate payment: %w", err)
	}
	return payment, nil
}

// HandleSuccess applies a gateway success callback. The order is looked up
// through the payment record, never taken from the caller. Callbacks carry
// no ordering guarantee; the last one to arrive wins.
func (s *PaymentService) HandleSuccess(ctx context.Context, paymentID primitive.ObjectID) (models.Payment, error) {
	return s.settle(ctx, paymentID, models.PaymentStatusSuccess, "", models.OrderStatusProcessed)
}

// HandleFailure applies a gateway failure callback with the gateway's
// reason string.
func (s *PaymentService) HandleFailure(ctx context.Context, paymentID primitive.ObjectID, reason string) (models.Payment, error) {
	return s.settle(ctx, paymentID, models.PaymentStatusFailed, reason, models.OrderStatusPaymentFailed)
}

func (s *PaymentService) settle(ctx context.Context, paymentID primitive.ObjectID, status, reason, orderStatus string) (models.Payment, error) {
	payment, err := s.payments.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Payment{}, apperr.NotFound("Payment not found")
		}
		return models.Payment{}, fmt.Errorf("settle payment: %w", err)
	}

	if err := s.payments.SetStatus(ctx, paymentID, status, reason); err != nil {
		return models.Payment{}, fmt.Errorf("settle payment: set status: %w", err)
	}
	payment.Status = status
	payment.FailureReason = reason

	// A deleted order does not fail the callback; the payment record alone
	// carries the outcome.
	if err := s.orders.SetStatus(ctx, payment.OrderID, orderStatus); err != nil && !errors.Is(err, repositories.ErrNotFound) {
		logger.WithCtx(ctx).Error("payment settled but order status update failed",
			"payment", paymentID.Hex(), "order", payment.OrderID.Hex(), "error", err)
	}

	switch status {
	case models.PaymentStatusSuccess:
		event.Fire("payment.succeeded", payment)
	case models.PaymentStatusFailed:
		event.Fire("payment.failed", payment)
	}
	return payment, nil
}

// Get returns one payment with its order, to the order's owner or an admin.
// A payment whose order is gone is visible to admins only.
func (s *PaymentService) Get(ctx context.Context, user models.User, id primitive.ObjectID) (PaymentView, error) {
	payment, err := s.payments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return PaymentView{}, apperr.NotFound("Payment not found")
		}
		return PaymentView{}, fmt.Errorf("get payment: %w", err)
	}

	view := PaymentView{Payment: payment}
	order, err := s.orders.FindByID(ctx, payment.OrderID)
	switch {
	case err == nil:
		view.Order = &order
	case !errors.Is(err, repositories.ErrNotFound):
		return PaymentView{}, fmt.Errorf("get payment: lookup order: %w", err)
	}

	if !user.IsAdmin() {
		if view.Order == nil || view.Order.UserID != user.ID {
			return PaymentView{}, apperr.Authorization("Not authorized to view this payment")
		}
	}
	return view, nil
}

// ListAll returns every payment with its order. Admin only, enforced at the
// route.
func (s *PaymentService) ListAll(ctx context.Context) ([]PaymentView, error) {
	payments, err := s.payments.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	views := make([]PaymentView, 0, len(payments))
	for _, payment := range payments {
		view := PaymentView{Payment: payment}
		if order, err := s.orders.FindByID(ctx, payment.OrderID); err == nil {
			view.Order = &order
		}
		views = append(views, view)
	}
	return views, nil
}

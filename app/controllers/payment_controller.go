package controllers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/apperr"
	"github.com/shashiranjanraj/vastra/pkg/bind"
	"github.com/shashiranjanraj/vastra/pkg/response"
)

// PaymentController handles payment initiation, the gateway callbacks and
// payment reads. The callbacks are unauthenticated webhook-style endpoints;
// the order they refer to is always derived from the payment record, never
// taken from the request body.
type PaymentController struct {
	payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{payments: payments}
}

type initiatePaymentRequest struct {
	OrderID       string `json:"orderId"       validate:"required"`
	PaymentMethod string `json:"paymentMethod" validate:"required"`
}

// callbackRequest is the gateway callback body. OrderID is accepted for wire
// compatibility but ignored.
type callbackRequest struct {
	PaymentID string `json:"paymentId" validate:"required"`
	OrderID   string `json:"orderId"`
	Reason    string `json:"reason"`
}

// Initiate creates a pending payment for an order.
// POST /api/payments
func (c *PaymentController) Initiate(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	var req initiatePaymentRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	orderID, err := primitive.ObjectIDFromHex(req.OrderID)
	if err != nil {
		response.FromError(w, r, apperr.Validation("Invalid order id"))
		return
	}

	payment, err := c.payments.Initiate(r.Context(), user, orderID, req.PaymentMethod)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.Created(w, map[string]string{"paymentId": payment.ID.Hex()})
}

// Success applies a gateway success callback.
// POST /api/payments/success
func (c *PaymentController) Success(w http.ResponseWriter, r *http.Request) {
	paymentID, _, ok := c.bindCallback(w, r)
	if !ok {
		return
	}

	payment, err := c.payments.HandleSuccess(r.Context(), paymentID)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.Success(w, payment)
}

// Failure applies a gateway failure callback.
// POST /api/payments/failure
func (c *PaymentController) Failure(w http.ResponseWriter, r *http.Request) {
	paymentID, reason, ok := c.bindCallback(w, r)
	if !ok {
		return
	}

	payment, err := c.payments.HandleFailure(r.Context(), paymentID, reason)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.Success(w, payment)
}

// Get returns one payment with its order.
// GET /api/payments/{id}
func (c *PaymentController) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		response.FromError(w, r, err)
		return
	}

	view, err := c.payments.Get(r.Context(), user, id)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.Success(w, view)
}

// List returns every payment. Admin only, enforced at the route.
// GET /api/payments
func (c *PaymentController) List(w http.ResponseWriter, r *http.Request) {
	views, err := c.payments.ListAll(r.Context())
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.Success(w, views)
}

func (c *PaymentController) bindCallback(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, string, bool) {
	var req callbackRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return primitive.NilObjectID, "", false
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return primitive.NilObjectID, "", false
	}

	paymentID, err := primitive.ObjectIDFromHex(req.PaymentID)
	if err != nil {
		response.FromError(w, r, apperr.Validation("Invalid payment id"))
		return primitive.NilObjectID, "", false
	}
	return paymentID, req.Reason, true
}

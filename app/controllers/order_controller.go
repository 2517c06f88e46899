package controllers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/apperr"
	"github.com/shashiranjanraj/vastra/pkg/bind"
	"github.com/shashiranjanraj/vastra/pkg/response"
)

// OrderController handles order placement and reads.
type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

type orderItemRequest struct {
	ProductID string  `json:"productId"`
	Quantity  int64   `json:"quantity"`
	Price     float64 `json:"price"`
}

type createOrderRequest struct {
	OrderItems      []orderItemRequest `json:"orderItems"      validate:"required"`
	ShippingAddress models.Address     `json:"shippingAddress"`
	PaymentMethod   string             `json:"paymentMethod"   validate:"required"`
	TotalPrice      float64            `json:"totalPrice"      validate:"required,numeric,gte=0"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (req createOrderRequest) items() ([]models.OrderItem, error) {
	items := make([]models.OrderItem, 0, len(req.OrderItems))
	for _, it := range req.OrderItems {
		id, err := primitive.ObjectIDFromHex(it.ProductID)
		if err != nil {
			return nil, apperr.Validation("Invalid product id in order items")
		}
		if it.Quantity < 1 {
			return nil, apperr.Validation("Order item quantity must be at least 1")
		}
		items = append(items, models.OrderItem{ProductID: id, Quantity: it.Quantity, Price: it.Price})
	}
	return items, nil
}

// Create places an order for the caller.
// POST /api/orders
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	var req createOrderRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	items, err := req.items()
	if err != nil {
		response.FromError(w, r, err)
		return
	}

	order, err := c.orders.Create(r.Context(), user, items, req.TotalPrice, req.ShippingAddress, req.PaymentMethod)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.Created(w, order)
}

// Get returns one order, populated, to its owner or an admin.
// GET /api/orders/{id}
func (c *OrderController) Get(w http.ResponseWriter, r *http.Request) {
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

	view, err := c.orders.Get(r.Context(), user, id)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.Success(w, view)
}

// Mine lists the caller's orders.
// GET /api/orders/myorders
func (c *OrderController) Mine(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	orders, err := c.orders.ListMine(r.Context(), user)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.Success(w, orders)
}

// List returns every order. Admin only, enforced at the route.
// GET /api/orders
func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	views, err := c.orders.ListAll(r.Context())
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.Success(w, views)
}

// UpdateStatus sets an order's status. Admin only, enforced at the route.
// PUT /api/orders/{id}/status
func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.FromError(w, r, err)
		return
	}

	var req updateStatusRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.orders.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.Success(w, order)
}

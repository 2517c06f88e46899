package controllers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/apperr"
	"github.com/shashiranjanraj/vastra/pkg/bind"
	"github.com/shashiranjanraj/vastra/pkg/response"
)

// CartController handles the caller's shopping cart.
type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

type addCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int64  `json:"quantity"  validate:"nullable,integer,gte=1"`
}

type updateCartItemRequest struct {
	Quantity int64 `json:"quantity" validate:"required,integer,gte=1"`
}

// Get returns the caller's cart.
// GET /api/cart
func (c *CartController) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	cart, err := c.carts.Get(r.Context(), user)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.Success(w, cart)
}

// AddItem puts a product in the cart.
// POST /api/cart/items
func (c *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	var req addCartItemRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		response.FromError(w, r, apperr.Validation("Invalid product id"))
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	cart, err := c.carts.AddItem(r.Context(), user, productID, quantity)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.Success(w, cart)
}

// UpdateItem sets a cart line's quantity.
// PUT /api/cart/items/{itemId}
func (c *CartController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	itemID, err := pathID(r, "itemId")
	if err != nil {
		response.FromError(w, r, err)
		return
	}

	var req updateCartItemRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	cart, err := c.carts.UpdateItem(r.Context(), user, itemID, req.Quantity)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.Success(w, cart)
}

// RemoveItem deletes one line from the cart.
// DELETE /api/cart/items/{itemId}
func (c *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	itemID, err := pathID(r, "itemId")
	if err != nil {
		response.FromError(w, r, err)
		return
	}

	cart, err := c.carts.RemoveItem(r.Context(), user, itemID)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.Success(w, cart)
}

// Clear empties the cart.
// DELETE /api/cart
func (c *CartController) Clear(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	cart, err := c.carts.Clear(r.Context(), user)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.Success(w, cart)
}

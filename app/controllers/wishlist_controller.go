package controllers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/apperr"
	"github.com/shashiranjanraj/vastra/pkg/bind"
	"github.com/shashiranjanraj/vastra/pkg/response"
)

// WishlistController handles the caller's wishlist.
type WishlistController struct {
	wishlists *services.WishlistService
}

func NewWishlistController(wishlists *services.WishlistService) *WishlistController {
	return &WishlistController{wishlists: wishlists}
}

type addWishlistRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// Get returns the caller's wishlist.
// GET /api/wishlist
func (c *WishlistController) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	wishlist, err := c.wishlists.Get(r.Context(), user)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.Success(w, wishlist)
}

// Add saves a product to the wishlist.
// POST /api/wishlist
func (c *WishlistController) Add(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	var req addWishlistRequest
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

	wishlist, err := c.wishlists.AddProduct(r.Context(), user, productID)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.Success(w, wishlist)
}

// Remove takes a product off the wishlist.
// DELETE /api/wishlist/{productId}
func (c *WishlistController) Remove(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	productID, err := pathID(r, "productId")
	if err != nil {
		response.FromError(w, r, err)
		return
	}

	wishlist, err := c.wishlists.RemoveProduct(r.Context(), user, productID)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.Success(w, wishlist)
}

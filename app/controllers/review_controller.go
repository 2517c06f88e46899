package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/bind"
	"github.com/shashiranjanraj/vastra/pkg/response"
)

// ReviewController handles product reviews.
type ReviewController struct {
	reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{reviews: reviews}
}

type createReviewRequest struct {
	Rating  int    `json:"rating"  validate:"required,integer,gte=1,lte=5"`
	Comment string `json:"comment" validate:"nullable,max=2000"`
}

// Create adds the caller's review of a product.
// POST /api/products/{productId}/reviews
func (c *ReviewController) Create(w http.ResponseWriter, r *http.Request) {
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

	var req createReviewRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := c.reviews.Create(r.Context(), user, productID, req.Rating, req.Comment); err != nil {
		response.FromError(w, r, err)
		return
	}
	response.Created(w, map[string]string{"message": "Review added"})
}

// List returns a product's reviews with reviewer names.
// GET /api/products/{productId}/reviews
func (c *ReviewController) List(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "productId")
	if err != nil {
		response.FromError(w, r, err)
		return
	}

	views, err := c.reviews.ListForProduct(r.Context(), productID)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.Success(w, views)
}

package controllers

import (
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/apperr"
	"github.com/shashiranjanraj/vastra/pkg/bind"
	"github.com/shashiranjanraj/vastra/pkg/response"
)

// ProductController handles catalog management. Writes are admin only,
// enforced at the route.
type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

type productRequest struct {
	Title          string     `json:"title"          validate:"required,max=200"`
	Description    string     `json:"description"    validate:"nullable,max=5000"`
	Price          float64    `json:"price"          validate:"required,numeric,gte=0"`
	OldPrice       float64    `json:"oldPrice"       validate:"nullable,numeric,gte=0"`
	Category       string     `json:"category"       validate:"nullable"`
	Images         []string   `json:"images"`
	Colors         []string   `json:"colors"`
	OfferExpiry    *time.Time `json:"offerExpiry"`
	StockQuantity  int64      `json:"stockQuantity"  validate:"nullable,integer,gte=0"`
	AdditionalInfo []string   `json:"additionalInfo"`
}

func (req productRequest) toModel() (models.Product, error) {
	product := models.Product{
		Title:          req.Title,
		Description:    req.Description,
		Price:          req.Price,
		OldPrice:       req.OldPrice,
		Images:         req.Images,
		Colors:         req.Colors,
		OfferExpiry:    req.OfferExpiry,
		StockQuantity:  req.StockQuantity,
		AdditionalInfo: req.AdditionalInfo,
	}
	if req.Category != "" {
		id, err := primitive.ObjectIDFromHex(req.Category)
		if err != nil {
			return models.Product{}, apperr.Validation("Invalid category id")
		}
		product.Category = id
	}
	return product, nil
}

// Get returns one product.
// GET /api/products/{productId}
func (c *ProductController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "productId")
	if err != nil {
		response.FromError(w, r, err)
		return
	}

	product, err := c.products.Get(r.Context(), id)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.Success(w, product)
}

// Create adds a product to the catalog.
// POST /api/products
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := req.toModel()
	if err != nil {
		response.FromError(w, r, err)
		return
	}

	created, err := c.products.Create(r.Context(), product)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.Created(w, created)
}

// Update replaces a product's fields.
// PUT /api/products/{productId}
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "productId")
	if err != nil {
		response.FromError(w, r, err)
		return
	}

	var req productRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := req.toModel()
	if err != nil {
		response.FromError(w, r, err)
		return
	}

	updated, err := c.products.Update(r.Context(), id, product)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.Success(w, updated)
}

// Delete removes a product.
// DELETE /api/products/{productId}
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "productId")
	if err != nil {
		response.FromError(w, r, err)
		return
	}

	if err := c.products.Delete(r.Context(), id); err != nil {
		response.FromError(w, r, err)
		return
	}
	response.Message(w, "Product deleted")
}

package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/pkg/apperr"
)

// ProductStore is the slice of the product repository the product service
// needs.
type ProductStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ProductCategories resolves category references on product writes.
type ProductCategories interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Category, error)
}

// ProductService manages the catalog.
type ProductService struct {
	products   ProductStore
	categories ProductCategories
}

func NewProductService(products ProductStore, categories ProductCategories) *ProductService {
	return &ProductService{products: products, categories: categories}
}

// Get returns one product by id.
func (s *ProductService) Get(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Product{}, apperr.NotFound("Product not found")
		}
		return models.Product{}, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

// Create stores a new product after resolving its category reference.
func (s *ProductService) Create(ctx context.Context, product models.Product) (models.Product, error) {
	if err := s.checkCategory(ctx, product.Category); err != nil {
		return models.Product{}, err
	}

	product.Normalize()
	if err := s.products.Create(ctx, &product); err != nil {
		return models.Product{}, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// Update replaces a product's mutable fields. Rating and Sales are derived
// counters owned by the review and order flows and are preserved as stored.
func (s *ProductService) Update(ctx context.Context, id primitive.ObjectID, update models.Product) (models.Product, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return models.Product{}, err
	}
	if err := s.checkCategory(ctx, update.Category); err != nil {
		return models.Product{}, err
	}

	update.ID = existing.ID
	update.Rating = existing.Rating
	update.Sales = existing.Sales
	update.CreatedAt = existing.CreatedAt
	update.Normalize()

	if err := s.products.Update(ctx, &update); err != nil {
		return models.Product{}, fmt.Errorf("update product: %w", err)
	}
	return update, nil
}

// Delete removes a product from the catalog.
func (s *ProductService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperr.NotFound("Product not found")
		}
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (s *ProductService) checkCategory(ctx context.Context, id primitive.ObjectID) error {
	if id.IsZero() {
		return nil
	}
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperr.NotFound("Category not found")
		}
		return fmt.Errorf("lookup category: %w", err)
	}
	return nil
}

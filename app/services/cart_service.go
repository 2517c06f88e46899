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

// CartStore is the slice of the cart repository the cart service needs.
type CartStore interface {
	FindByUser(ctx context.Context, userID primitive.ObjectID) (models.Cart, error)
	Create(ctx context.Context, cart *models.Cart) error
	Update(ctx context.Context, cart *models.Cart) error
}

// CartProducts resolves products being added to a cart.
type CartProducts interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Product, error)
}

// CartService manages the per-user cart. Carts are created lazily: reading a
// cart that does not exist yet returns an empty one without persisting it.
type CartService struct {
	carts    CartStore
	products CartProducts
}

func NewCartService(carts CartStore, products CartProducts) *CartService {
	return &CartService{carts: carts, products: products}
}

// Get returns the caller's cart, or an empty unsaved one.
func (s *CartService) Get(ctx context.Context, user models.User) (models.Cart, error) {
	cart, err := s.carts.FindByUser(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Cart{UserID: user.ID, Items: []models.CartItem{}}, nil
		}
		return models.Cart{}, fmt.Errorf("get cart: %w", err)
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart, nil
}

// AddItem puts a product in the cart. Adding a product that is already in
// the cart adds to its quantity instead of creating a second line. The
// product's first image is snapshotted onto new lines for display.
func (s *CartService) AddItem(ctx context.Context, user models.User, productID primitive.ObjectID, quantity int64) (models.Cart, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Cart{}, apperr.NotFound("Product not found")
		}
		return models.Cart{}, fmt.Errorf("add to cart: lookup product: %w", err)
	}

	cart, err := s.carts.FindByUser(ctx, user.ID)
	fresh := false
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return models.Cart{}, fmt.Errorf("add to cart: %w", err)
		}
		cart = models.Cart{UserID: user.ID}
		fresh = true
	}

	if i := cart.FindProduct(productID); i >= 0 {
		cart.Items[i].Quantity += quantity
	} else {
		cart.Items = append(cart.Items, models.CartItem{
			ID:        primitive.NewObjectID(),
			ProductID: productID,
			Quantity:  quantity,
			Image:     product.FirstImage(),
		})
	}

	if fresh {
		err = s.carts.Create(ctx, &cart)
	} else {
		err = s.carts.Update(ctx, &cart)
	}
	if err != nil {
		return models.Cart{}, fmt.Errorf("add to cart: save: %w", err)
	}
	return cart, nil
}

// UpdateItem sets a cart line's quantity.
func (s *CartService) UpdateItem(ctx context.Context, user models.User, itemID primitive.ObjectID, quantity int64) (models.Cart, error) {
	cart, i, err := s.findItem(ctx, user, itemID)
	if err != nil {
		return models.Cart{}, err
	}

	cart.Items[i].Quantity = quantity
	if err := s.carts.Update(ctx, &cart); err != nil {
		return models.Cart{}, fmt.Errorf("update cart item: %w", err)
	}
	return cart, nil
}

// RemoveItem deletes one line from the cart.
func (s *CartService) RemoveItem(ctx context.Context, user models.User, itemID primitive.ObjectID) (models.Cart, error) {
	cart, i, err := s.findItem(ctx, user, itemID)
	if err != nil {
		return models.Cart{}, err
	}

	cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
	if err := s.carts.Update(ctx, &cart); err != nil {
		return models.Cart{}, fmt.Errorf("remove cart item: %w", err)
	}
	return cart, nil
}

// Clear empties the cart. Clearing a cart that was never created is a no-op.
func (s *CartService) Clear(ctx context.Context, user models.User) (models.Cart, error) {
	cart, err := s.carts.FindByUser(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Cart{UserID: user.ID, Items: []models.CartItem{}}, nil
		}
		return models.Cart{}, fmt.Errorf("clear cart: %w", err)
	}

	cart.Items = []models.CartItem{}
	if err := s.carts.Update(ctx, &cart); err != nil {
		return models.Cart{}, fmt.Errorf("clear cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) findItem(ctx context.Context, user models.User, itemID primitive.ObjectID) (models.Cart, int, error) {
	cart, err := s.carts.FindByUser(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Cart{}, 0, apperr.NotFound("Cart not found")
		}
		return models.Cart{}, 0, fmt.Errorf("load cart: %w", err)
	}

	i := cart.FindItem(itemID)
	if i < 0 {
		return models.Cart{}, 0, apperr.NotFound("Cart item not found")
	}
	return cart, i, nil
}

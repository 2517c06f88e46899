package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/pkg/apperr"
	"github.com/shashiranjanraj/vastra/pkg/collection"
)

// WishlistStore is the slice of the wishlist repository the wishlist
// service needs.
type WishlistStore interface {
	FindByUser(ctx context.Context, userID primitive.ObjectID) (models.Wishlist, error)
	Create(ctx context.Context, wishlist *models.Wishlist) error
	Update(ctx context.Context, wishlist *models.Wishlist) error
}

// WishlistService manages the per-user wishlist with the same lazy lifecycle
// as the cart.
type WishlistService struct {
	wishlists WishlistStore
	products  CartProducts
}

func NewWishlistService(wishlists WishlistStore, products CartProducts) *WishlistService {
	return &WishlistService{wishlists: wishlists, products: products}
}

// Get returns the caller's wishlist, or an empty unsaved one.
func (s *WishlistService) Get(ctx context.Context, user models.User) (models.Wishlist, error) {
	wishlist, err := s.wishlists.FindByUser(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Wishlist{UserID: user.ID, Items: []models.WishlistItem{}}, nil
		}
		return models.Wishlist{}, fmt.Errorf("get wishlist: %w", err)
	}
	if wishlist.Items == nil {
		wishlist.Items = []models.WishlistItem{}
	}
	return wishlist, nil
}

// AddProduct saves a product to the wishlist. Adding a product that is
// already on the list is a no-op, not an error.
func (s *WishlistService) AddProduct(ctx context.Context, user models.User, productID primitive.ObjectID) (models.Wishlist, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Wishlist{}, apperr.NotFound("Product not found")
		}
		return models.Wishlist{}, fmt.Errorf("add to wishlist: lookup product: %w", err)
	}

	wishlist, err := s.wishlists.FindByUser(ctx, user.ID)
	fresh := false
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return models.Wishlist{}, fmt.Errorf("add to wishlist: %w", err)
		}
		wishlist = models.Wishlist{UserID: user.ID}
		fresh = true
	}

	if !wishlist.HasProduct(productID) {
		wishlist.Items = append(wishlist.Items, models.WishlistItem{
			ID:        primitive.NewObjectID(),
			ProductID: productID,
		})
	}

	if fresh {
		err = s.wishlists.Create(ctx, &wishlist)
	} else {
		err = s.wishlists.Update(ctx, &wishlist)
	}
	if err != nil {
		return models.Wishlist{}, fmt.Errorf("add to wishlist: save: %w", err)
	}
	return wishlist, nil
}

// RemoveProduct takes a product off the wishlist.
func (s *WishlistService) RemoveProduct(ctx context.Context, user models.User, productID primitive.ObjectID) (models.Wishlist, error) {
	wishlist, err := s.wishlists.FindByUser(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Wishlist{}, apperr.NotFound("Wishlist not found")
		}
		return models.Wishlist{}, fmt.Errorf("remove from wishlist: %w", err)
	}

	if !wishlist.HasProduct(productID) {
		return models.Wishlist{}, apperr.NotFound("Product not in wishlist")
	}

	wishlist.Items = collection.Filter(wishlist.Items, func(it models.WishlistItem) bool {
		return it.ProductID != productID
	})
	if wishlist.Items == nil {
		wishlist.Items = []models.WishlistItem{}
	}
	if err := s.wishlists.Update(ctx, &wishlist); err != nil {
		return models.Wishlist{}, fmt.Errorf("remove from wishlist: %w", err)
	}
	return wishlist, nil
}

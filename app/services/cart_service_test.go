package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/apperr"
)

func TestCartLazyCreation(t *testing.T) {
	carts := newFakeCarts()
	svc := NewCartService(carts, newFakeProducts())
	user := models.User{ID: primitive.NewObjectID()}

	cart, err := svc.Get(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, user.ID, cart.UserID)
	assert.Empty(t, cart.Items)
	assert.Empty(t, carts.byUser) // reading does not persist
}

func TestCartAddItemUpsertsQuantity(t *testing.T) {
	productID := primitive.NewObjectID()
	products := newFakeProducts(models.Product{
		ID:     productID,
		Images: []string{"kurta-front.jpg", "kurta-back.jpg"},
	})
	carts := newFakeCarts()
	svc := NewCartService(carts, products)

	ctx := context.Background()
	user := models.User{ID: primitive.NewObjectID()}

	cart, err := svc.AddItem(ctx, user, productID, 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(1), cart.Items[0].Quantity)
	assert.Equal(t, "kurta-front.jpg", cart.Items[0].Image)
	assert.False(t, cart.Items[0].ID.IsZero())

	// Same product again folds into the existing line.
	cart, err = svc.AddItem(ctx, user, productID, 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(3), cart.Items[0].Quantity)
}

func TestCartAddItemMissingProduct(t *testing.T) {
	svc := NewCartService(newFakeCarts(), newFakeProducts())

	_, err := svc.AddItem(context.Background(), models.User{ID: primitive.NewObjectID()}, primitive.NewObjectID(), 1)
	assert.True(t, errors.Is(err, apperr.NotFound("")))
}

func TestCartUpdateAndRemoveItem(t *testing.T) {
	productID := primitive.NewObjectID()
	products := newFakeProducts(models.Product{ID: productID})
	svc := NewCartService(newFakeCarts(), products)

	ctx := context.Background()
	user := models.User{ID: primitive.NewObjectID()}

	cart, err := svc.AddItem(ctx, user, productID, 1)
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	cart, err = svc.UpdateItem(ctx, user, itemID, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), cart.Items[0].Quantity)

	_, err = svc.UpdateItem(ctx, user, primitive.NewObjectID(), 5)
	assert.True(t, errors.Is(err, apperr.NotFound("")))

	cart, err = svc.RemoveItem(ctx, user, itemID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartClear(t *testing.T) {
	productID := primitive.NewObjectID()
	products := newFakeProducts(models.Product{ID: productID})
	carts := newFakeCarts()
	svc := NewCartService(carts, products)

	ctx := context.Background()
	user := models.User{ID: primitive.NewObjectID()}

	_, err := svc.AddItem(ctx, user, productID, 2)
	require.NoError(t, err)

	cart, err := svc.Clear(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Empty(t, carts.byUser[user.ID].Items)
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	productID := primitive.NewObjectID()
	products := newFakeProducts(models.Product{ID: productID})
	svc := NewWishlistService(newFakeWishlists(), products)

	ctx := context.Background()
	user := models.User{ID: primitive.NewObjectID()}

	wishlist, err := svc.AddProduct(ctx, user, productID)
	require.NoError(t, err)
	assert.Len(t, wishlist.Items, 1)

	wishlist, err = svc.AddProduct(ctx, user, productID)
	require.NoError(t, err)
	assert.Len(t, wishlist.Items, 1)

	wishlist, err = svc.RemoveProduct(ctx, user, productID)
	require.NoError(t, err)
	assert.Empty(t, wishlist.Items)

	_, err = svc.RemoveProduct(ctx, user, productID)
	assert.True(t, errors.Is(err, apperr.NotFound("")))
}

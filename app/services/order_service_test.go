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

func TestCreateOrderAdjustsStockAndSales(t *testing.T) {
	productID := primitive.NewObjectID()
	products := newFakeProducts(models.Product{
		ID:            productID,
		Title:         "Linen Kurta",
		Price:         49.99,
		StockQuantity: 10,
		Sales:         0,
		InStock:       true,
	})
	orders := newFakeOrders()
	svc := NewOrderService(orders, products, newFakeUsers())

	user := models.User{ID: primitive.NewObjectID(), Role: models.RoleCustomer}
	items := []models.OrderItem{{ProductID: productID, Quantity: 3, Price: 49.99}}

	order, err := svc.Create(context.Background(), user, items, 149.97, models.Address{City: "Pune"}, "card")
	require.NoError(t, err)

	assert.False(t, order.ID.IsZero())
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, user.ID, order.UserID)
	assert.Equal(t, 149.97, order.TotalPrice)

	p := products.byID[productID]
	assert.Equal(t, int64(7), p.StockQuantity)
	assert.Equal(t, int64(3), p.Sales)
	assert.True(t, p.InStock)
}

func TestCreateOrderEmptyItems(t *testing.T) {
	svc := NewOrderService(newFakeOrders(), newFakeProducts(), newFakeUsers())

	_, err := svc.Create(context.Background(), models.User{ID: primitive.NewObjectID()}, nil, 0, models.Address{}, "card")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.Validation("")))
}

func TestCreateOrderSkipsMissingProducts(t *testing.T) {
	known := primitive.NewObjectID()
	missing := primitive.NewObjectID()
	products := newFakeProducts(models.Product{ID: known, StockQuantity: 5, InStock: true})
	orders := newFakeOrders()
	svc := NewOrderService(orders, products, newFakeUsers())

	items := []models.OrderItem{
		{ProductID: known, Quantity: 2, Price: 10},
		{ProductID: missing, Quantity: 1, Price: 20},
	}
	order, err := svc.Create(context.Background(), models.User{ID: primitive.NewObjectID()}, items, 40, models.Address{}, "cod")
	require.NoError(t, err)

	// One adjustment attempt per line item, missing product included.
	assert.Equal(t, []primitive.ObjectID{known, missing}, products.adjustCalls)

	// The order keeps both items even though one product is gone.
	saved := orders.byID[order.ID]
	assert.Len(t, saved.Items, 2)
	assert.Equal(t, int64(3), products.byID[known].StockQuantity)
}

func TestGetOrderAuthorization(t *testing.T) {
	owner := models.User{ID: primitive.NewObjectID(), Role: models.RoleCustomer}
	admin := models.User{ID: primitive.NewObjectID(), Role: models.RoleAdmin}
	stranger := models.User{ID: primitive.NewObjectID(), Role: models.RoleCustomer}

	order := models.Order{ID: primitive.NewObjectID(), UserID: owner.ID, Status: models.OrderStatusPending}
	svc := NewOrderService(newFakeOrders(order), newFakeProducts(), newFakeUsers())

	_, err := svc.Get(context.Background(), owner, order.ID)
	assert.NoError(t, err)

	_, err = svc.Get(context.Background(), admin, order.ID)
	assert.NoError(t, err)

	_, err = svc.Get(context.Background(), stranger, order.ID)
	assert.True(t, errors.Is(err, apperr.Authorization("")))

	_, err = svc.Get(context.Background(), owner, primitive.NewObjectID())
	assert.True(t, errors.Is(err, apperr.NotFound("")))
}

func TestGetOrderPopulatesItemsAndUser(t *testing.T) {
	productID := primitive.NewObjectID()
	owner := models.User{ID: primitive.NewObjectID(), Name: "Asha", Email: "asha@example.com"}

	order := models.Order{
		ID:     primitive.NewObjectID(),
		UserID: owner.ID,
		Items:  []models.OrderItem{{ProductID: productID, Quantity: 1, Price: 30}},
	}
	products := newFakeProducts(models.Product{ID: productID, Title: "Silk Scarf", Price: 35})
	svc := NewOrderService(newFakeOrders(order), products, newFakeUsers(owner))

	view, err := svc.Get(context.Background(), owner, order.ID)
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, "Silk Scarf", view.Items[0].Title)
	assert.Equal(t, 35.0, view.Items[0].CurrentPrice)
	assert.Equal(t, 30.0, view.Items[0].Price) // price at order time preserved
	require.NotNil(t, view.User)
	assert.Equal(t, "Asha", view.User.Name)
}

func TestUpdateOrderStatus(t *testing.T) {
	order := models.Order{ID: primitive.NewObjectID(), UserID: primitive.NewObjectID(), Status: models.OrderStatusPending}
	orders := newFakeOrders(order)
	svc := NewOrderService(orders, newFakeProducts(), newFakeUsers())

	updated, err := svc.UpdateStatus(context.Background(), order.ID, models.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, updated.Status)

	_, err = svc.UpdateStatus(context.Background(), order.ID, "teleported")
	assert.True(t, errors.Is(err, apperr.Validation("")))
	assert.Equal(t, models.OrderStatusShipped, orders.byID[order.ID].Status)

	_, err = svc.UpdateStatus(context.Background(), primitive.NewObjectID(), models.OrderStatusShipped)
	assert.True(t, errors.Is(err, apperr.NotFound("")))
}

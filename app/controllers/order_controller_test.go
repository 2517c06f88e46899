package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/middleware"
)

type memOrders struct {
	byID map[primitive.ObjectID]models.Order
}

func (m *memOrders) Create(_ context.Context, order *models.Order) error {
	order.ID = primitive.NewObjectID()
	m.byID[order.ID] = *order
	return nil
}

func (m *memOrders) FindByID(_ context.Context, id primitive.ObjectID) (models.Order, error) {
	o, ok := m.byID[id]
	if !ok {
		return models.Order{}, repositories.ErrNotFound
	}
	return o, nil
}

func (m *memOrders) FindByUser(_ context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	var out []models.Order
	for _, o := range m.byID {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOrders) FindAll(_ context.Context) ([]models.Order, error) {
	var out []models.Order
	for _, o := range m.byID {
		out = append(out, o)
	}
	return out, nil
}

func (m *memOrders) SetStatus(_ context.Context, id primitive.ObjectID, status string) error {
	o, ok := m.byID[id]
	if !ok {
		return repositories.ErrNotFound
	}
	o.Status = status
	m.byID[id] = o
	return nil
}

type memProducts struct {
	byID map[primitive.ObjectID]models.Product
}

func (m *memProducts) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	var out []models.Product
	for _, id := range ids {
		if p, ok := m.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProducts) AdjustStockAndSales(_ context.Context, id primitive.ObjectID, quantity int64) (bool, error) {
	p, ok := m.byID[id]
	if !ok {
		return false, nil
	}
	p.StockQuantity -= quantity
	p.Sales += quantity
	m.byID[id] = p
	return true, nil
}

type memUsers struct{}

func (memUsers) FindByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	return models.User{}, repositories.ErrNotFound
}

func newOrderController(products *memProducts) (*OrderController, *memOrders) {
	orders := &memOrders{byID: map[primitive.ObjectID]models.Order{}}
	svc := services.NewOrderService(orders, products, memUsers{})
	return NewOrderController(svc), orders
}

// asUser injects an authenticated user the way the auth middleware does.
func asUser(r *http.Request, user models.User) *http.Request {
	return r.WithContext(middleware.WithUser(r.Context(), user))
}

func TestCreateOrderHandlerEmptyItems(t *testing.T) {
	ctrl, _ := newOrderController(&memProducts{byID: map[primitive.ObjectID]models.Product{}})
	user := models.User{ID: primitive.NewObjectID(), Role: models.RoleCustomer}

	body := `{"orderItems":[],"paymentMethod":"card","totalPrice":10}`
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(body)), user)
	rec := httptest.NewRecorder()

	ctrl.Create(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrderHandlerHappyPath(t *testing.T) {
	productID := primitive.NewObjectID()
	products := &memProducts{byID: map[primitive.ObjectID]models.Product{
		productID: {ID: productID, StockQuantity: 10},
	}}
	ctrl, orders := newOrderController(products)
	user := models.User{ID: primitive.NewObjectID(), Role: models.RoleCustomer}

	body := fmt.Sprintf(`{
		"orderItems":[{"productId":%q,"quantity":3,"price":49.99}],
		"shippingAddress":{"city":"Pune"},
		"paymentMethod":"card",
		"totalPrice":149.97
	}`, productID.Hex())

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(body)), user)
	rec := httptest.NewRecorder()

	ctrl.Create(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Data models.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, models.OrderStatusPending, envelope.Data.Status)
	assert.Len(t, orders.byID, 1)
	assert.Equal(t, int64(7), products.byID[productID].StockQuantity)
	assert.Equal(t, int64(3), products.byID[productID].Sales)
}

func TestCreateOrderHandlerBadProductID(t *testing.T) {
	ctrl, _ := newOrderController(&memProducts{byID: map[primitive.ObjectID]models.Product{}})
	user := models.User{ID: primitive.NewObjectID()}

	body := `{"orderItems":[{"productId":"nope","quantity":1,"price":5}],"paymentMethod":"card","totalPrice":5}`
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(body)), user)
	rec := httptest.NewRecorder()

	ctrl.Create(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

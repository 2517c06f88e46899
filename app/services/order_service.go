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
	"github.com/shashiranjanraj/vastra/pkg/event"
	"github.com/shashiranjanraj/vastra/pkg/logger"
)

// OrderStore is the slice of the order repository the order service needs.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Order, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) error
}

// OrderProducts covers the product mutations and lookups the order flow
// performs.
type OrderProducts interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)
	AdjustStockAndSales(ctx context.Context, id primitive.ObjectID, quantity int64) (bool, error)
}

// OrderUsers resolves order owners for populated reads.
type OrderUsers interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
}

var orderStatuses = map[string]bool{
	models.OrderStatusPending:       true,
	models.OrderStatusProcessed:     true,
	models.OrderStatusShipped:       true,
	models.OrderStatusDelivered:     true,
	models.OrderStatusCanceled:      true,
	models.OrderStatusPaymentFailed: true,
}

// OrderItemView is a line item annotated with the product's current title
// and price. The embedded Price stays the price at order time.
type OrderItemView struct {
	models.OrderItem
	Title        string  `json:"title,omitempty"`
	CurrentPrice float64 `json:"currentPrice,omitempty"`
}

// OrderView is an order with its owner and item products resolved.
type OrderView struct {
	models.Order
	Items []OrderItemView    `json:"items"`
	User  *models.PublicUser `json:"user,omitempty"`
}

// OrderService owns order creation, the stock side effects, and reads.
type OrderService struct {
	orders   OrderStore
	products OrderProducts
	users    OrderUsers
}

func NewOrderService(orders OrderStore, products OrderProducts, users OrderUsers) *OrderService {
	return &OrderService{orders: orders, products: products, users: users}
}

// Create persists a new pending order and then applies its stock and sales
// side effects, one product at a time.
//
// Line items are taken as submitted, including unit price and total. The
// order is saved before any stock adjustment, so a partial failure leaves
// the order intact with some products adjusted and others not; there is no
// rollback. A line item whose product no longer exists is skipped silently.
func (s *OrderService) Create(ctx context.Context, user models.User, items []models.OrderItem, total float64, address models.Address, paymentMethod string) (models.Order, error) {
	if len(items) == 0 {
		return models.Order{}, apperr.Validation("No order items")
	}

	order := models.Order{
		UserID:          user.ID,
		Items:           items,
		TotalPrice:      total,
		ShippingAddress: address,
		Status:          models.OrderStatusPending,
		PaymentMethod:   paymentMethod,
	}
	if err := s.orders.Create(ctx, &order); err != nil {
		return models.Order{}, fmt.Errorf("create order: %w", err)
	}

	log := logger.WithCtx(ctx)
	for _, item := range order.Items {
		matched, err := s.products.AdjustStockAndSales(ctx, item.ProductID, item.Quantity)
		if err != nil {
			log.Error("order stock adjustment failed",
				"order", order.ID.Hex(), "product", item.ProductID.Hex(), "error", err)
			continue
		}
		if !matched {
			log.Warn("order references missing product, stock untouched",
				"order", order.ID.Hex(), "product", item.ProductID.Hex())
		}
	}

	event.Fire("order.created", order)
	return order, nil
}

// Get returns one order, populated, to its owner or an admin.
func (s *OrderService) Get(ctx context.Context, user models.User, id primitive.ObjectID) (OrderView, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return OrderView{}, apperr.NotFound("Order not found")
		}
		return OrderView{}, fmt.Errorf("get order: %w", err)
	}

	if order.UserID != user.ID && !user.IsAdmin() {
		return OrderView{}, apperr.Authorization("Not authorized to view this order")
	}
	return s.populate(ctx, order), nil
}

// ListMine returns every order placed by the caller.
func (s *OrderService) ListMine(ctx context.Context, user models.User) ([]models.Order, error) {
	orders, err := s.orders.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list my orders: %w", err)
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// ListAll returns every order, populated. Admin only, enforced at the route.
func (s *OrderService) ListAll(ctx context.Context) ([]OrderView, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, s.populate(ctx, order))
	}
	return views, nil
}

// UpdateStatus sets an order's status. The value must be one of the known
// statuses; arbitrary strings are rejected.
func (s *OrderService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (models.Order, error) {
	if !orderStatuses[status] {
		return models.Order{}, apperr.Validation("Invalid order status")
	}

	if err := s.orders.SetStatus(ctx, id, status); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Order{}, apperr.NotFound("Order not found")
		}
		return models.Order{}, fmt.Errorf("update order status: %w", err)
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return models.Order{}, fmt.Errorf("reload order: %w", err)
	}
	return order, nil
}

// populate resolves the order's owner and item products. Resolution is best
// effort: a missing user or product leaves the annotation empty rather than
// failing the read.
func (s *OrderService) populate(ctx context.Context, order models.Order) OrderView {
	view := OrderView{Order: order, Items: make([]OrderItemView, 0, len(order.Items))}

	ids := collection.Map(order.Items, func(it models.OrderItem) primitive.ObjectID { return it.ProductID })

	byID := map[string]models.Product{}
	if len(ids) > 0 {
		products, err := s.products.FindByIDs(ctx, ids)
		if err != nil {
			logger.WithCtx(ctx).Error("populate order products", "order", order.ID.Hex(), "error", err)
		}
		byID = collection.KeyBy(products, func(p models.Product) string { return p.ID.Hex() })
	}

	for _, item := range order.Items {
		iv := OrderItemView{OrderItem: item}
		if p, ok := byID[item.ProductID.Hex()]; ok {
			iv.Title = p.Title
			iv.CurrentPrice = p.Price
		}
		view.Items = append(view.Items, iv)
	}

	if owner, err := s.users.FindByID(ctx, order.UserID); err == nil {
		pub := owner.Public()
		view.User = &pub
	}
	return view
}

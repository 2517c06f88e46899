package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
)

// In-memory stand-ins for the repository slices the services consume.

type fakeProducts struct {
	byID        map[primitive.ObjectID]models.Product
	adjustCalls []primitive.ObjectID
	ratings     map[primitive.ObjectID]float64
}

func newFakeProducts(products ...models.Product) *fakeProducts {
	f := &fakeProducts{
		byID:    map[primitive.ObjectID]models.Product{},
		ratings: map[primitive.ObjectID]float64{},
	}
	for _, p := range products {
		f.byID[p.ID] = p
	}
	return f
}

func (f *fakeProducts) FindByID(_ context.Context, id primitive.ObjectID) (models.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return models.Product{}, repositories.ErrNotFound
	}
	return p, nil
}

func (f *fakeProducts) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	var out []models.Product
	for _, id := range ids {
		if p, ok := f.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProducts) AdjustStockAndSales(_ context.Context, id primitive.ObjectID, quantity int64) (bool, error) {
	f.adjustCalls = append(f.adjustCalls, id)
	p, ok := f.byID[id]
	if !ok {
		return false, nil
	}
	p.StockQuantity -= quantity
	p.Sales += quantity
	p.InStock = p.StockQuantity > 0
	f.byID[id] = p
	return true, nil
}

func (f *fakeProducts) SetRating(_ context.Context, id primitive.ObjectID, rating float64) error {
	if p, ok := f.byID[id]; ok {
		p.Rating = rating
		f.byID[id] = p
	}
	f.ratings[id] = rating
	return nil
}

type fakeOrders struct {
	byID map[primitive.ObjectID]models.Order
}

func newFakeOrders(orders ...models.Order) *fakeOrders {
	f := &fakeOrders{byID: map[primitive.ObjectID]models.Order{}}
	for _, o := range orders {
		f.byID[o.ID] = o
	}
	return f
}

func (f *fakeOrders) Create(_ context.Context, order *models.Order) error {
	order.ID = primitive.NewObjectID()
	f.byID[order.ID] = *order
	return nil
}

func (f *fakeOrders) FindByID(_ context.Context, id primitive.ObjectID) (models.Order, error) {
	o, ok := f.byID[id]
	if !ok {
		return models.Order{}, repositories.ErrNotFound
	}
	return o, nil
}

func (f *fakeOrders) FindByUser(_ context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.byID {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrders) FindAll(_ context.Context) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.byID {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrders) SetStatus(_ context.Context, id primitive.ObjectID, status string) error {
	o, ok := f.byID[id]
	if !ok {
		return repositories.ErrNotFound
	}
	o.Status = status
	f.byID[id] = o
	return nil
}

type fakeUsers struct {
	byID map[primitive.ObjectID]models.User
}

func newFakeUsers(users ...models.User) *fakeUsers {
	f := &fakeUsers{byID: map[primitive.ObjectID]models.User{}}
	for _, u := range users {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUsers) FindByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return models.User{}, repositories.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (models.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repositories.ErrNotFound
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	for _, u := range f.byID {
		if u.Email == user.Email {
			return repositories.ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID()
	f.byID[user.ID] = *user
	return nil
}

func (f *fakeUsers) Update(_ context.Context, user *models.User) error {
	f.byID[user.ID] = *user
	return nil
}

type fakePayments struct {
	byID map[primitive.ObjectID]models.Payment
}

func newFakePayments(payments ...models.Payment) *fakePayments {
	f := &fakePayments{byID: map[primitive.ObjectID]models.Payment{}}
	for _, p := range payments {
		f.byID[p.ID] = p
	}
	return f
}

func (f *fakePayments) Create(_ context.Context, payment *models.Payment) error {
	payment.ID = primitive.NewObjectID()
	f.byID[payment.ID] = *payment
	return nil
}

func (f *fakePayments) FindByID(_ context.Context, id primitive.ObjectID) (models.Payment, error) {
	p, ok := f.byID[id]
	if !ok {
		return models.Payment{}, repositories.ErrNotFound
	}
	return p, nil
}

func (f *fakePayments) FindAll(_ context.Context) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePayments) HasSuccessForOrder(_ context.Context, orderID primitive.ObjectID) (bool, error) {
	for _, p := range f.byID {
		if p.OrderID == orderID && p.Status == models.PaymentStatusSuccess {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePayments) SetStatus(_ context.Context, id primitive.ObjectID, status, failureReason string) error {
	p, ok := f.byID[id]
	if !ok {
		return repositories.ErrNotFound
	}
	p.Status = status
	p.FailureReason = failureReason
	f.byID[id] = p
	return nil
}

type reviewKey struct {
	user    primitive.ObjectID
	product primitive.ObjectID
}

type fakeReviews struct {
	reviews []models.Review
	seen    map[reviewKey]bool
}

func newFakeReviews() *fakeReviews {
	return &fakeReviews{seen: map[reviewKey]bool{}}
}

func (f *fakeReviews) Create(_ context.Context, review *models.Review) error {
	key := reviewKey{user: review.UserID, product: review.ProductID}
	if f.seen[key] {
		return repositories.ErrDuplicate
	}
	f.seen[key] = true
	review.ID = primitive.NewObjectID()
	f.reviews = append(f.reviews, *review)
	return nil
}

func (f *fakeReviews) FindByProduct(_ context.Context, productID primitive.ObjectID) ([]models.Review, error) {
	var out []models.Review
	for _, r := range f.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviews) AverageForProduct(_ context.Context, productID primitive.ObjectID) (float64, error) {
	sum, n := 0, 0
	for _, r := range f.reviews {
		if r.ProductID == productID {
			sum += r.Rating
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return float64(sum) / float64(n), nil
}

type fakeCarts struct {
	byUser map[primitive.ObjectID]models.Cart
}

func newFakeCarts() *fakeCarts {
	return &fakeCarts{byUser: map[primitive.ObjectID]models.Cart{}}
}

func (f *fakeCarts) FindByUser(_ context.Context, userID primitive.ObjectID) (models.Cart, error) {
	c, ok := f.byUser[userID]
	if !ok {
		return models.Cart{}, repositories.ErrNotFound
	}
	return c, nil
}

func (f *fakeCarts) Create(_ context.Context, cart *models.Cart) error {
	cart.ID = primitive.NewObjectID()
	f.byUser[cart.UserID] = *cart
	return nil
}

func (f *fakeCarts) Update(_ context.Context, cart *models.Cart) error {
	f.byUser[cart.UserID] = *cart
	return nil
}

type fakeWishlists struct {
	byUser map[primitive.ObjectID]models.Wishlist
}

func newFakeWishlists() *fakeWishlists {
	return &fakeWishlists{byUser: map[primitive.ObjectID]models.Wishlist{}}
}

func (f *fakeWishlists) FindByUser(_ context.Context, userID primitive.ObjectID) (models.Wishlist, error) {
	w, ok := f.byUser[userID]
	if !ok {
		return models.Wishlist{}, repositories.ErrNotFound
	}
	return w, nil
}

func (f *fakeWishlists) Create(_ context.Context, wishlist *models.Wishlist) error {
	wishlist.ID = primitive.NewObjectID()
	f.byUser[wishlist.UserID] = *wishlist
	return nil
}

func (f *fakeWishlists) Update(_ context.Context, wishlist *models.Wishlist) error {
	f.byUser[wishlist.UserID] = *wishlist
	return nil
}

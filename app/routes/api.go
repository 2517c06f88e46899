// Package routes wires controllers onto the router.
package routes

import (
	"github.com/shashiranjanraj/vastra/app/controllers"
	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/middleware"
	"github.com/shashiranjanraj/vastra/pkg/rbac"
	"github.com/shashiranjanraj/vastra/pkg/router"
)

// Controllers bundles every controller plus the user finder the auth
// middleware resolves tokens against.
type Controllers struct {
	Users     *controllers.UserController
	Products  *controllers.ProductController
	Orders    *controllers.OrderController
	Payments  *controllers.PaymentController
	Reviews   *controllers.ReviewController
	Cart      *controllers.CartController
	Wishlist  *controllers.WishlistController
	TokenAuth middleware.UserFinder
}

// RegisterAPI mounts the REST surface under /api.
func RegisterAPI(r *router.Router, c Controllers) {
	authed := middleware.Auth(c.TokenAuth)
	admin := rbac.HasRole(models.RoleAdmin)

	api := r.Group("/api")

	users := api.Group("/users")
	users.Post("/register", "users.register", c.Users.Register)
	users.Post("/login", "users.login", c.Users.Login)
	users.Get("/profile", "users.profile", c.Users.Profile, authed)
	users.Put("/profile", "users.profile.update", c.Users.UpdateProfile, authed)

	// chi requires one wildcard name per path segment, so the whole product
	// subtree uses {productId}.
	products := api.Group("/products")
	products.Get("/{productId}", "products.show", c.Products.Get)
	products.Post("/", "products.store", c.Products.Create, authed, admin)
	products.Put("/{productId}", "products.update", c.Products.Update, authed, admin)
	products.Delete("/{productId}", "products.destroy", c.Products.Delete, authed, admin)

	// Reviews hang off the product resource.
	products.Get("/{productId}/reviews", "reviews.index", c.Reviews.List)
	products.Post("/{productId}/reviews", "reviews.store", c.Reviews.Create, authed)

	cart := api.Group("/cart", authed)
	cart.Get("/", "cart.show", c.Cart.Get)
	cart.Delete("/", "cart.clear", c.Cart.Clear)
	cart.Post("/", "cart.items.add", c.Cart.AddItem)
	cart.Put("/{itemId}", "cart.items.update", c.Cart.UpdateItem)
	cart.Delete("/{itemId}", "cart.items.remove", c.Cart.RemoveItem)

	wishlist := api.Group("/wishlist", authed)
	wishlist.Get("/", "wishlist.show", c.Wishlist.Get)
	wishlist.Post("/", "wishlist.add", c.Wishlist.Add)
	wishlist.Delete("/{productId}", "wishlist.remove", c.Wishlist.Remove)

	orders := api.Group("/orders", authed)
	orders.Post("/", "orders.store", c.Orders.Create)
	orders.Get("/myorders", "orders.mine", c.Orders.Mine)
	orders.Get("/{id}", "orders.show", c.Orders.Get)
	orders.Get("/", "orders.index", c.Orders.List, admin)
	orders.Put("/{id}/status", "orders.status", c.Orders.UpdateStatus, admin)

	// Gateway callbacks are unauthenticated by design; everything else on
	// /payments requires a token.
	payments := api.Group("/payments")
	payments.Post("/success", "payments.success", c.Payments.Success)
	payments.Post("/failure", "payments.failure", c.Payments.Failure)
	payments.Post("/", "payments.store", c.Payments.Initiate, authed)
	payments.Get("/{id}", "payments.show", c.Payments.Get, authed)
	payments.Get("/", "payments.index", c.Payments.List, authed, admin)
}

// Package server assembles the application and runs the HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/vastra/app/controllers"
	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/app/routes"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/config"
	_ "github.com/shashiranjanraj/vastra/database/migrations" // register migrations
	_ "github.com/shashiranjanraj/vastra/database/seeders"    // register seeders
	"github.com/shashiranjanraj/vastra/pkg/cache"
	"github.com/shashiranjanraj/vastra/pkg/database"
	"github.com/shashiranjanraj/vastra/pkg/event"
	"github.com/shashiranjanraj/vastra/pkg/logger"
	"github.com/shashiranjanraj/vastra/pkg/metrics"
	"github.com/shashiranjanraj/vastra/pkg/middleware"
	"github.com/shashiranjanraj/vastra/pkg/reqid"
	"github.com/shashiranjanraj/vastra/pkg/router"
)

const shutdownTimeout = 15 * time.Second

// BuildRouter wires repositories, services, controllers and middleware into
// a ready router. Extracted from Start so the route:list command can build
// the application without serving.
func BuildRouter(db *mongo.Database) *router.Router {
	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	wishlistRepo := repositories.NewWishlistRepository(db)

	authSvc := services.NewAuthService(userRepo)
	productSvc := services.NewProductService(productRepo, categoryRepo)
	orderSvc := services.NewOrderService(orderRepo, productRepo, userRepo)
	paymentSvc := services.NewPaymentService(paymentRepo, orderRepo)
	reviewSvc := services.NewReviewService(reviewRepo, productRepo, userRepo)
	cartSvc := services.NewCartService(cartRepo, productRepo)
	wishlistSvc := services.NewWishlistService(wishlistRepo, productRepo)

	r := router.New()
	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
	)
	r.HandleFunc("/metrics", metrics.Handler())

	routes.RegisterAPI(r, routes.Controllers{
		Users:     controllers.NewUserController(authSvc),
		Products:  controllers.NewProductController(productSvc),
		Orders:    controllers.NewOrderController(orderSvc),
		Payments:  controllers.NewPaymentController(paymentSvc),
		Reviews:   controllers.NewReviewController(reviewSvc),
		Cart:      controllers.NewCartController(cartSvc),
		Wishlist:  controllers.NewWishlistController(wishlistSvc),
		TokenAuth: userRepo,
	})
	return r
}

// registerListeners hooks the domain events up to logging and the
// Prometheus counters.
func registerListeners() {
	event.Listen("order.created", func(payload interface{}) {
		metrics.OrdersCreated.Inc()
		if order, ok := payload.(models.Order); ok {
			logger.Info("order created",
				"order", order.ID.Hex(), "user", order.UserID.Hex(),
				"items", len(order.Items), "total", order.TotalPrice)
		}
	})
	event.Listen("payment.succeeded", func(payload interface{}) {
		metrics.PaymentsSettled.WithLabelValues(models.PaymentStatusSuccess).Inc()
		if payment, ok := payload.(models.Payment); ok {
			logger.Info("payment succeeded",
				"payment", payment.ID.Hex(), "order", payment.OrderID.Hex(), "amount", payment.Amount)
		}
	})
	event.Listen("payment.failed", func(payload interface{}) {
		metrics.PaymentsSettled.WithLabelValues(models.PaymentStatusFailed).Inc()
		if payment, ok := payload.(models.Payment); ok {
			logger.Warn("payment failed",
				"payment", payment.ID.Hex(), "order", payment.OrderID.Hex(), "reason", payment.FailureReason)
		}
	})
	event.Listen("review.created", func(payload interface{}) {
		metrics.ReviewsCreated.Inc()
	})
}

// Start boots the application and serves HTTP until SIGINT or SIGTERM.
// A store connection failure at startup is fatal; an unreachable cache is
// only a warning, reads fall through to the store.
func Start() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("server: load config: %w", err)
	}

	if err := database.Connect(); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, continuing without cache", "error", err)
	}

	registerListeners()
	r := BuildRouter(database.DB)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	if err := database.Disconnect(ctx); err != nil {
		logger.Error("database disconnect", "error", err)
	}

	logger.Info("server stopped")
	return nil
}

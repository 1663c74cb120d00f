package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/burgerqueen/burger-queen-api/internal/api/handler"
	"github.com/burgerqueen/burger-queen-api/internal/api/middleware"
	"github.com/burgerqueen/burger-queen-api/internal/core/service"
	mongodb "github.com/burgerqueen/burger-queen-api/internal/infrastructure/db/mongo"
	redisdb "github.com/burgerqueen/burger-queen-api/internal/infrastructure/db/redis"
)

const productCacheTTL = 5 * time.Minute

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the product cache then degrades to pass-through.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("burgerqueen"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := redisdb.NewCachingProductRepository(rdb, productCacheTTL, mongodb.NewProductRepository(db))
	orderRepo := mongodb.NewOrderRepository(db)

	// --- Services ---
	authService := service.NewAuthService(userRepo, jwtSecret, tokenTTL)
	userService := service.NewUserService(userRepo, log)
	productService := service.NewProductService(productRepo, log)
	orderService := service.NewOrderService(orderRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)

	// Every request passes the credential verifier / identity resolver;
	// requests without a bearer credential proceed anonymously and are
	// rejected later by the per-route gates.
	e.Use(middleware.Authenticate(jwtSecret, userRepo))

	// --- Auth ---
	e.POST("/auth", authHandler.Login)

	// --- Users: list/create admin-only, single-user routes self-or-admin ---
	e.GET("/users", userHandler.List, middleware.RequireAdmin)
	e.POST("/users", userHandler.Create, middleware.RequireAdmin)
	e.GET("/users/:uid", userHandler.Get, middleware.RequireSelfOrAdmin("uid"))
	e.PUT("/users/:uid", userHandler.Update, middleware.RequireSelfOrAdmin("uid"))
	e.DELETE("/users/:uid", userHandler.Delete, middleware.RequireSelfOrAdmin("uid"))

	// --- Products: reads authenticated, writes admin-only ---
	e.GET("/products", productHandler.List, middleware.RequireAuth)
	e.GET("/products/:productId", productHandler.Get, middleware.RequireAuth)
	e.POST("/products", productHandler.Create, middleware.RequireAdmin)
	e.PUT("/products/:productId", productHandler.Update, middleware.RequireAdmin)
	e.DELETE("/products/:productId", productHandler.Delete, middleware.RequireAdmin)

	// --- Orders: authenticated ---
	e.GET("/orders", orderHandler.List, middleware.RequireAuth)
	e.GET("/orders/:orderId", orderHandler.Get, middleware.RequireAuth)
	e.POST("/orders", orderHandler.Create, middleware.RequireAuth)
	e.PUT("/orders/:orderId", orderHandler.Update, middleware.RequireAuth)
	e.DELETE("/orders/:orderId", orderHandler.Delete, middleware.RequireAuth)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

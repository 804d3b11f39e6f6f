package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/solestore/storefront-api/internal/api/handler"
	"github.com/solestore/storefront-api/internal/api/middleware"
	"github.com/solestore/storefront-api/internal/core/domain"
	"github.com/solestore/storefront-api/internal/core/service"
	mongostore "github.com/solestore/storefront-api/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	authRepo := mongostore.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, jwtSecret, tokenTTL, log)
	authHandler := handler.NewAuthHandler(authService)

	productRepo := mongostore.NewProductRepository(db)
	productService := service.NewProductService(productRepo, log)
	productHandler := handler.NewProductHandler(productService)

	authMW := middleware.Auth(authService)
	adminMW := middleware.RBAC(domain.RoleAdmin)

	api := e.Group("/api")

	// --- Auth routes ---
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authMW)

	// --- Product routes: reads are public, mutations are admin-only ---
	products := api.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, authMW, adminMW)
	products.PUT("/:id", productHandler.Update, authMW, adminMW)
	products.DELETE("/:id", productHandler.Delete, authMW, adminMW)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	api.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	api.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

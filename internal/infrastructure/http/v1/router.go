// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"salespoint/internal/domain/auth"
	"salespoint/internal/domain/catalog"
	"salespoint/internal/domain/reports"
	"salespoint/internal/infrastructure/http/v1/handlers"
	"salespoint/internal/infrastructure/http/v1/middleware"
	"salespoint/internal/infrastructure/storage/postgres"
	"salespoint/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the shared database pool (used by health checks)
	Pool *postgres.Pool

	// Logger for request logging
	Logger *logger.Logger

	CatalogService *catalog.Service
	ReportsService *reports.Service
	AuthService    *auth.Service
}

// NewRouter creates and configures the Gin router.
// Report and catalog endpoints live at the root path to preserve the
// external contract.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	baseHandler := handlers.NewBaseHandler()

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	// Reports
	reportsHandler := handlers.NewReportsHandler(baseHandler, cfg.ReportsService)
	router.GET("/dashboard-summary", reportsHandler.DashboardSummary)
	router.GET("/inventory-report", reportsHandler.InventoryReport)
	router.GET("/latest-purchased-items", reportsHandler.LatestPurchasedItems)
	router.GET("/order-item-data", reportsHandler.OrderItemData)
	router.GET("/top-suppliers", reportsHandler.TopSuppliers)
	router.GET("/product-defect-reports", reportsHandler.ProductDefectReports)

	// Catalog
	catalogHandler := handlers.NewCatalogHandler(baseHandler, cfg.CatalogService)
	router.GET("/products", catalogHandler.ListProducts)
	router.POST("/products", catalogHandler.CreateProduct)
	router.GET("/suppliers", catalogHandler.ListSuppliers)
	router.POST("/suppliers", catalogHandler.CreateSupplier)

	// Auth
	authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService)
	router.POST("/login", authHandler.Login)
	router.POST("/forgot-password", authHandler.ForgotPassword)
	router.POST("/reset-password", authHandler.ResetPassword)

	return router
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"stockroom/internal/delivery/http/middleware"
	"stockroom/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Role names recognized by the authorization guards.
const (
	roleAdmin   = "Admin"
	roleManager = "Manager"
)

type RouterParams struct {
	fx.In

	InventoryHandler   *handler.InventoryHandler
	MerchantHandler    *handler.MerchantHandler
	ReportHandler      *handler.ReportHandler
	DeliveryLogHandler *handler.DeliveryLogHandler
	UserHandler        *handler.UserHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	inventoryHandler   *handler.InventoryHandler
	merchantHandler    *handler.MerchantHandler
	reportHandler      *handler.ReportHandler
	deliveryLogHandler *handler.DeliveryLogHandler
	userHandler        *handler.UserHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		inventoryHandler:   params.InventoryHandler,
		merchantHandler:    params.MerchantHandler,
		reportHandler:      params.ReportHandler,
		deliveryLogHandler: params.DeliveryLogHandler,
		userHandler:        params.UserHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	manager := r.authMiddleware.RequireRole(roleManager, roleAdmin)

	// Inventory routes; reads are open to any authenticated user, writes
	// and aggregates need manager or admin.
	inventoryGroup := e.Group("/inventory")
	inventoryGroup.Use(r.authMiddleware.Authenticate)
	{
		inventoryGroup.GET("", r.inventoryHandler.List)
		inventoryGroup.GET("/stats", r.inventoryHandler.Stats, manager)
		inventoryGroup.GET("/low-stock", r.inventoryHandler.LowStock, manager)
		inventoryGroup.GET("/:id", r.inventoryHandler.Get)
		inventoryGroup.POST("", r.inventoryHandler.Create, manager)
		inventoryGroup.PUT("/:id", r.inventoryHandler.Update, manager)
		inventoryGroup.PATCH("/:id/quantity", r.inventoryHandler.UpdateQuantity, manager)
		inventoryGroup.DELETE("/:id", r.inventoryHandler.Delete, manager)
	}

	// Quick typeahead search
	searchGroup := e.Group("/search")
	searchGroup.Use(r.authMiddleware.Authenticate)
	{
		searchGroup.GET("/inventory", r.inventoryHandler.Search)
	}

	// Merchant registry routes
	merchantGroup := e.Group("/merchants")
	merchantGroup.Use(r.authMiddleware.Authenticate)
	merchantGroup.Use(manager)
	{
		merchantGroup.GET("", r.merchantHandler.List)
		merchantGroup.GET("/stats", r.merchantHandler.Stats)
		merchantGroup.GET("/active-emails", r.merchantHandler.ActiveEmails)
		merchantGroup.GET("/:id", r.merchantHandler.Get)
		merchantGroup.POST("", r.merchantHandler.Create)
		merchantGroup.POST("/bulk-import", r.merchantHandler.BulkImport)
		merchantGroup.PUT("/:id", r.merchantHandler.Update)
		merchantGroup.DELETE("/:id", r.merchantHandler.Delete)
	}

	// Report routes
	reportGroup := e.Group("/reports")
	reportGroup.Use(r.authMiddleware.Authenticate)
	reportGroup.Use(manager)
	{
		reportGroup.GET("/inventory", r.reportHandler.Snapshot)
		reportGroup.GET("/stats", r.reportHandler.Stats)
		reportGroup.POST("/send-inventory", r.reportHandler.SendInventory)
		reportGroup.POST("/send-to-all-merchants", r.reportHandler.SendToAllMerchants)
	}

	// Delivery history routes
	logGroup := e.Group("/email-logs")
	logGroup.Use(r.authMiddleware.Authenticate)
	logGroup.Use(manager)
	{
		logGroup.GET("", r.deliveryLogHandler.List)
		logGroup.GET("/:id", r.deliveryLogHandler.Get)
	}

	// Account management, admin only
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	userGroup.Use(r.authMiddleware.RequireRole(roleAdmin))
	{
		userGroup.GET("", r.userHandler.List)
		userGroup.GET("/:id", r.userHandler.Get)
		userGroup.POST("", r.userHandler.Create)
		userGroup.PUT("/:id", r.userHandler.Update)
		userGroup.DELETE("/:id", r.userHandler.Delete)
	}

	// Roles are readable by any authenticated user
	roleGroup := e.Group("/roles")
	roleGroup.Use(r.authMiddleware.Authenticate)
	{
		roleGroup.GET("", r.userHandler.ListRoles)
	}
}

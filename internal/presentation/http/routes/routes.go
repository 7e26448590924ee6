package routes

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fng-app/fng-sales-api/internal/config"
	domainRepo "github.com/fng-app/fng-sales-api/internal/domain/repository"
	"github.com/fng-app/fng-sales-api/internal/presentation/http/handler"
	"github.com/fng-app/fng-sales-api/internal/presentation/http/middleware"
	"github.com/fng-app/fng-sales-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Sale    *handler.SaleHandler
	Order   *handler.OrderHandler
	Menu    *handler.MenuHandler
	Printer *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	Log             logrus.FieldLogger
	TokenVerifier   *utils.TokenVerifier // nil disables authentication
	IdempotencyRepo domainRepo.IdempotencyRepository
	RateLimiter     *middleware.ClientRateLimiter // nil disables rate limiting
	Backends        map[string]Backend
}

// Backend reports which storage backend currently serves a collection
type Backend interface {
	Active(ctx context.Context) string
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", healthHandler(deps))

	api := router.Group("/api")
	if deps.RateLimiter != nil {
		api.Use(deps.RateLimiter.Middleware())
	}
	if deps.TokenVerifier != nil {
		api.Use(middleware.AuthMiddleware(deps.TokenVerifier))
	}

	registerSaleRoutes(api, h, deps)
	registerOrderRoutes(api, h)
	api.GET("/menu", h.Menu.List)
	api.GET("/printer/status", h.Printer.GetStatus)

	return router
}

func healthHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		storage := gin.H{}
		for name, backend := range deps.Backends {
			storage[name] = backend.Active(ctx)
		}

		c.JSON(200, gin.H{
			"status":    "ok",
			"service":   deps.Cfg.App.Name,
			"file_mode": deps.Cfg.FileMode(),
			"storage":   storage,
		})
	}
}

func registerSaleRoutes(api *gin.RouterGroup, h *Handlers, deps *Deps) {
	sales := api.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		sales.GET("/summary", h.Sale.Summary)
		if deps.IdempotencyRepo != nil {
			sales.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
				Repo: deps.IdempotencyRepo,
				TTL:  deps.Cfg.Idempotency.TTL,
				Log:  deps.Log,
			}), h.Sale.Create)
		} else {
			sales.POST("", h.Sale.Create)
		}
		sales.GET("/:id", h.Sale.Get)
		sales.PUT("/:id", h.Sale.Update)
		sales.DELETE("/:id", h.Sale.Delete)
		sales.GET("/:id/receipt", h.Printer.SaleReceipt)
		sales.POST("/:id/print", h.Printer.PrintSale)
	}
}

func registerOrderRoutes(api *gin.RouterGroup, h *Handlers) {
	orders := api.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.GET("/:id", h.Order.Get)
		orders.PATCH("/:id", h.Order.UpdateStatus)
		orders.DELETE("/:id", h.Order.Delete)
		orders.POST("/:id/print", h.Printer.PrintOrder)
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fng-app/fng-sales-api/internal/application/service"
	"github.com/fng-app/fng-sales-api/internal/config"
	"github.com/fng-app/fng-sales-api/internal/domain/entity"
	domainRepo "github.com/fng-app/fng-sales-api/internal/domain/repository"
	"github.com/fng-app/fng-sales-api/internal/infrastructure/database"
	"github.com/fng-app/fng-sales-api/internal/infrastructure/persistence"
	"github.com/fng-app/fng-sales-api/internal/infrastructure/repository"
	"github.com/fng-app/fng-sales-api/internal/presentation/http/handler"
	"github.com/fng-app/fng-sales-api/internal/presentation/http/middleware"
	"github.com/fng-app/fng-sales-api/internal/presentation/http/routes"
	"github.com/fng-app/fng-sales-api/pkg/logger"
	"github.com/fng-app/fng-sales-api/pkg/printer"
	"github.com/fng-app/fng-sales-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Document store: one client for the whole process
	var salesPrimary, ordersPrimary domainRepo.DocumentStore
	var mongoClient *mongo.Client
	if !cfg.FileMode() {
		client, err := database.NewMongoClient(ctx, &cfg.Mongo)
		if err != nil {
			log.WithError(err).Warn("MongoDB client unavailable, using file storage only")
		} else {
			mongoClient = client
			salesPrimary = persistence.NewMongoStore(client, cfg.Mongo.Database, cfg.Mongo.SalesCollection)
			ordersPrimary = persistence.NewMongoStore(client, cfg.Mongo.OrdersDatabase, cfg.Mongo.OrdersCollection)
		}
	}
	fileMode := cfg.FileMode() || mongoClient == nil

	salesRouter := persistence.NewRouter(salesPrimary, persistence.NewFileStore(cfg.Storage.SalesFile()), fileMode, log.WithField("collection", "sales"))
	ordersRouter := persistence.NewRouter(ordersPrimary, persistence.NewFileStore(cfg.Storage.OrdersFile()), fileMode, log.WithField("collection", "orders"))

	// Initialize repositories
	saleRepo := repository.NewSaleRepository(salesRouter)
	orderRepo := repository.NewOrderRepository(ordersRouter)

	var idempotencyRepo domainRepo.IdempotencyRepository
	db, err := database.NewIdempotencyDB(&cfg.Idempotency, cfg.App.Debug)
	if err != nil {
		log.WithError(err).Warn("Idempotency store unavailable, Idempotency-Key will be ignored")
	} else if err := database.AutoMigrate(db); err != nil {
		log.WithError(err).Warn("Idempotency migration failed, Idempotency-Key will be ignored")
	} else {
		idempotencyRepo = repository.NewIdempotencyRepository(db)
		go purgeIdempotencyKeys(ctx, idempotencyRepo, cfg.Idempotency.CleanupInterval, log)
	}

	// Initialize services
	saleService := service.NewSaleService(saleRepo)
	orderService := service.NewOrderService(orderRepo)
	menuService := service.NewMenuService()

	// Initialize thermal printer
	thermalPrinter, err := printer.New(printer.Config{
		Type:       cfg.Printer.Type,
		DevicePath: cfg.Printer.DevicePath,
		Address:    cfg.Printer.Address,
	})
	if err != nil {
		log.WithError(err).Warn("Failed to initialize printer, receipts will not be printed")
		thermalPrinter, _ = printer.New(printer.Config{Type: "none"})
	}
	printerService := service.NewPrinterService(thermalPrinter, saleRepo, orderRepo, service.PrinterOptions{
		Store: entity.StoreHeader{
			Name:    cfg.Printer.StoreName,
			Address: cfg.Printer.StoreAddress,
			Phone:   cfg.Printer.StorePhone,
		},
		Width: cfg.Printer.Width,
	})

	var verifier *utils.TokenVerifier
	if cfg.Auth.Secret != "" {
		verifier = utils.NewTokenVerifier(cfg.Auth.Secret, cfg.Auth.Audience, cfg.Auth.Issuer)
	} else {
		log.Warn("CROSS_APP_JWT_SECRET is not set, API authentication is disabled")
	}

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(max(cfg.RateLimit.Duration, 1)),
		BurstSize:         cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	defer rateLimiter.Stop()

	// Initialize handlers
	handlers := &routes.Handlers{
		Sale:    handler.NewSaleHandler(saleService),
		Order:   handler.NewOrderHandler(orderService),
		Menu:    handler.NewMenuHandler(menuService),
		Printer: handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		Log:             log,
		TokenVerifier:   verifier,
		IdempotencyRepo: idempotencyRepo,
		RateLimiter:     rateLimiter,
		Backends: map[string]routes.Backend{
			"sales":  salesRouter,
			"orders": ordersRouter,
		},
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.WithFields(logrus.Fields{
			"port":      port,
			"env":       cfg.App.Env,
			"file_mode": fileMode,
		}).Infof("Starting %s server", cfg.App.Name)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("Failed to start server")
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server shutdown failed")
	}
	if mongoClient != nil {
		if err := mongoClient.Disconnect(shutdownCtx); err != nil {
			log.WithError(err).Error("MongoDB disconnect failed")
		}
	}
	log.Info("Server stopped")
}

// purgeIdempotencyKeys removes expired keys until ctx is cancelled
func purgeIdempotencyKeys(ctx context.Context, repo domainRepo.IdempotencyRepository, interval time.Duration, log *logrus.Logger) {
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := repo.DeleteExpired(ctx)
			if err != nil {
				log.WithError(err).Warn("Failed to purge expired idempotency keys")
				continue
			}
			if removed > 0 {
				log.WithField("removed", removed).Info("Purged expired idempotency keys")
			}
		}
	}
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/osworks/backend/internal/application/catalog"
	financeapp "github.com/osworks/backend/internal/application/finance"
	identityapp "github.com/osworks/backend/internal/application/identity"
	inventoryapp "github.com/osworks/backend/internal/application/inventory"
	orderapp "github.com/osworks/backend/internal/application/order"
	partnerapp "github.com/osworks/backend/internal/application/partner"
	serviceorderapp "github.com/osworks/backend/internal/application/serviceorder"
	"github.com/osworks/backend/internal/infrastructure/auth"
	"github.com/osworks/backend/internal/infrastructure/config"
	"github.com/osworks/backend/internal/infrastructure/delivery"
	"github.com/osworks/backend/internal/infrastructure/logger"
	"github.com/osworks/backend/internal/infrastructure/persistence"
	"github.com/osworks/backend/internal/infrastructure/rendering"
	"github.com/osworks/backend/internal/interfaces/http/handler"
	"github.com/osworks/backend/internal/interfaces/http/middleware"
	"github.com/osworks/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting OSWorks backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	catalogServiceRepo := persistence.NewGormCatalogServiceRepository(db.DB)
	clientRepo := persistence.NewGormClientRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	serviceOrderRepo := persistence.NewGormServiceOrderRepository(db.DB)
	stockMovementRepo := persistence.NewGormStockMovementRepository(db.DB)
	financeMovementRepo := persistence.NewGormMovementRepository(db.DB)

	// Transaction scopes
	ledgerScope := persistence.NewGormLedgerScope(db.DB)
	conversionScope := persistence.NewGormConversionScope(db.DB)

	// Auth infrastructure
	jwtManager := auth.NewJWTManager(cfg.Auth)
	credentialStore := auth.NewConfigCredentialStore(cfg.Auth)

	// Application services
	ledgerService := inventoryapp.NewLedgerService(ledgerScope, stockMovementRepo)
	orderService := orderapp.NewOrderService(orderRepo, clientRepo, productRepo, catalogServiceRepo, ledgerService, conversionScope)
	productService := catalogapp.NewProductService(productRepo)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	catalogServiceService := catalogapp.NewCatalogServiceService(catalogServiceRepo)
	clientService := partnerapp.NewClientService(clientRepo)
	serviceOrderService := serviceorderapp.NewServiceOrderService(serviceOrderRepo)
	financeService := financeapp.NewFinanceService(financeMovementRepo)
	authService := identityapp.NewAuthService(credentialStore, jwtManager)

	// Quote rendering and delivery
	var renderer rendering.QuoteRenderer = rendering.DisabledRenderer{}
	if cfg.Render.Enabled {
		chromeRenderer := rendering.NewChromedpRenderer(cfg.Render, log)
		defer chromeRenderer.Close()
		renderer = chromeRenderer
	}
	var sender delivery.Sender = delivery.NoOpSender{}
	if cfg.Delivery.WebhookURL != "" {
		sender = delivery.NewWebhookSender(cfg.Delivery, log)
	}

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Failed to set trusted proxies", zap.Error(err))
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins

	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORSWithConfig(corsConfig),
	)

	r := router.NewRouter(engine, middleware.JWTAuthMiddleware(jwtManager))
	r.RegisterPublic(
		handler.NewAuthHandler(authService),
	)
	r.Register(
		handler.NewClientHandler(clientService),
		handler.NewProductHandler(productService, ledgerService),
		handler.NewCategoryHandler(categoryService),
		handler.NewCatalogServiceHandler(catalogServiceService),
		handler.NewQuoteHandler(orderService, renderer, sender),
		handler.NewServiceOrderHandler(serviceOrderService),
		handler.NewInventoryHandler(ledgerService),
		handler.NewFinanceHandler(financeService),
	)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server exited gracefully")
}

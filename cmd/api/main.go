package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gunnargantzel/NMS-sub000/docs"
	"github.com/gunnargantzel/NMS-sub000/internal/auth"
	"github.com/gunnargantzel/NMS-sub000/internal/config"
	"github.com/gunnargantzel/NMS-sub000/internal/database"
	"github.com/gunnargantzel/NMS-sub000/internal/http/handler"
	"github.com/gunnargantzel/NMS-sub000/internal/http/middleware"
	"github.com/gunnargantzel/NMS-sub000/internal/http/router"
	"github.com/gunnargantzel/NMS-sub000/internal/jobs"
	"github.com/gunnargantzel/NMS-sub000/internal/logger"
	"github.com/gunnargantzel/NMS-sub000/internal/notification"
	"github.com/gunnargantzel/NMS-sub000/internal/repository"
	"github.com/gunnargantzel/NMS-sub000/internal/service"
	"github.com/gunnargantzel/NMS-sub000/internal/storage"
	"go.uber.org/zap"
)

//go:generate swag init -g cmd/api/main.go -o docs

// @title NMS Survey Order API
// @version 1.0
// @description Order management for cargo survey work: orders, ships, port calls and the records taken there

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
// @description System API key

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Basic configuration first, for logging setup
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)

	// Secrets come from the environment in development and from Azure Key
	// Vault in staging/production when enabled
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	db, err := database.NewDatabase(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if cfg.Database.AutoMigrate || cfg.Database.Driver == database.DriverSQLite {
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		log.Info("Database schema migrated", zap.String("driver", cfg.Database.Driver))
	}

	archive, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	mailer, err := notification.NewMailer(&cfg.Mail, log)
	if err != nil {
		return fmt.Errorf("failed to initialize mailer: %w", err)
	}

	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
	if err != nil {
		return fmt.Errorf("failed to initialize token manager: %w", err)
	}

	store := repository.NewStore(db)

	// Services
	orderService := service.NewOrderService(store, service.NewOrderNumberGenerator(), log)
	shipService := service.NewShipService(store, log)
	shipPortService := service.NewShipPortService(store, log)
	orderLineService := service.NewOrderLineService(store, log)
	timelogService := service.NewTimelogService(store, log)
	samplingService := service.NewSamplingService(store, log)
	remarkService := service.NewRemarkService(store, log)
	surveyTypeService := service.NewSurveyTypeService(store, log)
	portService := service.NewPortService(store, log)
	productService := service.NewProductService(store, log)
	activityService := service.NewTimelogActivityService(store, log)
	templateService := service.NewRemarksTemplateService(store, log)
	dashboardService := service.NewDashboardService(store, log)
	auditLogService := service.NewAuditLogService(store.AuditLogs, log)
	authService := service.NewAuthService(store.Users, tokens, log)
	notificationService := service.NewNotificationService(orderService, notification.NewFormatter(), mailer, archive, log)

	if cfg.Auth.BootstrapAdminUsername != "" {
		_, err := authService.EnsureAdmin(ctx, cfg.Auth.BootstrapAdminUsername, cfg.Auth.BootstrapAdminPassword)
		switch {
		case errors.Is(err, service.ErrBootstrapSkipped):
			log.Debug("Bootstrap admin skipped, users exist")
		case err != nil:
			return fmt.Errorf("failed to create bootstrap admin: %w", err)
		}
	}

	// Middleware
	authMiddleware := auth.NewMiddleware(tokens, cfg.ApiKey.Value, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)
	auditMiddleware := middleware.NewAuditMiddleware(auditLogService, nil, log)

	rt := router.NewRouter(cfg, log, db, authMiddleware, rateLimiter, auditMiddleware, router.Handlers{
		Auth:       handler.NewAuthHandler(authService, log),
		Orders:     handler.NewOrderHandler(orderService, log),
		Ships:      handler.NewShipHandler(shipService, log),
		ShipPorts:  handler.NewShipPortHandler(shipPortService, log),
		OrderLines: handler.NewOrderLineHandler(orderLineService, log),
		Timelog:    handler.NewTimelogHandler(timelogService, activityService, log),
		Sampling:   handler.NewSamplingHandler(samplingService, log),
		Remarks:    handler.NewRemarkHandler(remarkService, templateService, log),
		Surveys:    handler.NewSurveyTypeHandler(surveyTypeService, log),
		Reference:  handler.NewReferenceHandler(portService, productService, log),
		Email:      handler.NewEmailHandler(notificationService, log),
		Dashboard:  handler.NewDashboardHandler(dashboardService, log),
		Audit:      handler.NewAuditHandler(auditLogService, log),
	})

	scheduler, err := startScheduler(cfg, store, auditLogService, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			<-scheduler.Stop().Done()
			log.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		log.Info("Server stopped gracefully")
	}

	return nil
}

// startScheduler registers the enabled background jobs. It returns nil
// when no job is enabled.
func startScheduler(cfg *config.Config, store *repository.Store, audit *service.AuditLogService, log *zap.Logger) (*jobs.Scheduler, error) {
	if !cfg.Jobs.DriftCheckEnabled && !cfg.Jobs.AuditRetentionEnabled {
		log.Info("Background jobs disabled")
		return nil, nil
	}

	scheduler := jobs.NewScheduler(log)
	if cfg.Jobs.DriftCheckEnabled {
		if err := jobs.RegisterTotalsDriftJob(scheduler, store.Orders, log, cfg.Jobs.DriftCheckCron, cfg.Jobs.DriftCheckTimeoutDuration()); err != nil {
			return nil, fmt.Errorf("failed to register totals drift job: %w", err)
		}
	}
	if cfg.Jobs.AuditRetentionEnabled {
		if err := jobs.RegisterAuditRetentionJob(scheduler, audit, cfg.Jobs.AuditRetentionDays, log, cfg.Jobs.AuditRetentionCron); err != nil {
			return nil, fmt.Errorf("failed to register audit retention job: %w", err)
		}
	}

	scheduler.Start()
	log.Info("Scheduler started", zap.Strings("jobs", scheduler.JobNames()))
	return scheduler, nil
}

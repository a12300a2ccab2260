package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/court-booking/config"
	"github.com/Dosada05/court-booking/db"
	"github.com/Dosada05/court-booking/handlers"
	"github.com/Dosada05/court-booking/metrics"
	"github.com/Dosada05/court-booking/realtime"
	"github.com/Dosada05/court-booking/repositories"
	api "github.com/Dosada05/court-booking/routes"
	"github.com/Dosada05/court-booking/services"
	"github.com/Dosada05/court-booking/storage"
	"github.com/Dosada05/court-booking/utils"
	"github.com/go-chi/chi/v5"
)

const (
	tokenCleanupInterval = time.Hour // How often expired refresh tokens are purged
	shutdownTimeout      = 15 * time.Second
)

// @title           Court Booking API
// @version         1.0
// @description     Players, courts, sessions and their billing.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Настройка логгера
	level, _ := config.ParseLogLevel(cfg.LogLevel)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	if err := db.Migrate(dbConn, cfg.MigrationsPath, logger); err != nil {
		logger.Error("failed to apply migrations", slog.Any("error", err))
		os.Exit(1)
	}

	// Cloudflare R2 необязателен: без него загрузка изображений отвечает 503.
	var uploader storage.FileUploader
	if cfg.R2.Enabled() {
		uploader, err = storage.NewCloudflareR2Uploader(ctx, storage.CloudflareR2Config{
			AccountID:       cfg.R2.AccountID,
			AccessKeyID:     cfg.R2.AccessKeyID,
			SecretAccessKey: cfg.R2.SecretAccessKey,
			BucketName:      cfg.R2.BucketName,
			PublicBaseURL:   cfg.R2.PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Warn("Cloudflare R2 is not configured, court image upload disabled")
	}

	// Инициализация WebSocket Hub
	wsHub := realtime.NewHub(logger)
	go wsHub.Run(ctx)
	logger.Info("WebSocket Hub started")

	reg := metrics.NewRegistry()
	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiration)

	// Инициализация репозиториев
	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)
	courtRepo := repositories.NewPostgresCourtRepository(dbConn)
	discountRepo := repositories.NewPostgresDiscountRepository(dbConn)
	expenseRepo := repositories.NewPostgresExpenseRepository(dbConn)
	sessionRepo := repositories.NewPostgresSessionRepository(dbConn)
	sessionPlayerRepo := repositories.NewPostgresSessionPlayerRepository(dbConn)
	sessionDiscountRepo := repositories.NewPostgresSessionDiscountRepository(dbConn)
	sessionExpenseRepo := repositories.NewPostgresSessionExpenseRepository(dbConn)
	refreshTokenRepo := repositories.NewPostgresRefreshTokenRepository(dbConn)
	logger.Info("Repositories initialized")

	// Инициализация сервисов
	emailService := services.NewEmailService(cfg.SMTP, cfg.FrontendURL, logger)
	authService := services.NewAuthService(services.AuthServiceDeps{
		PlayerRepo:      playerRepo,
		TokenRepo:       refreshTokenRepo,
		Tokens:          tokens,
		RefreshTokenTTL: cfg.RefreshTokenExpiration,
		Mailer:          emailService,
		Logger:          logger,
	})
	playerService := services.NewPlayerService(playerRepo)
	courtService := services.NewCourtService(courtRepo, uploader, logger)
	discountService := services.NewDiscountService(discountRepo)
	expenseService := services.NewExpenseService(expenseRepo)
	sessionService := services.NewSessionService(services.SessionServiceDeps{
		DB:                  dbConn,
		SessionRepo:         sessionRepo,
		SessionPlayerRepo:   sessionPlayerRepo,
		SessionDiscountRepo: sessionDiscountRepo,
		SessionExpenseRepo:  sessionExpenseRepo,
		CourtRepo:           courtRepo,
		PlayerRepo:          playerRepo,
		DiscountRepo:        discountRepo,
		ExpenseRepo:         expenseRepo,
		Broadcaster:         wsHub,
		Metrics:             reg,
		Logger:              logger,
	})
	sessionPlayerService := services.NewSessionPlayerService(sessionPlayerRepo, sessionRepo, playerRepo)
	sessionDiscountService := services.NewSessionDiscountService(sessionDiscountRepo, sessionRepo, discountRepo, playerRepo)
	sessionExpenseService := services.NewSessionExpenseService(sessionExpenseRepo, sessionRepo, expenseRepo, playerRepo)
	logger.Info("Services initialized")

	go services.RunTokenCleanup(ctx, authService, tokenCleanupInterval, reg, logger)

	// Инициализация обработчиков HTTP и маршрутизатора
	router := chi.NewRouter()
	api.SetupRoutes(router, api.Handlers{
		Auth:            handlers.NewAuthHandler(authService),
		Player:          handlers.NewPlayerHandler(playerService),
		Court:           handlers.NewCourtHandler(courtService),
		Discount:        handlers.NewDiscountHandler(discountService),
		Expense:         handlers.NewExpenseHandler(expenseService),
		Session:         handlers.NewSessionHandler(sessionService),
		SessionPlayer:   handlers.NewSessionPlayerHandler(sessionPlayerService),
		SessionDiscount: handlers.NewSessionDiscountHandler(sessionDiscountService),
		SessionExpense:  handlers.NewSessionExpenseHandler(sessionExpenseService),
		WebSocket:       handlers.NewWebSocketHandler(wsHub, cfg.CORSOrigin, logger),
		Health:          handlers.NewHealthHandler(dbConn),
	}, api.Options{
		CORSOrigin: cfg.CORSOrigin,
		Tokens:     tokens,
		Metrics:    reg,
		Logger:     logger,
	})
	logger.Info("Routes configured")

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/duhaderi/defter/internal/adapter/http"
	"github.com/duhaderi/defter/internal/adapter/http/handler"
	"github.com/duhaderi/defter/internal/adapter/http/middleware"
	postgresRepo "github.com/duhaderi/defter/internal/adapter/repository/postgres"
	redisRepo "github.com/duhaderi/defter/internal/adapter/repository/redis"
	"github.com/duhaderi/defter/internal/infrastructure/config"
	"github.com/duhaderi/defter/internal/infrastructure/logger"
	"github.com/duhaderi/defter/internal/infrastructure/metrics"
	"github.com/duhaderi/defter/internal/infrastructure/postgres"
	"github.com/duhaderi/defter/internal/infrastructure/redis"
	"github.com/duhaderi/defter/internal/usecase"
)

func main() {
	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log.Logger = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL: cfg.DatabaseURL,
		MaxConns:    cfg.DatabaseMaxConns,
		MinConns:    cfg.DatabaseMinConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	appMetrics := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	customerRepo := postgresRepo.NewCustomerRepository(pool)
	saleRepo := postgresRepo.NewSaleRepository(pool)
	receiptRepo := postgresRepo.NewReceiptRepository(pool)
	cashRepo := postgresRepo.NewCashEntryRepository(pool)
	checkRepo := postgresRepo.NewCheckRepository(pool)
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier()

	// Initialize use cases
	customerUC := usecase.NewCustomerUseCase(customerRepo, idGen)
	saleUC := usecase.NewSaleUseCase(saleRepo, customerRepo, idGen, cache, appMetrics)
	receiptUC := usecase.NewReceiptUseCase(receiptRepo, customerRepo, idGen, cache, appMetrics)
	cashUC := usecase.NewCashUseCase(cashRepo, idGen, appMetrics)
	checkUC := usecase.NewCheckUseCase(txManager, checkRepo, cashRepo, retrier, idGen, appMetrics)
	statementUC := usecase.NewStatementUseCase(customerRepo, saleRepo, receiptRepo, cache, appMetrics)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		CustomerHandler:  handler.NewCustomerHandler(customerUC),
		SaleHandler:      handler.NewSaleHandler(saleUC),
		ReceiptHandler:   handler.NewReceiptHandler(receiptUC),
		CashHandler:      handler.NewCashHandler(cashUC),
		CheckHandler:     handler.NewCheckHandler(checkUC),
		StatementHandler: handler.NewStatementHandler(statementUC),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore: idempotencyStore,
		RateLimiter:      middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

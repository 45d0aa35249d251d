package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/duhaderi/defter/internal/adapter/http/handler"
	"github.com/duhaderi/defter/internal/adapter/http/middleware"
	"github.com/duhaderi/defter/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	CustomerHandler  *handler.CustomerHandler
	SaleHandler      *handler.SaleHandler
	ReceiptHandler   *handler.ReceiptHandler
	CashHandler      *handler.CashHandler
	CheckHandler     *handler.CheckHandler
	StatementHandler *handler.StatementHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	RateLimiter      *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(log.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Customers and their ledgers
		r.Route("/customers", func(r chi.Router) {
			r.Post("/", cfg.CustomerHandler.Create)
			r.Get("/", cfg.CustomerHandler.List)
			r.Get("/{id}", cfg.CustomerHandler.Get)
			r.Delete("/{id}", cfg.CustomerHandler.Delete)
			r.Get("/{id}/sales", cfg.SaleHandler.ListByCustomer)
			r.Get("/{id}/receipts", cfg.ReceiptHandler.ListByCustomer)
			r.Get("/{id}/checks", cfg.CheckHandler.ListByCustomer)
			r.Get("/{id}/statement", cfg.StatementHandler.Get)
		})

		// Sales and returns
		r.Route("/sales", func(r chi.Router) {
			r.Post("/", cfg.SaleHandler.Create)
			r.Delete("/{id}", cfg.SaleHandler.Delete)
		})

		// Receipts
		r.Route("/receipts", func(r chi.Router) {
			r.Post("/", cfg.ReceiptHandler.Create)
			r.Delete("/{id}", cfg.ReceiptHandler.Delete)
		})

		// Cash register
		r.Route("/cash", func(r chi.Router) {
			r.Post("/entries", cfg.CashHandler.Create)
			r.Get("/entries", cfg.CashHandler.Ledger)
			r.Delete("/entries/{id}", cfg.CashHandler.Delete)
			r.Get("/summary", cfg.CashHandler.Summary)
		})

		// Check portfolio
		r.Route("/checks", func(r chi.Router) {
			r.Post("/", cfg.CheckHandler.Create)
			r.Get("/", cfg.CheckHandler.ListPortfolio)
			r.Get("/breakdown", cfg.CheckHandler.Breakdown)
			r.Get("/{id}", cfg.CheckHandler.Get)
			r.Post("/{id}/collect", cfg.CheckHandler.Collect)
			r.Post("/{id}/cashout", cfg.CheckHandler.CashOut)
			r.Post("/{id}/return", cfg.CheckHandler.MarkReturned)
		})
	})

	return r
}

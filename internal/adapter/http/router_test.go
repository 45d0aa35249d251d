package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/duhaderi/defter/internal/adapter/http/handler"
	apimiddleware "github.com/duhaderi/defter/internal/adapter/http/middleware"
	"github.com/duhaderi/defter/internal/domain"
	"github.com/duhaderi/defter/internal/ledger"
	"github.com/duhaderi/defter/internal/usecase"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	}))

	body := `{"name":"Yilmaz Deri"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/customers/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"POST /api/v1/customers/",
		"GET /api/v1/customers/",
		"GET /api/v1/customers/{id}/statement",
		"POST /api/v1/sales/",
		"POST /api/v1/receipts/",
		"GET /api/v1/cash/summary",
		"POST /api/v1/checks/{id}/cashout",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	cfg := RouterConfig{
		HealthHandler:    &handler.HealthHandler{},
		CustomerHandler:  handler.NewCustomerHandler(&stubCustomerService{}),
		SaleHandler:      handler.NewSaleHandler(&stubSaleService{}),
		ReceiptHandler:   handler.NewReceiptHandler(&stubReceiptService{}),
		CashHandler:      handler.NewCashHandler(&stubCashService{}),
		CheckHandler:     handler.NewCheckHandler(&stubCheckService{}),
		StatementHandler: handler.NewStatementHandler(&stubStatementService{}),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubCustomerService struct{}

func (stubCustomerService) CreateCustomer(ctx context.Context, input usecase.CreateCustomerInput) (*domain.Customer, error) {
	return &domain.Customer{ID: "cust", Name: input.Name}, nil
}

func (stubCustomerService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return &domain.Customer{ID: id}, nil
}

func (stubCustomerService) ListCustomers(ctx context.Context, input usecase.ListCustomersInput) ([]*domain.Customer, error) {
	return []*domain.Customer{}, nil
}

func (stubCustomerService) DeleteCustomer(ctx context.Context, id string) error {
	return nil
}

type stubSaleService struct{}

func (stubSaleService) RecordSale(ctx context.Context, input usecase.RecordSaleInput) (*domain.Sale, error) {
	return &domain.Sale{ID: "sale"}, nil
}

func (stubSaleService) ListSalesByCustomer(ctx context.Context, customerID string) ([]*domain.Sale, error) {
	return []*domain.Sale{}, nil
}

func (stubSaleService) DeleteSale(ctx context.Context, id string) error {
	return nil
}

type stubReceiptService struct{}

func (stubReceiptService) RecordReceipt(ctx context.Context, input usecase.RecordReceiptInput) (*domain.Receipt, error) {
	return &domain.Receipt{ID: "rcpt"}, nil
}

func (stubReceiptService) ListReceiptsByCustomer(ctx context.Context, customerID string) ([]*domain.Receipt, error) {
	return []*domain.Receipt{}, nil
}

func (stubReceiptService) DeleteReceipt(ctx context.Context, id string) error {
	return nil
}

type stubCashService struct{}

func (stubCashService) RecordEntry(ctx context.Context, input usecase.RecordCashEntryInput) (*domain.CashEntry, error) {
	return &domain.CashEntry{ID: "cash"}, nil
}

func (stubCashService) Ledger(ctx context.Context) ([]ledger.Line, error) {
	return []ledger.Line{}, nil
}

func (stubCashService) Summary(ctx context.Context, window *domain.PeriodWindow) (*usecase.CashSummary, error) {
	return &usecase.CashSummary{}, nil
}

func (stubCashService) DeleteEntry(ctx context.Context, id string) error {
	return nil
}

type stubCheckService struct{}

func (stubCheckService) RegisterCheck(ctx context.Context, input usecase.RegisterCheckInput) (*domain.Check, error) {
	return &domain.Check{ID: "chk"}, nil
}

func (stubCheckService) GetCheck(ctx context.Context, id string) (*domain.Check, error) {
	return &domain.Check{ID: id}, nil
}

func (stubCheckService) ListPortfolio(ctx context.Context) ([]*domain.Check, error) {
	return []*domain.Check{}, nil
}

func (stubCheckService) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Check, error) {
	return []*domain.Check{}, nil
}

func (stubCheckService) PortfolioBreakdown(ctx context.Context) (map[string]domain.Balance, error) {
	return map[string]domain.Balance{}, nil
}

func (stubCheckService) Collect(ctx context.Context, id string) (*domain.Check, error) {
	return &domain.Check{ID: id}, nil
}

func (stubCheckService) MarkReturned(ctx context.Context, id string) (*domain.Check, error) {
	return &domain.Check{ID: id}, nil
}

func (stubCheckService) CashOut(ctx context.Context, id string) (*domain.Check, *domain.CashEntry, error) {
	return &domain.Check{ID: id}, &domain.CashEntry{ID: "cash"}, nil
}

type stubStatementService struct{}

func (stubStatementService) GetStatement(ctx context.Context, customerID string, window *domain.PeriodWindow) (*usecase.Statement, error) {
	return &usecase.Statement{Customer: &domain.Customer{ID: customerID}}, nil
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}

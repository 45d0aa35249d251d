package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	adaptershttp "github.com/duhaderi/defter/internal/adapter/http"
	"github.com/duhaderi/defter/internal/adapter/http/handler"
	"github.com/duhaderi/defter/internal/adapter/repository/postgres"
	redisrepo "github.com/duhaderi/defter/internal/adapter/repository/redis"
	infraredis "github.com/duhaderi/defter/internal/infrastructure/redis"
	"github.com/duhaderi/defter/internal/usecase"
	"github.com/duhaderi/defter/tests/testutil"
)

// newTestServer wires the full HTTP stack against the test database and a
// local Redis. The returned cleanup closes the Redis connection; the caller
// owns the database.
func newTestServer(t *testing.T, testDB *testutil.TestDB) (http.Handler, func()) {
	t.Helper()

	ctx := t.Context()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}

	pool := testDB.Pool
	txManager := postgres.NewTxManager(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	receiptRepo := postgres.NewReceiptRepository(pool)
	cashRepo := postgres.NewCashEntryRepository(pool)
	checkRepo := postgres.NewCheckRepository(pool)
	cache := redisrepo.NewCache(redisClient)
	idGen := postgres.NewULIDGenerator()
	retrier := postgres.NewRetrier()

	customerUC := usecase.NewCustomerUseCase(customerRepo, idGen)
	saleUC := usecase.NewSaleUseCase(saleRepo, customerRepo, idGen, cache, nil)
	receiptUC := usecase.NewReceiptUseCase(receiptRepo, customerRepo, idGen, cache, nil)
	cashUC := usecase.NewCashUseCase(cashRepo, idGen, nil)
	checkUC := usecase.NewCheckUseCase(txManager, checkRepo, cashRepo, retrier, idGen, nil)
	statementUC := usecase.NewStatementUseCase(customerRepo, saleRepo, receiptRepo, cache, nil)

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		CustomerHandler:  handler.NewCustomerHandler(customerUC),
		SaleHandler:      handler.NewSaleHandler(saleUC),
		ReceiptHandler:   handler.NewReceiptHandler(receiptUC),
		CashHandler:      handler.NewCashHandler(cashUC),
		CheckHandler:     handler.NewCheckHandler(checkUC),
		StatementHandler: handler.NewStatementHandler(statementUC),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore: redisrepo.NewIdempotencyStore(redisClient),
	})

	return router, func() { _ = redisClient.Close() }
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	r := httptest.NewRequest(method, path, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, into any) {
	t.Helper()

	if err := json.Unmarshal(w.Body.Bytes(), into); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

package usecase

import (
	"context"
	"time"

	"github.com/duhaderi/defter/internal/domain"
)

// CustomerRepository defines data access for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id string) error
}

// SaleRepository defines data access for sales and returns.
type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) error
	GetByID(ctx context.Context, id string) (*domain.Sale, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Sale, error)
	Delete(ctx context.Context, id string) error
}

// ReceiptRepository defines data access for customer receipts.
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *domain.Receipt) error
	GetByID(ctx context.Context, id string) (*domain.Receipt, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Receipt, error)
	Delete(ctx context.Context, id string) error
}

// CashEntryRepository defines data access for cash register entries.
type CashEntryRepository interface {
	Create(ctx context.Context, entry *domain.CashEntry) error
	CreateTx(ctx context.Context, tx Transaction, entry *domain.CashEntry) error
	ListAll(ctx context.Context) ([]*domain.CashEntry, error)
	Delete(ctx context.Context, id string) error
}

// CheckRepository defines data access for checks and promissory notes.
type CheckRepository interface {
	Create(ctx context.Context, check *domain.Check) error
	GetByID(ctx context.Context, id string) (*domain.Check, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Check, error)
	UpdateStatus(ctx context.Context, tx Transaction, id string, status domain.CheckStatus, updatedAt time.Time) error
	ListAll(ctx context.Context) ([]*domain.Check, error)
	ListByStatus(ctx context.Context, status domain.CheckStatus) ([]*domain.Check, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Check, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation on transient storage failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

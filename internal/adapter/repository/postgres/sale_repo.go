package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/duhaderi/defter/internal/domain"
)

// SaleRepository implements usecase.SaleRepository.
type SaleRepository struct {
	pool *pgxpool.Pool
}

// NewSaleRepository creates a new SaleRepository.
func NewSaleRepository(pool *pgxpool.Pool) *SaleRepository {
	return &SaleRepository{pool: pool}
}

// Create creates a new sale or return.
func (r *SaleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO sales (id, customer_id, type, amount, currency, category, note, occurred_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		sale.ID,
		sale.CustomerID,
		string(sale.Type),
		decimalToNumeric(sale.Amount),
		sale.Currency,
		sale.Category,
		sale.Note,
		timeToPgTimestamptz(sale.OccurredAt),
		timeToPgTimestamptz(sale.CreatedAt),
	)

	return err
}

// GetByID retrieves a sale by ID.
func (r *SaleRepository) GetByID(ctx context.Context, id string) (*domain.Sale, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, customer_id, type, amount, currency, category, note, occurred_at, created_at
		FROM sales
		WHERE id = $1`, id)

	sale, err := scanSale(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSaleNotFound
		}

		return nil, err
	}

	return sale, nil
}

// ListByCustomer lists all sales for a customer in chronological order.
func (r *SaleRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Sale, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, customer_id, type, amount, currency, category, note, occurred_at, created_at
		FROM sales
		WHERE customer_id = $1
		ORDER BY occurred_at ASC, id ASC`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []*domain.Sale
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}

	return sales, rows.Err()
}

// Delete deletes a sale.
func (r *SaleRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrSaleNotFound
	}

	return nil
}

func scanSale(row pgx.Row) (*domain.Sale, error) {
	var (
		sale     domain.Sale
		saleType string
		amount   pgtype.Numeric
	)

	err := row.Scan(
		&sale.ID,
		&sale.CustomerID,
		&saleType,
		&amount,
		&sale.Currency,
		&sale.Category,
		&sale.Note,
		&sale.OccurredAt,
		&sale.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	sale.Type = domain.TransactionType(saleType)
	sale.Amount = numericToDecimal(amount)

	return &sale, nil
}

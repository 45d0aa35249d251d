package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/duhaderi/defter/internal/domain"
)

// ReceiptRepository implements usecase.ReceiptRepository.
type ReceiptRepository struct {
	pool *pgxpool.Pool
}

// NewReceiptRepository creates a new ReceiptRepository.
func NewReceiptRepository(pool *pgxpool.Pool) *ReceiptRepository {
	return &ReceiptRepository{pool: pool}
}

// Create creates a new receipt.
func (r *ReceiptRepository) Create(ctx context.Context, receipt *domain.Receipt) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO receipts (id, customer_id, amount, currency, method, note, received_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		receipt.ID,
		receipt.CustomerID,
		decimalToNumeric(receipt.Amount),
		receipt.Currency,
		receipt.Method,
		receipt.Note,
		timeToPgTimestamptz(receipt.ReceivedAt),
		timeToPgTimestamptz(receipt.CreatedAt),
	)

	return err
}

// GetByID retrieves a receipt by ID.
func (r *ReceiptRepository) GetByID(ctx context.Context, id string) (*domain.Receipt, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, customer_id, amount, currency, method, note, received_at, created_at
		FROM receipts
		WHERE id = $1`, id)

	receipt, err := scanReceipt(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReceiptNotFound
		}

		return nil, err
	}

	return receipt, nil
}

// ListByCustomer lists all receipts for a customer in chronological order.
func (r *ReceiptRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Receipt, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, customer_id, amount, currency, method, note, received_at, created_at
		FROM receipts
		WHERE customer_id = $1
		ORDER BY received_at ASC, id ASC`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var receipts []*domain.Receipt
	for rows.Next() {
		receipt, err := scanReceipt(rows)
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, receipt)
	}

	return receipts, rows.Err()
}

// Delete deletes a receipt.
func (r *ReceiptRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM receipts WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrReceiptNotFound
	}

	return nil
}

func scanReceipt(row pgx.Row) (*domain.Receipt, error) {
	var (
		receipt domain.Receipt
		amount  pgtype.Numeric
	)

	err := row.Scan(
		&receipt.ID,
		&receipt.CustomerID,
		&amount,
		&receipt.Currency,
		&receipt.Method,
		&receipt.Note,
		&receipt.ReceivedAt,
		&receipt.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	receipt.Amount = numericToDecimal(amount)

	return &receipt, nil
}

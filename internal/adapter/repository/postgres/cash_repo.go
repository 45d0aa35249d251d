package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/duhaderi/defter/internal/domain"
	"github.com/duhaderi/defter/internal/usecase"
)

// CashEntryRepository implements usecase.CashEntryRepository.
type CashEntryRepository struct {
	pool *pgxpool.Pool
}

// NewCashEntryRepository creates a new CashEntryRepository.
func NewCashEntryRepository(pool *pgxpool.Pool) *CashEntryRepository {
	return &CashEntryRepository{pool: pool}
}

const insertCashEntrySQL = `
	INSERT INTO cash_entries (id, direction, amount, currency, category, note, occurred_at, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// Create creates a new cash register entry.
func (r *CashEntryRepository) Create(ctx context.Context, entry *domain.CashEntry) error {
	_, err := r.pool.Exec(ctx, insertCashEntrySQL, cashEntryArgs(entry)...)

	return err
}

// CreateTx creates a new cash register entry within an existing transaction.
// Used when a check cash-out writes its register entry atomically with the
// status change.
func (r *CashEntryRepository) CreateTx(ctx context.Context, tx usecase.Transaction, entry *domain.CashEntry) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, insertCashEntrySQL, cashEntryArgs(entry)...)

	return err
}

// ListAll lists every cash register entry in chronological order.
func (r *CashEntryRepository) ListAll(ctx context.Context) ([]*domain.CashEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, direction, amount, currency, category, note, occurred_at, created_at
		FROM cash_entries
		ORDER BY occurred_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.CashEntry
	for rows.Next() {
		entry, err := scanCashEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Delete deletes a cash register entry.
func (r *CashEntryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cash_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrCashEntryNotFound
	}

	return nil
}

func cashEntryArgs(entry *domain.CashEntry) []any {
	return []any{
		entry.ID,
		string(entry.Direction),
		decimalToNumeric(entry.Amount),
		entry.Currency,
		entry.Category,
		entry.Note,
		timeToPgTimestamptz(entry.OccurredAt),
		timeToPgTimestamptz(entry.CreatedAt),
	}
}

func scanCashEntry(row pgx.Row) (*domain.CashEntry, error) {
	var (
		entry     domain.CashEntry
		direction string
		amount    pgtype.Numeric
	)

	err := row.Scan(
		&entry.ID,
		&direction,
		&amount,
		&entry.Currency,
		&entry.Category,
		&entry.Note,
		&entry.OccurredAt,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Direction = domain.Direction(direction)
	entry.Amount = numericToDecimal(amount)

	return &entry, nil
}

package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/duhaderi/defter/internal/domain"
	"github.com/duhaderi/defter/internal/usecase"
)

// CheckRepository implements usecase.CheckRepository.
type CheckRepository struct {
	pool *pgxpool.Pool
}

// NewCheckRepository creates a new CheckRepository.
func NewCheckRepository(pool *pgxpool.Pool) *CheckRepository {
	return &CheckRepository{pool: pool}
}

const checkColumns = `id, customer_id, kind, direction, status, amount, currency,
	bank_name, serial_number, due_date, received_at, created_at, updated_at`

// Create creates a new check or promissory note.
func (r *CheckRepository) Create(ctx context.Context, check *domain.Check) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO checks (id, customer_id, kind, direction, status, amount, currency,
			bank_name, serial_number, due_date, received_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		check.ID,
		check.CustomerID,
		string(check.Kind),
		string(check.Direction),
		string(check.Status),
		decimalToNumeric(check.Amount),
		check.Currency,
		check.BankName,
		check.SerialNumber,
		timeToPgTimestamptz(check.DueDate),
		timeToPgTimestamptz(check.ReceivedAt),
		timeToPgTimestamptz(check.CreatedAt),
		timeToPgTimestamptz(check.UpdatedAt),
	)

	return err
}

// GetByID retrieves a check by ID.
func (r *CheckRepository) GetByID(ctx context.Context, id string) (*domain.Check, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+checkColumns+` FROM checks WHERE id = $1`, id)

	return scanCheckRow(row)
}

// GetByIDForUpdate retrieves a check by ID with a FOR UPDATE lock.
func (r *CheckRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Check, error) {
	pgxTx := tx.(*Tx).PgxTx()

	row := pgxTx.QueryRow(ctx, `SELECT `+checkColumns+` FROM checks WHERE id = $1 FOR UPDATE`, id)

	return scanCheckRow(row)
}

// UpdateStatus updates the lifecycle status of a check.
func (r *CheckRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, id string, status domain.CheckStatus, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `
		UPDATE checks
		SET status = $2, updated_at = $3
		WHERE id = $1`,
		id, string(status), timeToPgTimestamptz(updatedAt))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrCheckNotFound
	}

	return nil
}

// ListAll lists every check ordered by due date.
func (r *CheckRepository) ListAll(ctx context.Context) ([]*domain.Check, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+checkColumns+` FROM checks ORDER BY due_date ASC, id ASC`)
	if err != nil {
		return nil, err
	}

	return scanChecks(rows)
}

// ListByStatus lists checks in a given lifecycle status ordered by due date.
func (r *CheckRepository) ListByStatus(ctx context.Context, status domain.CheckStatus) ([]*domain.Check, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+checkColumns+` FROM checks
		WHERE status = $1
		ORDER BY due_date ASC, id ASC`, string(status))
	if err != nil {
		return nil, err
	}

	return scanChecks(rows)
}

// ListByCustomer lists a customer's checks ordered by due date.
func (r *CheckRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Check, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+checkColumns+` FROM checks
		WHERE customer_id = $1
		ORDER BY due_date ASC, id ASC`, customerID)
	if err != nil {
		return nil, err
	}

	return scanChecks(rows)
}

func scanCheckRow(row pgx.Row) (*domain.Check, error) {
	check, err := scanCheck(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCheckNotFound
		}

		return nil, err
	}

	return check, nil
}

func scanChecks(rows pgx.Rows) ([]*domain.Check, error) {
	defer rows.Close()

	var checks []*domain.Check
	for rows.Next() {
		check, err := scanCheck(rows)
		if err != nil {
			return nil, err
		}
		checks = append(checks, check)
	}

	return checks, rows.Err()
}

func scanCheck(row pgx.Row) (*domain.Check, error) {
	var (
		check     domain.Check
		kind      string
		direction string
		status    string
		amount    pgtype.Numeric
	)

	err := row.Scan(
		&check.ID,
		&check.CustomerID,
		&kind,
		&direction,
		&status,
		&amount,
		&check.Currency,
		&check.BankName,
		&check.SerialNumber,
		&check.DueDate,
		&check.ReceivedAt,
		&check.CreatedAt,
		&check.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	check.Kind = domain.CheckKind(kind)
	check.Direction = domain.Direction(direction)
	check.Status = domain.CheckStatus(status)
	check.Amount = numericToDecimal(amount)

	return &check, nil
}

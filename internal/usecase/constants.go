package usecase

import "time"

const (
	// StatementCacheTTL is how long a full-history customer statement stays
	// cached before it is recomputed.
	StatementCacheTTL = 5 * time.Minute

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour
)

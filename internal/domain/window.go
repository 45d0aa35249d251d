package domain

import "time"

// PeriodWindow is a reporting window over a ledger. Start and End carry
// date semantics: the window covers Start through the end of the End day,
// so Contains is true for Start <= ts < End+1d. Movements strictly before
// Start belong to the prior balance.
type PeriodWindow struct {
	Start time.Time
	End   time.Time
}

// Validate checks window ordering.
func (w PeriodWindow) Validate() error {
	if w.End.Before(w.Start) {
		return ErrInvalidWindow
	}
	return nil
}

// Contains reports whether ts falls inside the window.
func (w PeriodWindow) Contains(ts time.Time) bool {
	return !ts.Before(w.Start) && ts.Before(w.End.AddDate(0, 0, 1))
}

// Prior reports whether ts falls strictly before the window.
func (w PeriodWindow) Prior(ts time.Time) bool {
	return ts.Before(w.Start)
}

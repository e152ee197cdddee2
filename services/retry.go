package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const maxContentionRetries = 3

// withContentionRetry re-runs fn when the database reports a serialization
// failure or deadlock. Each attempt re-validates from scratch, so a balance
// that changed between attempts is re-checked, never assumed.
func withContentionRetry(fn func() error) error {
	var err error
	for attempt := 0; attempt < maxContentionRetries; attempt++ {
		err = fn()
		if err == nil || !isContentionError(err) {
			return err
		}
	}
	return err
}

// IsTransient reports whether err is a contention failure that survived the
// retry budget and should surface as service-unavailable rather than a
// business rejection.
func IsTransient(err error) bool {
	return isContentionError(err)
}

func isContentionError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 40001 serialization_failure, 40P01 deadlock_detected
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

package noshow_sweep

import (
	"context"
	"time"
)

// BookingRepository is the booking storage surface the sweep needs.
type BookingRepository interface {
	MarkNoShows(ctx context.Context, startedBefore time.Time) ([]int64, error)
}

// TransactionManager wraps one sweep run in a transaction.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current instant; injectable for tests.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the sweep needs.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

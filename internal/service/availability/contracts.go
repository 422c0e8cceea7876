package availability

import (
	"context"

	"github.com/inkmatch/booking-service/internal/domain"
)

// AvailabilityRepository is the storage surface for availability records.
type AvailabilityRepository interface {
	Get(ctx context.Context, artistID int64) (*domain.Availability, error)
	Upsert(ctx context.Context, av *domain.Availability) (*domain.Availability, error)
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_available_slots

import (
	"context"
	"time"

	"github.com/inkmatch/booking-service/internal/domain"
)

// AvailabilityRepository loads the artist's availability record.
type AvailabilityRepository interface {
	Get(ctx context.Context, artistID int64) (*domain.Availability, error)
}

// PolicyRepository loads the artist's deposit policy; only the cutoff hours
// matter for slot listing.
type PolicyRepository interface {
	Get(ctx context.Context, artistID int64) (*domain.DepositPolicy, error)
}

// BookingRepository loads the occupying bookings the generator must avoid.
type BookingRepository interface {
	GetByArtistWithFilter(ctx context.Context, filter domain.ArtistBookingsFilter) ([]*domain.Booking, error)
}

// TimeProvider supplies the current instant; injectable for tests.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

package create_booking

import (
	"context"
	"time"

	"github.com/inkmatch/booking-service/internal/domain"
	"github.com/inkmatch/booking-service/internal/integrations/paymentservice"
)

// BookingRepository is the booking storage surface the coordinator needs.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByArtistWithFilter(ctx context.Context, filter domain.ArtistBookingsFilter) ([]*domain.Booking, error)
	SetDepositPaid(ctx context.Context, id int64, paidCents int64, reference string) error
}

// AvailabilityRepository loads the artist's availability record.
type AvailabilityRepository interface {
	Get(ctx context.Context, artistID int64) (*domain.Availability, error)
}

// PolicyRepository loads the artist's deposit policy.
type PolicyRepository interface {
	Get(ctx context.Context, artistID int64) (*domain.DepositPolicy, error)
}

// PaymentClient charges deposits after a booking row exists.
type PaymentClient interface {
	ChargeDeposit(ctx context.Context, bookingID int64, amountCents int64) (*paymentservice.ChargeResult, error)
}

// TransactionManager serializes the check-then-insert critical section.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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

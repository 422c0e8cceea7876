package transition_booking

import (
	"context"
	"time"

	"github.com/inkmatch/booking-service/internal/domain"
	"github.com/inkmatch/booking-service/internal/integrations/paymentservice"
)

// BookingRepository is the booking storage surface the use case needs.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error
}

// PaymentClient refunds deposits after an eligible cancellation commits.
type PaymentClient interface {
	Refund(ctx context.Context, bookingID int64, amountCents int64) (*paymentservice.RefundResult, error)
}

// TransactionManager wraps the read-check-update sequence so two actors
// cannot both transition the same booking.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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

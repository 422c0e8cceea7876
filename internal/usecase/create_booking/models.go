package create_booking

import (
	"time"

	"github.com/inkmatch/booking-service/internal/domain"
	"github.com/inkmatch/booking-service/pkg/types"
)

// Request is a client's attempt to reserve one generated slot. Date and
// StartTime are wall-clock values in the artist's timezone, exactly as the
// slot listing returned them; the absolute instants are derived here, not
// trusted from the client.
type Request struct {
	ArtistID        int64
	ClientID        int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	AppointmentType domain.AppointmentType
	PriceCents      int64 // ignored and forced to 0 for consultations
	Note            *string
}

// PaymentOutcome reports what happened to the deposit charge after the
// booking row was committed. A failed charge leaves the booking pending.
type PaymentOutcome struct {
	Required        bool
	Charged         bool
	AmountCents     int64
	ChargeReference *string
	FailureReason   *string
}

// Response is the created booking plus the deposit charge outcome.
type Response struct {
	ID              int64
	ArtistID        int64
	ClientID        int64
	StartAt         time.Time
	EndAt           time.Time
	DurationMinutes int
	AppointmentType domain.AppointmentType
	Status          domain.BookingStatus

	PriceCents           int64
	DepositRequiredCents int64
	DepositPaidCents     int64
	DepositNonRefundable bool
	CutoffHours          int

	Note *string

	Payment PaymentOutcome

	CreatedAt time.Time
	UpdatedAt time.Time
}

func responseFromBooking(b *domain.Booking, payment PaymentOutcome) *Response {
	return &Response{
		ID:                   b.ID,
		ArtistID:             b.ArtistID,
		ClientID:             b.ClientID,
		StartAt:              b.StartAt,
		EndAt:                b.EndAt,
		DurationMinutes:      b.DurationMinutes,
		AppointmentType:      b.AppointmentType,
		Status:               b.Status,
		PriceCents:           b.PriceCents,
		DepositRequiredCents: b.DepositRequiredCents,
		DepositPaidCents:     b.DepositPaidCents,
		DepositNonRefundable: b.DepositNonRefundable,
		CutoffHours:          b.CutoffHours,
		Note:                 b.Note,
		Payment:              payment,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}
}

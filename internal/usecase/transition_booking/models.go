package transition_booking

import (
	"time"

	"github.com/inkmatch/booking-service/internal/domain"
)

// Action is the caller-facing transition verb. Cancel resolves to
// cancelled_by_client or cancelled_by_artist from the actor's role, so the
// caller never names a role it does not hold.
type Action string

const (
	ActionAccept   Action = "accept"
	ActionDeny     Action = "deny"
	ActionCancel   Action = "cancel"
	ActionComplete Action = "complete"
)

// Request is one transition attempt by an authenticated actor.
type Request struct {
	BookingID int64
	Actor     domain.Actor
	Action    Action
	Reason    *string // cancellation reason, ignored for other actions
}

// RefundOutcome reports what happened to the deposit after a cancellation
// or denial committed. Attempted is false when there was nothing to refund
// or the deposit was forfeited.
type RefundOutcome struct {
	Eligible      bool
	Attempted     bool
	Refunded      bool
	AmountCents   int64
	Reference     *string
	FailureReason *string
}

// Response is the booking after the transition plus the refund outcome.
type Response struct {
	ID              int64
	ArtistID        int64
	ClientID        int64
	StartAt         time.Time
	EndAt           time.Time
	AppointmentType domain.AppointmentType
	Status          domain.BookingStatus

	PriceCents           int64
	DepositRequiredCents int64
	DepositPaidCents     int64

	CancellationReason *string
	CancelledAt        *time.Time

	Refund RefundOutcome

	UpdatedAt time.Time
}

func responseFromBooking(b *domain.Booking, refund RefundOutcome) *Response {
	return &Response{
		ID:                   b.ID,
		ArtistID:             b.ArtistID,
		ClientID:             b.ClientID,
		StartAt:              b.StartAt,
		EndAt:                b.EndAt,
		AppointmentType:      b.AppointmentType,
		Status:               b.Status,
		PriceCents:           b.PriceCents,
		DepositRequiredCents: b.DepositRequiredCents,
		DepositPaidCents:     b.DepositPaidCents,
		CancellationReason:   b.CancellationReason,
		CancelledAt:          b.CancelledAt,
		Refund:               refund,
		UpdatedAt:            b.UpdatedAt,
	}
}

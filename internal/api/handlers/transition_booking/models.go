package transition_booking

import (
	"time"

	"github.com/inkmatch/booking-service/internal/domain"
	transitionBooking "github.com/inkmatch/booking-service/internal/usecase/transition_booking"
)

// TransitionRequest HTTP request model
type TransitionRequest struct {
	Action string  `json:"action" validate:"required,oneof=accept deny cancel complete"`
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *TransitionRequest) ToUseCaseRequest(bookingID int64, actor domain.Actor) *transitionBooking.Request {
	return &transitionBooking.Request{
		BookingID: bookingID,
		Actor:     actor,
		Action:    transitionBooking.Action(r.Action),
		Reason:    r.Reason,
	}
}

// RefundResponse reports the deposit refund outcome.
type RefundResponse struct {
	Eligible      bool    `json:"eligible"`
	Attempted     bool    `json:"attempted"`
	Refunded      bool    `json:"refunded"`
	AmountCents   int64   `json:"amountCents,omitempty"`
	Reference     *string `json:"reference,omitempty"`
	FailureReason *string `json:"failureReason,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64  `json:"id"`
	ArtistID        int64  `json:"artistId"`
	ClientID        int64  `json:"clientId"`
	StartAt         string `json:"startAt"`
	EndAt           string `json:"endAt"`
	AppointmentType string `json:"appointmentType"`
	Status          string `json:"status"`

	PriceCents           int64 `json:"priceCents"`
	DepositRequiredCents int64 `json:"depositRequiredCents"`
	DepositPaidCents     int64 `json:"depositPaidCents"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	Refund RefundResponse `json:"refund"`

	UpdatedAt string `json:"updatedAt"`
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *transitionBooking.Response) *BookingResponse {
	var cancelledAt *string
	if resp.CancelledAt != nil {
		s := resp.CancelledAt.Format(time.RFC3339)
		cancelledAt = &s
	}

	return &BookingResponse{
		ID:                   resp.ID,
		ArtistID:             resp.ArtistID,
		ClientID:             resp.ClientID,
		StartAt:              resp.StartAt.Format(time.RFC3339),
		EndAt:                resp.EndAt.Format(time.RFC3339),
		AppointmentType:      string(resp.AppointmentType),
		Status:               string(resp.Status),
		PriceCents:           resp.PriceCents,
		DepositRequiredCents: resp.DepositRequiredCents,
		DepositPaidCents:     resp.DepositPaidCents,
		CancellationReason:   resp.CancellationReason,
		CancelledAt:          cancelledAt,
		Refund: RefundResponse{
			Eligible:      resp.Refund.Eligible,
			Attempted:     resp.Refund.Attempted,
			Refunded:      resp.Refund.Refunded,
			AmountCents:   resp.Refund.AmountCents,
			Reference:     resp.Refund.Reference,
			FailureReason: resp.Refund.FailureReason,
		},
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}

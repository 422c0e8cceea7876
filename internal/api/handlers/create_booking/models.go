package create_booking

import (
	"time"

	"github.com/inkmatch/booking-service/internal/domain"
	createBooking "github.com/inkmatch/booking-service/internal/usecase/create_booking"
	"github.com/inkmatch/booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ArtistID        int64   `json:"artistId" validate:"required,gt=0"`
	Date            string  `json:"date" validate:"required"`      // "2026-09-14"
	StartTime       string  `json:"startTime" validate:"required"` // "10:00"
	DurationMinutes int     `json:"durationMinutes" validate:"required,gt=0"`
	AppointmentType string  `json:"appointmentType" validate:"required,oneof=consultation tattoo_session"`
	PriceCents      int64   `json:"priceCents" validate:"gte=0"`
	Note            *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

// PaymentResponse reports the deposit charge outcome.
type PaymentResponse struct {
	Required        bool    `json:"required"`
	Charged         bool    `json:"charged"`
	AmountCents     int64   `json:"amountCents,omitempty"`
	ChargeReference *string `json:"chargeReference,omitempty"`
	FailureReason   *string `json:"failureReason,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64  `json:"id"`
	ArtistID        int64  `json:"artistId"`
	ClientID        int64  `json:"clientId"`
	StartAt         string `json:"startAt"`
	EndAt           string `json:"endAt"`
	DurationMinutes int    `json:"durationMinutes"`
	AppointmentType string `json:"appointmentType"`
	Status          string `json:"status"`

	PriceCents           int64 `json:"priceCents"`
	DepositRequiredCents int64 `json:"depositRequiredCents"`
	DepositPaidCents     int64 `json:"depositPaidCents"`
	DepositNonRefundable bool  `json:"depositNonRefundable"`
	CutoffHours          int   `json:"cutoffHours"`

	Note *string `json:"note,omitempty"`

	Payment PaymentResponse `json:"payment"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request, parsing date and time.
func (r *CreateBookingRequest) ToUseCaseRequest(clientID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ArtistID:        r.ArtistID,
		ClientID:        clientID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		AppointmentType: domain.AppointmentType(r.AppointmentType),
		PriceCents:      r.PriceCents,
		Note:            r.Note,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                   resp.ID,
		ArtistID:             resp.ArtistID,
		ClientID:             resp.ClientID,
		StartAt:              resp.StartAt.Format(time.RFC3339),
		EndAt:                resp.EndAt.Format(time.RFC3339),
		DurationMinutes:      resp.DurationMinutes,
		AppointmentType:      string(resp.AppointmentType),
		Status:               string(resp.Status),
		PriceCents:           resp.PriceCents,
		DepositRequiredCents: resp.DepositRequiredCents,
		DepositPaidCents:     resp.DepositPaidCents,
		DepositNonRefundable: resp.DepositNonRefundable,
		CutoffHours:          resp.CutoffHours,
		Note:                 resp.Note,
		Payment: PaymentResponse{
			Required:        resp.Payment.Required,
			Charged:         resp.Payment.Charged,
			AmountCents:     resp.Payment.AmountCents,
			ChargeReference: resp.Payment.ChargeReference,
			FailureReason:   resp.Payment.FailureReason,
		},
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}

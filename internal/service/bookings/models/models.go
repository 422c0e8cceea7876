package models

import (
	"fmt"
	"time"

	"github.com/inkmatch/booking-service/internal/domain"
)

// BookingResponse is one booking as the API returns it.
type BookingResponse struct {
	ID              int64                  `json:"id"`
	ArtistID        int64                  `json:"artistId"`
	ClientID        int64                  `json:"clientId"`
	StartAt         time.Time              `json:"startAt"`
	EndAt           time.Time              `json:"endAt"`
	DurationMinutes int                    `json:"durationMinutes"`
	AppointmentType domain.AppointmentType `json:"appointmentType"`
	Status          domain.BookingStatus   `json:"status"`

	PriceCents           int64 `json:"priceCents"`
	DepositRequiredCents int64 `json:"depositRequiredCents"`
	DepositPaidCents     int64 `json:"depositPaidCents"`
	DepositNonRefundable bool  `json:"depositNonRefundable"`
	CutoffHours          int   `json:"cutoffHours"`

	Note               *string    `json:"note,omitempty"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainBooking converts a domain booking into the response.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
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
		CancellationReason:   b.CancellationReason,
		CancelledAt:          b.CancelledAt,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}
}

// BookingListResponse is a list of bookings with its count.
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBookingList converts a slice of domain bookings.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: out, Total: len(out)}
}

// ToDomainBookingStatus parses a status string from a query parameter.
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	switch status {
	case domain.StatusPending, domain.StatusAccepted, domain.StatusDenied,
		domain.StatusCompleted, domain.StatusCancelledByClient,
		domain.StatusCancelledByArtist, domain.StatusNoShow:
		return status, nil
	default:
		return "", fmt.Errorf("unknown booking status %q", s)
	}
}

// GetClientBookingsRequest asks for a client's booking history.
type GetClientBookingsRequest struct {
	ClientID int64
	UserID   int64 // authenticated caller, must be the client
	Status   *string
}

// GetArtistBookingsRequest asks for an artist's calendar.
type GetArtistBookingsRequest struct {
	ArtistID        int64
	UserID          int64 // authenticated caller, must be the artist
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeTerminal bool
}

// ToDomainFilter converts the request into the repository filter. The end
// date is pushed one day forward so the window covers the whole last day.
func (r *GetArtistBookingsRequest) ToDomainFilter() (domain.ArtistBookingsFilter, error) {
	filter := domain.ArtistBookingsFilter{
		ArtistID:        r.ArtistID,
		IncludeTerminal: r.IncludeTerminal,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.ArtistBookingsFilter{}, err
		}
		filter.Status = &status
	}

	if r.StartDate != nil {
		from := *r.StartDate
		filter.From = &from
	}
	if r.EndDate != nil {
		to := r.EndDate.AddDate(0, 0, 1)
		filter.To = &to
	}
	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(*r.StartDate) {
		return domain.ArtistBookingsFilter{}, fmt.Errorf("endDate precedes startDate")
	}

	return filter, nil
}

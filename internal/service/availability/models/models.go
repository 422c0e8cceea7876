package models

import (
	"time"

	"github.com/inkmatch/booking-service/internal/domain"
)

// UpsertAvailabilityRequest replaces the artist's whole schedule. Partial
// updates are not supported: the stored record is exactly what was sent,
// so the artist's app can round-trip it without merge logic.
type UpsertAvailabilityRequest struct {
	ArtistID      int64
	UserID        int64 // authenticated caller, must be the artist
	Timezone      string
	SlotMinutes   int
	BufferMinutes int
	Weekly        map[string][]domain.TimeRange
	Exceptions    map[string][]domain.TimeRange
}

// ToDomain converts the request into the domain record.
func (r *UpsertAvailabilityRequest) ToDomain() *domain.Availability {
	return &domain.Availability{
		ArtistID:      r.ArtistID,
		Timezone:      r.Timezone,
		SlotMinutes:   r.SlotMinutes,
		BufferMinutes: r.BufferMinutes,
		Weekly:        r.Weekly,
		Exceptions:    r.Exceptions,
	}
}

// AvailabilityResponse is the stored schedule as the API returns it.
type AvailabilityResponse struct {
	ArtistID      int64                         `json:"artistId"`
	Timezone      string                        `json:"timezone"`
	SlotMinutes   int                           `json:"slotMinutes"`
	BufferMinutes int                           `json:"bufferMinutes"`
	Weekly        map[string][]domain.TimeRange `json:"weekly"`
	Exceptions    map[string][]domain.TimeRange `json:"exceptions"`
	CreatedAt     time.Time                     `json:"createdAt"`
	UpdatedAt     time.Time                     `json:"updatedAt"`
}

// FromDomain converts the domain record into the response.
func FromDomain(av *domain.Availability) *AvailabilityResponse {
	return &AvailabilityResponse{
		ArtistID:      av.ArtistID,
		Timezone:      av.Timezone,
		SlotMinutes:   av.SlotMinutes,
		BufferMinutes: av.BufferMinutes,
		Weekly:        av.Weekly,
		Exceptions:    av.Exceptions,
		CreatedAt:     av.CreatedAt,
		UpdatedAt:     av.UpdatedAt,
	}
}

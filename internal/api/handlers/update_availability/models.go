package update_availability

import (
	"github.com/inkmatch/booking-service/internal/domain"
	"github.com/inkmatch/booking-service/internal/service/availability/models"
)

// UpdateAvailabilityRequest HTTP request model. The schedule is replaced
// wholesale; structural validation happens in the domain layer so the rules
// stay identical for every caller.
type UpdateAvailabilityRequest struct {
	Timezone      string                        `json:"timezone" validate:"required"`
	SlotMinutes   int                           `json:"slotMinutes" validate:"required,gt=0"`
	BufferMinutes int                           `json:"bufferMinutes" validate:"gte=0"`
	Weekly        map[string][]domain.TimeRange `json:"weekly"`
	Exceptions    map[string][]domain.TimeRange `json:"exceptions"`
}

// ToServiceRequest converts the HTTP request into the service model.
func (r *UpdateAvailabilityRequest) ToServiceRequest(artistID, userID int64) *models.UpsertAvailabilityRequest {
	return &models.UpsertAvailabilityRequest{
		ArtistID:      artistID,
		UserID:        userID,
		Timezone:      r.Timezone,
		SlotMinutes:   r.SlotMinutes,
		BufferMinutes: r.BufferMinutes,
		Weekly:        r.Weekly,
		Exceptions:    r.Exceptions,
	}
}

package get_available_slots

import (
	"fmt"

	"github.com/inkmatch/booking-service/internal/domain"
)

// validateRequest checks the request shape before any repository call.
func validateRequest(req *Request) error {
	if req.ArtistID <= 0 {
		return fmt.Errorf("%w: artistID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidDuration)
	}
	if req.DurationMinutes > domain.MaxSessionMinutes {
		return fmt.Errorf("%w: durationMinutes %d exceeds maximum %d",
			ErrInvalidDuration, req.DurationMinutes, domain.MaxSessionMinutes)
	}
	return nil
}

// validateDuration checks the duration against the artist's granularity.
// Anything that is not an exact multiple is rejected, not rounded.
func validateDuration(durationMinutes, slotMinutes int) error {
	if durationMinutes%slotMinutes != 0 {
		return fmt.Errorf("%w: durationMinutes %d is not a multiple of slot granularity %d",
			ErrInvalidDuration, durationMinutes, slotMinutes)
	}
	return nil
}

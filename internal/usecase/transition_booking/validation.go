package transition_booking

import (
	"fmt"

	"github.com/inkmatch/booking-service/internal/domain"
)

// validateRequest checks the request shape before any repository call.
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.Actor.ID <= 0 {
		return fmt.Errorf("%w: actor id must be positive", ErrInvalidInput)
	}

	switch req.Actor.Role {
	case domain.RoleClient, domain.RoleArtist:
	default:
		return fmt.Errorf("%w: unknown actor role %q", ErrInvalidInput, req.Actor.Role)
	}

	switch req.Action {
	case ActionAccept, ActionDeny, ActionCancel, ActionComplete:
	default:
		return fmt.Errorf("%w: unknown action %q", ErrInvalidInput, req.Action)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxNoteLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	return nil
}

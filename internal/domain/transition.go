package domain

import (
	"errors"
	"fmt"
	"time"
)

// Role identifies who is acting on a booking.
type Role string

const (
	RoleClient Role = "client"
	RoleArtist Role = "artist"
	RoleSystem Role = "system" // scheduled sweeps, never an HTTP caller
)

// Actor is the authenticated party attempting a transition.
type Actor struct {
	ID   int64
	Role Role
}

// ErrInvalidTransition is the sentinel for every state-machine rule
// violation. The wrapped message names current state, requested state and
// actor role so the caller never has to re-derive them.
var ErrInvalidTransition = errors.New("domain: invalid transition")

func invalidTransition(from, to BookingStatus, role Role, reason string) error {
	return fmt.Errorf("%w: %s -> %s by %s: %s", ErrInvalidTransition, from, to, role, reason)
}

// CanTransition checks whether actor may move the booking to target at the
// given instant. It validates rules only; it does not mutate the booking.
//
//	pending  -> accepted | denied
//	accepted -> completed | cancelled_by_client | cancelled_by_artist | no_show
//
// denied, completed, cancelled_* and no_show are terminal.
func CanTransition(b *Booking, target BookingStatus, actor Actor, now time.Time) error {
	if b.IsTerminal() {
		return invalidTransition(b.Status, target, actor.Role, "booking is in a terminal state")
	}

	switch target {
	case StatusAccepted:
		if b.Status != StatusPending {
			return invalidTransition(b.Status, target, actor.Role, "only a pending booking can be accepted")
		}
		if actor.Role != RoleArtist {
			return invalidTransition(b.Status, target, actor.Role, "only the artist can accept")
		}
		if !now.Before(b.StartAt) {
			return invalidTransition(b.Status, target, actor.Role, "appointment start has already passed")
		}
		return nil

	case StatusDenied:
		if b.Status != StatusPending {
			return invalidTransition(b.Status, target, actor.Role, "only a pending booking can be denied")
		}
		if actor.Role != RoleArtist && actor.Role != RoleClient {
			return invalidTransition(b.Status, target, actor.Role, "only the artist or the client can deny")
		}
		if !now.Before(b.StartAt) {
			return invalidTransition(b.Status, target, actor.Role, "appointment start has already passed")
		}
		return nil

	case StatusCancelledByClient:
		if b.Status != StatusAccepted {
			return invalidTransition(b.Status, target, actor.Role, "only an accepted booking can be cancelled")
		}
		if actor.Role != RoleClient {
			return invalidTransition(b.Status, target, actor.Role, "only the client cancels as client")
		}
		return nil

	case StatusCancelledByArtist:
		if b.Status != StatusAccepted {
			return invalidTransition(b.Status, target, actor.Role, "only an accepted booking can be cancelled")
		}
		if actor.Role != RoleArtist {
			return invalidTransition(b.Status, target, actor.Role, "only the artist cancels as artist")
		}
		return nil

	case StatusCompleted:
		if b.Status != StatusAccepted {
			return invalidTransition(b.Status, target, actor.Role, "only an accepted booking can be completed")
		}
		if actor.Role != RoleArtist {
			return invalidTransition(b.Status, target, actor.Role, "only the artist can complete")
		}
		if !now.After(b.EndAt) {
			return invalidTransition(b.Status, target, actor.Role, "appointment has not ended yet")
		}
		return nil

	case StatusNoShow:
		if b.Status != StatusAccepted {
			return invalidTransition(b.Status, target, actor.Role, "only an accepted booking can be marked no-show")
		}
		if actor.Role != RoleSystem {
			return invalidTransition(b.Status, target, actor.Role, "no-show is system-triggered only")
		}
		if !now.After(b.StartAt) {
			return invalidTransition(b.Status, target, actor.Role, "appointment start has not passed yet")
		}
		return nil

	default:
		return invalidTransition(b.Status, target, actor.Role, "unknown target state")
	}
}

// RefundEligible computes whether cancelling at the given instant keeps the
// deposit refundable. A refundable deposit is always returned; a
// non-refundable one is returned only when the cancellation happens before
// the cutoff window opens. No-show forfeits like a late client cancellation.
func RefundEligible(b *Booking, now time.Time) bool {
	if !b.DepositNonRefundable {
		return true
	}
	cutoffOpens := b.StartAt.Add(-time.Duration(b.CutoffHours) * time.Hour)
	return now.Before(cutoffOpens)
}

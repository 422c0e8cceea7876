package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	artistActor = Actor{ID: 10, Role: RoleArtist}
	clientActor = Actor{ID: 20, Role: RoleClient}
	systemActor = Actor{ID: 0, Role: RoleSystem}
)

func bookingIn(status BookingStatus, startAt time.Time, durationMinutes int) *Booking {
	return &Booking{
		ID:       1,
		ArtistID: artistActor.ID,
		ClientID: clientActor.ID,
		StartAt:  startAt,
		EndAt:    startAt.Add(time.Duration(durationMinutes) * time.Minute),
		Status:   status,
	}
}

func TestCanTransition(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(48 * time.Hour)
	past := now.Add(-48 * time.Hour)

	cases := []struct {
		name   string
		b      *Booking
		target BookingStatus
		actor  Actor
		valid  bool
	}{
		{"artist accepts pending", bookingIn(StatusPending, future, 60), StatusAccepted, artistActor, true},
		{"client cannot accept", bookingIn(StatusPending, future, 60), StatusAccepted, clientActor, false},
		{"cannot accept after start", bookingIn(StatusPending, past, 60), StatusAccepted, artistActor, false},
		{"cannot accept accepted", bookingIn(StatusAccepted, future, 60), StatusAccepted, artistActor, false},

		{"artist denies pending", bookingIn(StatusPending, future, 60), StatusDenied, artistActor, true},
		{"client withdraws pending", bookingIn(StatusPending, future, 60), StatusDenied, clientActor, true},
		{"system cannot deny", bookingIn(StatusPending, future, 60), StatusDenied, systemActor, false},
		{"cannot deny accepted", bookingIn(StatusAccepted, future, 60), StatusDenied, artistActor, false},
		{"cannot deny after start", bookingIn(StatusPending, past, 60), StatusDenied, clientActor, false},

		{"client cancels accepted", bookingIn(StatusAccepted, future, 60), StatusCancelledByClient, clientActor, true},
		{"artist cannot cancel as client", bookingIn(StatusAccepted, future, 60), StatusCancelledByClient, artistActor, false},
		{"cannot cancel pending", bookingIn(StatusPending, future, 60), StatusCancelledByClient, clientActor, false},

		{"artist cancels accepted", bookingIn(StatusAccepted, future, 60), StatusCancelledByArtist, artistActor, true},
		{"client cannot cancel as artist", bookingIn(StatusAccepted, future, 60), StatusCancelledByArtist, clientActor, false},

		{"artist completes ended", bookingIn(StatusAccepted, past, 60), StatusCompleted, artistActor, true},
		{"cannot complete before end", bookingIn(StatusAccepted, future, 60), StatusCompleted, artistActor, false},
		{"client cannot complete", bookingIn(StatusAccepted, past, 60), StatusCompleted, clientActor, false},
		{"cannot complete pending", bookingIn(StatusPending, past, 60), StatusCompleted, artistActor, false},

		{"system marks no-show after start", bookingIn(StatusAccepted, past, 60), StatusNoShow, systemActor, true},
		{"artist cannot mark no-show", bookingIn(StatusAccepted, past, 60), StatusNoShow, artistActor, false},
		{"no no-show before start", bookingIn(StatusAccepted, future, 60), StatusNoShow, systemActor, false},

		{"denied is terminal", bookingIn(StatusDenied, future, 60), StatusAccepted, artistActor, false},
		{"completed is terminal", bookingIn(StatusCompleted, past, 60), StatusCancelledByClient, clientActor, false},
		{"cancelled is terminal", bookingIn(StatusCancelledByClient, future, 60), StatusAccepted, artistActor, false},
		{"no_show is terminal", bookingIn(StatusNoShow, past, 60), StatusCompleted, artistActor, false},

		{"unknown target", bookingIn(StatusPending, future, 60), "teleported", artistActor, false},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.b, tt.target, tt.actor, now)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		})
	}
}

func TestRefundEligible(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	refundable := bookingIn(StatusAccepted, now.Add(time.Hour), 60)
	refundable.DepositNonRefundable = false
	refundable.CutoffHours = 48
	assert.True(t, RefundEligible(refundable, now), "refundable deposit is always returned")

	nonRefundable := bookingIn(StatusAccepted, now.Add(72*time.Hour), 60)
	nonRefundable.DepositNonRefundable = true
	nonRefundable.CutoffHours = 48
	assert.True(t, RefundEligible(nonRefundable, now), "cancelling before the cutoff window keeps eligibility")

	lateCancel := bookingIn(StatusAccepted, now.Add(24*time.Hour), 60)
	lateCancel.DepositNonRefundable = true
	lateCancel.CutoffHours = 48
	assert.False(t, RefundEligible(lateCancel, now), "cancelling inside the cutoff window forfeits")

	atBoundary := bookingIn(StatusAccepted, now.Add(48*time.Hour), 60)
	atBoundary.DepositNonRefundable = true
	atBoundary.CutoffHours = 48
	assert.False(t, RefundEligible(atBoundary, now), "the boundary instant already forfeits")
}

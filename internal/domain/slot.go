package domain

import (
	"time"

	"github.com/inkmatch/booking-service/pkg/types"
)

// Slot is a candidate bookable window of fixed duration, produced by the
// slot generator. StartAt/EndAt are absolute instants; StartTime is the
// artist-local wall-clock label clients see.
type Slot struct {
	StartAt         time.Time
	EndAt           time.Time
	StartTime       types.TimeString
	DurationMinutes int
}

package get_available_slots

import (
	"time"

	"github.com/inkmatch/booking-service/internal/domain"
)

// Request asks for the bookable slots of one artist on one calendar date.
type Request struct {
	ArtistID        int64
	Date            time.Time // calendar date, time-of-day ignored
	DurationMinutes int       // must be a positive multiple of the artist's slot granularity
}

// Response lists the generated slots in ascending start order.
type Response struct {
	ArtistID        int64
	Date            time.Time
	Timezone        string
	DurationMinutes int
	Slots           []domain.Slot
}

package create_booking

import (
	"fmt"
	"time"

	"github.com/inkmatch/booking-service/internal/domain"
)

// validateRequest checks the request shape before any repository call.
func validateRequest(req *Request) error {
	if req.ArtistID <= 0 {
		return fmt.Errorf("%w: artistID must be positive", ErrInvalidInput)
	}
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if req.DurationMinutes <= 0 || req.DurationMinutes > domain.MaxSessionMinutes {
		return fmt.Errorf("%w: durationMinutes %d outside (0, %d]",
			ErrInvalidInput, req.DurationMinutes, domain.MaxSessionMinutes)
	}
	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note exceeds %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	switch req.AppointmentType {
	case domain.TypeConsultation:
		// Price is forced to zero later; a non-zero price here is a caller
		// bug worth rejecting loudly.
		if req.PriceCents != 0 {
			return fmt.Errorf("%w: consultations are free, priceCents must be 0", ErrInvalidInput)
		}
	case domain.TypeTattooSession:
		if req.PriceCents <= 0 {
			return fmt.Errorf("%w: tattoo sessions require a positive priceCents", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unknown appointmentType %q", ErrInvalidInput, req.AppointmentType)
	}

	return nil
}

// validateSlotOnGrid checks that [startAt, endAt) lies fully inside one of
// the day's open ranges and that the start sits on the slot granularity
// grid counted from the range start. A stale or fabricated slot fails here
// before any overlap check runs.
func validateSlotOnGrid(
	av *domain.Availability,
	date time.Time,
	startAt, endAt time.Time,
	loc *time.Location,
) error {
	if av.SlotMinutes <= 0 {
		return fmt.Errorf("%w: availability has no slot granularity", ErrInternal)
	}

	for _, openRange := range av.OpenRangesOn(date) {
		rangeStart, err := openRange.Start.At(date, loc)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		rangeEnd, err := openRange.End.At(date, loc)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		if startAt.Before(rangeStart) || endAt.After(rangeEnd) {
			continue
		}

		offset := startAt.Sub(rangeStart)
		if offset%(time.Duration(av.SlotMinutes)*time.Minute) != 0 {
			return fmt.Errorf("%w: start %s is off the %d-minute grid",
				ErrInvalidSlot, startAt.In(loc).Format(domain.TimeFormat), av.SlotMinutes)
		}
		return nil
	}

	return fmt.Errorf("%w: %s-%s is outside the artist's open hours",
		ErrInvalidSlot,
		startAt.In(loc).Format(domain.TimeFormat),
		endAt.In(loc).Format(domain.TimeFormat))
}

// countOverlapping returns how many occupying bookings collide with the
// window after buffer expansion. Strict interval overlap: touching
// endpoints do not collide.
func countOverlapping(startAt, endAt time.Time, bufferMinutes int, bookings []*domain.Booking) int {
	buffer := time.Duration(bufferMinutes) * time.Minute
	count := 0
	for _, booking := range bookings {
		if !booking.Occupies() {
			continue
		}
		if booking.OverlapsBuffered(startAt, endAt, buffer) {
			count++
		}
	}
	return count
}

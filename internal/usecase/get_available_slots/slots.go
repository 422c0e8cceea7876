package get_available_slots

import (
	"time"

	"github.com/inkmatch/booking-service/internal/domain"
	"github.com/inkmatch/booking-service/pkg/types"
)

// generateSlots produces every candidate window for one calendar date. The
// wall-clock open ranges are anchored onto the date in the artist's
// timezone exactly once; everything after that is absolute-time math.
//
// Within one open range, candidates start at range.Start and step forward by
// the slot granularity. A candidate is emitted only when the whole window
// [t, t+duration) fits inside the range: a range whose span is not an exact
// multiple of the duration simply yields fewer trailing candidates.
func generateSlots(
	av *domain.Availability,
	date time.Time,
	durationMinutes int,
	loc *time.Location,
) ([]domain.Slot, error) {
	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(av.SlotMinutes) * time.Minute

	slots := make([]domain.Slot, 0)

	for _, openRange := range av.OpenRangesOn(date) {
		rangeStart, err := openRange.Start.At(date, loc)
		if err != nil {
			return nil, err
		}
		rangeEnd, err := openRange.End.At(date, loc)
		if err != nil {
			return nil, err
		}
		if !rangeStart.Before(rangeEnd) {
			continue
		}

		for t := rangeStart; !t.Add(duration).After(rangeEnd); t = t.Add(step) {
			slots = append(slots, domain.Slot{
				StartAt:         t,
				EndAt:           t.Add(duration),
				StartTime:       types.NewTimeString(t.In(loc)),
				DurationMinutes: durationMinutes,
			})
		}
	}

	return slots, nil
}

// filterSlots drops candidates that collide with an occupying booking
// (after expanding each booking by the buffer on both sides) or start
// before now + cutoff. Touching endpoints never collide.
func filterSlots(
	candidates []domain.Slot,
	bookings []*domain.Booking,
	bufferMinutes int,
	now time.Time,
	cutoffHours int,
) []domain.Slot {
	buffer := time.Duration(bufferMinutes) * time.Minute
	earliestStart := now.Add(time.Duration(cutoffHours) * time.Hour)

	kept := make([]domain.Slot, 0, len(candidates))

	for _, slot := range candidates {
		if slot.StartAt.Before(earliestStart) {
			continue
		}
		if overlapsAny(slot, bookings, buffer) {
			continue
		}
		kept = append(kept, slot)
	}

	return kept
}

func overlapsAny(slot domain.Slot, bookings []*domain.Booking, buffer time.Duration) bool {
	for _, booking := range bookings {
		if !booking.Occupies() {
			continue
		}
		if booking.OverlapsBuffered(slot.StartAt, slot.EndAt, buffer) {
			return true
		}
	}
	return false
}

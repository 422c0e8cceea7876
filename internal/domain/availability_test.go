package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAvailability() *Availability {
	return &Availability{
		ArtistID:      1,
		Timezone:      "America/New_York",
		SlotMinutes:   30,
		BufferMinutes: 15,
		Weekly: map[string][]TimeRange{
			"monday":  {{Start: "10:00", End: "18:00"}},
			"tuesday": {{Start: "10:00", End: "13:00"}, {Start: "14:00", End: "19:00"}},
		},
		Exceptions: map[string][]TimeRange{
			"2026-09-07": {},
			"2026-09-08": {{Start: "12:00", End: "16:00"}},
		},
	}
}

func TestAvailability_Validate(t *testing.T) {
	assert.NoError(t, validAvailability().Validate())

	cases := []struct {
		name   string
		mutate func(a *Availability)
	}{
		{"missing artist", func(a *Availability) { a.ArtistID = 0 }},
		{"slot granularity too small", func(a *Availability) { a.SlotMinutes = 1 }},
		{"slot granularity too large", func(a *Availability) { a.SlotMinutes = 300 }},
		{"negative buffer", func(a *Availability) { a.BufferMinutes = -5 }},
		{"bad timezone", func(a *Availability) { a.Timezone = "Mars/Olympus" }},
		{"unknown weekday key", func(a *Availability) {
			a.Weekly["funday"] = []TimeRange{{Start: "10:00", End: "12:00"}}
		}},
		{"inverted range", func(a *Availability) {
			a.Weekly["monday"] = []TimeRange{{Start: "18:00", End: "10:00"}}
		}},
		{"malformed time", func(a *Availability) {
			a.Weekly["monday"] = []TimeRange{{Start: "10am", End: "18:00"}}
		}},
		{"overlapping ranges", func(a *Availability) {
			a.Weekly["monday"] = []TimeRange{{Start: "10:00", End: "14:00"}, {Start: "13:00", End: "18:00"}}
		}},
		{"unsorted ranges", func(a *Availability) {
			a.Weekly["monday"] = []TimeRange{{Start: "14:00", End: "18:00"}, {Start: "10:00", End: "12:00"}}
		}},
		{"bad exception date", func(a *Availability) {
			a.Exceptions["next tuesday"] = []TimeRange{{Start: "10:00", End: "12:00"}}
		}},
		{"bad exception range", func(a *Availability) {
			a.Exceptions["2026-09-09"] = []TimeRange{{Start: "12:00", End: "12:00"}}
		}},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			a := validAvailability()
			tt.mutate(a)
			assert.ErrorIs(t, a.Validate(), ErrInvalidAvailability)
		})
	}
}

func TestAvailability_ValidateAllowsEndOfDay(t *testing.T) {
	a := validAvailability()
	a.Weekly["monday"] = []TimeRange{{Start: "22:00", End: "24:00"}}
	assert.NoError(t, a.Validate())
}

func TestAvailability_OpenRangesOn(t *testing.T) {
	a := validAvailability()

	// 2026-09-07 is a Monday with an empty exception: the day is closed and
	// the weekly template does not leak through.
	closed := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	got := a.OpenRangesOn(closed)
	require.NotNil(t, got)
	assert.Empty(t, got)

	// 2026-09-08 is a Tuesday with an override: the exception wins verbatim.
	overridden := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []TimeRange{{Start: "12:00", End: "16:00"}}, a.OpenRangesOn(overridden))

	// 2026-09-15 is a plain Tuesday: the weekly template applies.
	plain := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, a.Weekly["tuesday"], a.OpenRangesOn(plain))

	// A day with no weekly entry and no exception has no open hours.
	sunday := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, a.OpenRangesOn(sunday))
}

func TestBooking_OverlapsBuffered(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	b := &Booking{StartAt: start, EndAt: start.Add(time.Hour)}

	// Touching endpoints do not conflict without a buffer.
	assert.False(t, b.OverlapsBuffered(start.Add(time.Hour), start.Add(2*time.Hour), 0))
	assert.False(t, b.OverlapsBuffered(start.Add(-time.Hour), start, 0))

	// Any shared instant conflicts.
	assert.True(t, b.OverlapsBuffered(start.Add(30*time.Minute), start.Add(90*time.Minute), 0))
	assert.True(t, b.OverlapsBuffered(start.Add(-time.Hour), start.Add(time.Minute), 0))

	// The buffer expands the occupied interval on both sides.
	buffer := 15 * time.Minute
	assert.True(t, b.OverlapsBuffered(start.Add(time.Hour), start.Add(2*time.Hour), buffer))
	assert.False(t, b.OverlapsBuffered(start.Add(75*time.Minute), start.Add(2*time.Hour), buffer))
	assert.True(t, b.OverlapsBuffered(start.Add(-70*time.Minute), start.Add(-10*time.Minute), buffer))
	assert.False(t, b.OverlapsBuffered(start.Add(-70*time.Minute), start.Add(-15*time.Minute), buffer))
}

package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/inkmatch/booking-service/pkg/types"
)

// ErrInvalidAvailability is the sentinel every availability validation
// failure wraps; callers branch on it with errors.Is and read the detail
// from the message.
var ErrInvalidAvailability = errors.New("domain: invalid availability")

// TimeRange is a wall-clock interval within a single day. End is exclusive
// and must be strictly after Start.
type TimeRange struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// Validate checks both endpoints and their ordering.
func (r TimeRange) Validate() error {
	if err := r.Start.Validate(); err != nil {
		return fmt.Errorf("%w: range start: %v", ErrInvalidAvailability, err)
	}
	if err := r.End.Validate(); err != nil {
		return fmt.Errorf("%w: range end: %v", ErrInvalidAvailability, err)
	}
	if !r.Start.IsBefore(r.End) {
		return fmt.Errorf("%w: range %s-%s: start must be before end", ErrInvalidAvailability, r.Start, r.End)
	}
	return nil
}

// WeekdayKeys are the canonical Weekly map keys, Sunday first.
var WeekdayKeys = []string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// WeekdayKey returns the Weekly map key for a calendar date.
func WeekdayKey(date time.Time) string {
	return strings.ToLower(date.Weekday().String())
}

// Availability is the per-artist source of bookable hours: a recurring
// weekly template plus date-keyed exceptions. An exception present with an
// empty range list closes the whole day; an absent exception falls back to
// the weekly template.
type Availability struct {
	ArtistID      int64
	Timezone      string // IANA zone name; wall-clock values are local to it
	SlotMinutes   int    // booking granularity
	BufferMinutes int    // enforced idle gap between consecutive bookings
	Weekly        map[string][]TimeRange
	Exceptions    map[string][]TimeRange // keyed by YYYY-MM-DD

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate enforces every structural invariant. Invalid input is rejected,
// never corrected, so a caller cannot silently persist inconsistent hours.
func (a *Availability) Validate() error {
	if a.ArtistID <= 0 {
		return fmt.Errorf("%w: artistID must be positive", ErrInvalidAvailability)
	}
	if a.SlotMinutes < MinSlotMinutes || a.SlotMinutes > MaxSlotMinutes {
		return fmt.Errorf("%w: slotMinutes %d outside [%d, %d]",
			ErrInvalidAvailability, a.SlotMinutes, MinSlotMinutes, MaxSlotMinutes)
	}
	if a.BufferMinutes < MinBufferMinutes || a.BufferMinutes > MaxBufferMinutes {
		return fmt.Errorf("%w: bufferMinutes %d outside [%d, %d]",
			ErrInvalidAvailability, a.BufferMinutes, MinBufferMinutes, MaxBufferMinutes)
	}
	if _, err := time.LoadLocation(a.Timezone); err != nil {
		return fmt.Errorf("%w: timezone %q does not resolve", ErrInvalidAvailability, a.Timezone)
	}

	for day, ranges := range a.Weekly {
		if !isWeekdayKey(day) {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidAvailability, day)
		}
		if err := validateRangeList(day, ranges); err != nil {
			return err
		}
	}

	for date, ranges := range a.Exceptions {
		if _, err := time.Parse(DateFormat, date); err != nil {
			return fmt.Errorf("%w: exception date %q is not YYYY-MM-DD", ErrInvalidAvailability, date)
		}
		if err := validateRangeList(date, ranges); err != nil {
			return err
		}
	}

	return nil
}

// validateRangeList enforces the sorted/non-overlapping invariant on one
// weekday or exception list.
func validateRangeList(key string, ranges []TimeRange) error {
	for i, r := range ranges {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if i > 0 {
			prev := ranges[i-1]
			if r.Start.IsBefore(prev.End) {
				return fmt.Errorf("%w: %s: ranges %s-%s and %s-%s overlap or are unsorted",
					ErrInvalidAvailability, key, prev.Start, prev.End, r.Start, r.End)
			}
		}
	}
	return nil
}

func isWeekdayKey(key string) bool {
	for _, k := range WeekdayKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Location resolves the artist's timezone. Validate guarantees this succeeds
// for persisted records.
func (a *Availability) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q does not resolve", ErrInvalidAvailability, a.Timezone)
	}
	return loc, nil
}

// OpenRangesOn resolves the bookable wall-clock ranges for a calendar date:
// an exception entry is used verbatim (possibly empty, meaning closed),
// otherwise the weekly template for that weekday applies.
func (a *Availability) OpenRangesOn(date time.Time) []TimeRange {
	if ranges, ok := a.Exceptions[date.Format(DateFormat)]; ok {
		return ranges
	}
	return a.Weekly[WeekdayKey(date)]
}

package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending           BookingStatus = "pending"
	StatusAccepted          BookingStatus = "accepted"
	StatusDenied            BookingStatus = "denied"
	StatusCompleted         BookingStatus = "completed"
	StatusCancelledByClient BookingStatus = "cancelled_by_client"
	StatusCancelledByArtist BookingStatus = "cancelled_by_artist"
	StatusNoShow            BookingStatus = "no_show"
)

// AppointmentType distinguishes free consultations from paid sessions
type AppointmentType string

const (
	TypeConsultation  AppointmentType = "consultation"
	TypeTattooSession AppointmentType = "tattoo_session"
)

// Booking represents an appointment between an artist and a client.
// StartAt/EndAt are absolute instants derived from the artist's timezone at
// reservation time; all overlap math works on them, never on wall-clock
// values.
type Booking struct {
	ID              int64
	ArtistID        int64
	ClientID        int64
	StartAt         time.Time
	EndAt           time.Time
	DurationMinutes int
	AppointmentType AppointmentType
	Status          BookingStatus

	PriceCents           int64
	DepositRequiredCents int64
	DepositPaidCents     int64

	// Deposit policy snapshot taken at reservation time, so later policy
	// edits never change the terms of an existing booking.
	DepositNonRefundable bool
	CutoffHours          int

	ChargeReference *string
	Note            *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Occupies reports whether the booking reserves calendar time.
func (b *Booking) Occupies() bool {
	for _, s := range OccupyingStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the booking can never change state again.
func (b *Booking) IsTerminal() bool {
	for _, s := range TerminalStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// OverlapsBuffered reports whether [start, end) intersects the booking's
// interval expanded by buffer on both sides. Touching endpoints do not
// overlap: a booking ending exactly when the window starts is fine.
func (b *Booking) OverlapsBuffered(start, end time.Time, buffer time.Duration) bool {
	bufferedStart := b.StartAt.Add(-buffer)
	bufferedEnd := b.EndAt.Add(buffer)
	return start.Before(bufferedEnd) && end.After(bufferedStart)
}

// DepositOutstanding reports whether a required deposit has not been fully
// charged yet.
func (b *Booking) DepositOutstanding() bool {
	return b.DepositRequiredCents > b.DepositPaidCents
}

// ArtistBookingsFilter narrows booking queries for one artist.
type ArtistBookingsFilter struct {
	ArtistID        int64          // Required
	From            *time.Time     // Window start, inclusive (nil = unbounded)
	To              *time.Time     // Window end, exclusive (nil = unbounded)
	Status          *BookingStatus // Exact status (nil = any)
	OccupyingOnly   bool           // Restrict to statuses that reserve calendar time
	IncludeTerminal bool           // Include denied/cancelled/completed/no_show rows
}

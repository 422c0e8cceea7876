package domain

// Business validation constants
const (
	MinSlotMinutes   = 5
	MaxSlotMinutes   = 240 // 4 hours
	MinBufferMinutes = 0
	MaxBufferMinutes = 240

	MinCutoffHours = 0
	MaxCutoffHours = 24 * 30 // 30 days

	MaxNoteLength               = 500
	MaxCancellationReasonLength = 500

	MaxSessionMinutes = 12 * 60 // longest bookable appointment
)

// Default configuration values used when an artist has not tuned anything
const (
	DefaultSlotMinutes   = 30
	DefaultBufferMinutes = 0
	DefaultCutoffHours   = 0
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OccupyingStatuses lists the booking statuses that reserve calendar time.
// Only these participate in overlap checks during slot generation and
// reservation.
var OccupyingStatuses = []BookingStatus{
	StatusPending,
	StatusAccepted,
}

// TerminalStatuses lists the statuses a booking can never leave.
var TerminalStatuses = []BookingStatus{
	StatusDenied,
	StatusCompleted,
	StatusCancelledByClient,
	StatusCancelledByArtist,
	StatusNoShow,
}

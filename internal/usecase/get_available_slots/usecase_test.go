package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkmatch/booking-service/internal/domain"
	availabilityRepo "github.com/inkmatch/booking-service/internal/infra/storage/availability"
	policyRepo "github.com/inkmatch/booking-service/internal/infra/storage/policy"
)

type fakeAvailabilityRepo struct {
	av *domain.Availability
}

func (f *fakeAvailabilityRepo) Get(_ context.Context, _ int64) (*domain.Availability, error) {
	if f.av == nil {
		return nil, availabilityRepo.ErrAvailabilityNotFound
	}
	return f.av, nil
}

type fakePolicyRepo struct {
	policy *domain.DepositPolicy
}

func (f *fakePolicyRepo) Get(_ context.Context, _ int64) (*domain.DepositPolicy, error) {
	if f.policy == nil {
		return nil, policyRepo.ErrPolicyNotFound
	}
	return f.policy, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByArtistWithFilter(_ context.Context, _ domain.ArtistBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testAvailability() *domain.Availability {
	return &domain.Availability{
		ArtistID:      1,
		Timezone:      "America/New_York",
		SlotMinutes:   30,
		BufferMinutes: 15,
		Weekly: map[string][]domain.TimeRange{
			"monday": {{Start: "10:00", End: "18:00"}},
		},
		Exceptions: map[string][]domain.TimeRange{
			"2026-09-21": {},
		},
	}
}

func newTestUseCase(av *domain.Availability, policy *domain.DepositPolicy, bookings []*domain.Booking, now time.Time) *UseCase {
	return NewUseCase(
		&fakeAvailabilityRepo{av: av},
		&fakePolicyRepo{policy: policy},
		&fakeBookingRepo{bookings: bookings},
		nopLogger{},
	).WithTimeProvider(&fixedClock{now: now})
}

// 2026-09-14 is a Monday.
var testDate = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

func TestExecute_FullOpenDay(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(testAvailability(), nil, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{ArtistID: 1, Date: testDate, DurationMinutes: 60})
	require.NoError(t, err)

	// 10:00 through 17:00 inclusive on a 30-minute grid.
	require.Len(t, resp.Slots, 15)
	assert.Equal(t, "10:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "17:00", resp.Slots[len(resp.Slots)-1].StartTime.String())
	assert.Equal(t, "America/New_York", resp.Timezone)

	for _, slot := range resp.Slots {
		assert.Equal(t, 60*time.Minute, slot.EndAt.Sub(slot.StartAt))
	}
}

func TestExecute_BufferBlocksNeighboringSlots(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Accepted booking 10:00-11:00 with a 15-minute buffer occupies
	// 09:45-11:15, so 11:00 is blocked but 11:30 is free.
	booked := &domain.Booking{
		ID:       7,
		ArtistID: 1,
		Status:   domain.StatusAccepted,
		StartAt:  time.Date(2026, 9, 14, 10, 0, 0, 0, loc),
		EndAt:    time.Date(2026, 9, 14, 11, 0, 0, 0, loc),
	}

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(testAvailability(), nil, []*domain.Booking{booked}, now)

	resp, err := uc.Execute(context.Background(), &Request{ArtistID: 1, Date: testDate, DurationMinutes: 60})
	require.NoError(t, err)

	starts := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		starts = append(starts, slot.StartTime.String())
	}

	assert.NotContains(t, starts, "10:00")
	assert.NotContains(t, starts, "10:30")
	assert.NotContains(t, starts, "11:00")
	assert.Contains(t, starts, "11:30")
	// A slot ending exactly at the buffered start would also be fine, but
	// every earlier candidate here runs into the buffered window.
	assert.Equal(t, "11:30", starts[0])
}

func TestExecute_CutoffHidesNearSlots(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	policy := &domain.DepositPolicy{
		ArtistID:    1,
		Mode:        domain.DepositModeFlat,
		AmountCents: 5000,
		CutoffHours: 48,
	}

	// 48 hours before 14:00 local on the 14th: slots at 14:00 and later
	// survive, everything earlier is inside the cutoff.
	now := time.Date(2026, 9, 12, 14, 0, 0, 0, loc)
	uc := newTestUseCase(testAvailability(), policy, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{ArtistID: 1, Date: testDate, DurationMinutes: 60})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, "14:00", resp.Slots[0].StartTime.String())
}

func TestExecute_ExceptionClosesDay(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(testAvailability(), nil, nil, now)

	// 2026-09-21 is a Monday too, but the empty exception closes it.
	closed := time.Date(2026, 9, 21, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{ArtistID: 1, Date: closed, DurationMinutes: 60})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_DurationMustMatchGranularity(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(testAvailability(), nil, nil, now)

	_, err := uc.Execute(context.Background(), &Request{ArtistID: 1, Date: testDate, DurationMinutes: 45})
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = uc.Execute(context.Background(), &Request{ArtistID: 1, Date: testDate, DurationMinutes: 0})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestExecute_AvailabilityNotFound(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(nil, nil, nil, now)

	_, err := uc.Execute(context.Background(), &Request{ArtistID: 1, Date: testDate, DurationMinutes: 60})
	assert.ErrorIs(t, err, ErrAvailabilityNotFound)
}

func TestExecute_DurationLongerThanAnyRange(t *testing.T) {
	av := testAvailability()
	av.Weekly["monday"] = []domain.TimeRange{{Start: "10:00", End: "11:00"}}

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(av, nil, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{ArtistID: 1, Date: testDate, DurationMinutes: 120})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

package create_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkmatch/booking-service/internal/domain"
	"github.com/inkmatch/booking-service/internal/integrations/paymentservice"
	availabilityRepo "github.com/inkmatch/booking-service/internal/infra/storage/availability"
	policyRepo "github.com/inkmatch/booking-service/internal/infra/storage/policy"
	"github.com/inkmatch/booking-service/pkg/ptr"
)

// serialTxManager runs the critical section under a mutex, giving the
// in-memory store the same one-writer-at-a-time guarantee a SERIALIZABLE
// transaction gives the real repository.
type serialTxManager struct {
	mu sync.Mutex
}

func (m *serialTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type memBookingStore struct {
	mu       sync.Mutex
	nextID   int64
	bookings []*domain.Booking

	paidID        int64
	paidReference string
	setPaidErr    error
}

func (s *memBookingStore) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	b := *booking
	b.ID = s.nextID
	s.bookings = append(s.bookings, &b)
	out := b
	return &out, nil
}

func (s *memBookingStore) GetByArtistWithFilter(_ context.Context, filter domain.ArtistBookingsFilter) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := make([]*domain.Booking, 0)
	for _, b := range s.bookings {
		if b.ArtistID != filter.ArtistID {
			continue
		}
		if filter.OccupyingOnly && !b.Occupies() {
			continue
		}
		if filter.From != nil && !b.EndAt.After(*filter.From) {
			continue
		}
		if filter.To != nil && !b.StartAt.Before(*filter.To) {
			continue
		}
		found = append(found, b)
	}
	return found, nil
}

func (s *memBookingStore) SetDepositPaid(_ context.Context, id int64, paidCents int64, reference string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setPaidErr != nil {
		return s.setPaidErr
	}
	s.paidID = id
	s.paidReference = reference
	for _, b := range s.bookings {
		if b.ID == id {
			b.DepositPaidCents = paidCents
			b.ChargeReference = ptr.Ptr(reference)
		}
	}
	return nil
}

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

type fakePaymentClient struct {
	mu      sync.Mutex
	charges []int64
	err     error
}

func (f *fakePaymentClient) ChargeDeposit(_ context.Context, bookingID int64, _ int64) (*paymentservice.ChargeResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.charges = append(f.charges, bookingID)
	return &paymentservice.ChargeResult{Success: true, Reference: "ch_test"}, nil
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
	}
}

func testPolicy() *domain.DepositPolicy {
	return &domain.DepositPolicy{
		ArtistID:      1,
		Mode:          domain.DepositModePercent,
		Percent:       0.25,
		MinCents:      1000,
		NonRefundable: true,
		CutoffHours:   24,
	}
}

type fixture struct {
	uc      *UseCase
	store   *memBookingStore
	payment *fakePaymentClient
}

func newFixture(av *domain.Availability, policy *domain.DepositPolicy, now time.Time) *fixture {
	store := &memBookingStore{}
	payment := &fakePaymentClient{}
	uc := NewUseCase(
		store,
		&fakeAvailabilityRepo{av: av},
		&fakePolicyRepo{policy: policy},
		payment,
		&serialTxManager{},
		nopLogger{},
	).WithTimeProvider(&fixedClock{now: now})
	return &fixture{uc: uc, store: store, payment: payment}
}

// 2026-09-14 is a Monday.
var (
	testDate = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	farAway  = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
)

func sessionRequest() *Request {
	return &Request{
		ArtistID:        1,
		ClientID:        20,
		Date:            testDate,
		StartTime:       "10:00",
		DurationMinutes: 60,
		AppointmentType: domain.TypeTattooSession,
		PriceCents:      20000,
	}
}

func TestExecute_SessionWithDeposit(t *testing.T) {
	f := newFixture(testAvailability(), testPolicy(), farAway)

	resp, err := f.uc.Execute(context.Background(), sessionRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, resp.Status)
	assert.Equal(t, int64(20000), resp.PriceCents)
	assert.Equal(t, int64(5000), resp.DepositRequiredCents)
	assert.True(t, resp.DepositNonRefundable)
	assert.Equal(t, 24, resp.CutoffHours)

	assert.True(t, resp.Payment.Required)
	assert.True(t, resp.Payment.Charged)
	assert.Equal(t, int64(5000), resp.Payment.AmountCents)
	require.NotNil(t, resp.Payment.ChargeReference)
	assert.Equal(t, "ch_test", *resp.Payment.ChargeReference)

	require.Len(t, f.store.bookings, 1)
	assert.Equal(t, int64(5000), f.store.bookings[0].DepositPaidCents)

	loc, _ := time.LoadLocation("America/New_York")
	assert.Equal(t, time.Date(2026, 9, 14, 10, 0, 0, 0, loc).UTC(), resp.StartAt.UTC())
	assert.Equal(t, time.Date(2026, 9, 14, 11, 0, 0, 0, loc).UTC(), resp.EndAt.UTC())
}

func TestExecute_ConsultationNeedsNoPolicyAndNoCharge(t *testing.T) {
	f := newFixture(testAvailability(), nil, farAway)

	req := sessionRequest()
	req.AppointmentType = domain.TypeConsultation
	req.PriceCents = 0

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(0), resp.DepositRequiredCents)
	assert.False(t, resp.Payment.Required)
	assert.Empty(t, f.payment.charges)
}

func TestExecute_PaidSessionWithoutPolicy(t *testing.T) {
	f := newFixture(testAvailability(), nil, farAway)

	_, err := f.uc.Execute(context.Background(), sessionRequest())
	assert.ErrorIs(t, err, ErrPolicyNotConfigured)
	assert.Empty(t, f.store.bookings)
}

func TestExecute_SlotConflict(t *testing.T) {
	f := newFixture(testAvailability(), testPolicy(), farAway)

	first := sessionRequest()
	_, err := f.uc.Execute(context.Background(), first)
	require.NoError(t, err)

	// Same window again.
	_, err = f.uc.Execute(context.Background(), sessionRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)

	// Adjacent slot is still inside the 15-minute buffer around 10:00-11:00.
	buffered := sessionRequest()
	buffered.StartTime = "11:00"
	_, err = f.uc.Execute(context.Background(), buffered)
	assert.ErrorIs(t, err, ErrSlotConflict)

	// 11:30 clears the buffered window.
	free := sessionRequest()
	free.StartTime = "11:30"
	_, err = f.uc.Execute(context.Background(), free)
	assert.NoError(t, err)

	require.Len(t, f.store.bookings, 2)
}

func TestExecute_SlotMustLieOnGrid(t *testing.T) {
	f := newFixture(testAvailability(), testPolicy(), farAway)

	offGrid := sessionRequest()
	offGrid.StartTime = "10:15"
	_, err := f.uc.Execute(context.Background(), offGrid)
	assert.ErrorIs(t, err, ErrInvalidSlot)

	outside := sessionRequest()
	outside.StartTime = "17:30"
	_, err = f.uc.Execute(context.Background(), outside)
	assert.ErrorIs(t, err, ErrInvalidSlot)

	badDuration := sessionRequest()
	badDuration.DurationMinutes = 45
	_, err = f.uc.Execute(context.Background(), badDuration)
	assert.ErrorIs(t, err, ErrInvalidSlot)

	assert.Empty(t, f.store.bookings)
}

func TestExecute_CutoffViolation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 23 hours before the slot start with a 24-hour cutoff.
	now := time.Date(2026, 9, 13, 11, 0, 0, 0, loc)
	f := newFixture(testAvailability(), testPolicy(), now)

	_, err = f.uc.Execute(context.Background(), sessionRequest())
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_AvailabilityNotFound(t *testing.T) {
	f := newFixture(nil, testPolicy(), farAway)

	_, err := f.uc.Execute(context.Background(), sessionRequest())
	assert.ErrorIs(t, err, ErrAvailabilityNotFound)
}

func TestExecute_ChargeFailureLeavesBookingPending(t *testing.T) {
	f := newFixture(testAvailability(), testPolicy(), farAway)
	f.payment.err = errors.New("processor unavailable")

	resp, err := f.uc.Execute(context.Background(), sessionRequest())
	require.NoError(t, err)

	assert.True(t, resp.Payment.Required)
	assert.False(t, resp.Payment.Charged)
	require.NotNil(t, resp.Payment.FailureReason)
	assert.Contains(t, *resp.Payment.FailureReason, "processor unavailable")

	require.Len(t, f.store.bookings, 1)
	assert.Equal(t, domain.StatusPending, f.store.bookings[0].Status)
	assert.Equal(t, int64(0), f.store.bookings[0].DepositPaidCents)
}

func TestExecute_ValidationRejections(t *testing.T) {
	f := newFixture(testAvailability(), testPolicy(), farAway)

	pricedConsultation := sessionRequest()
	pricedConsultation.AppointmentType = domain.TypeConsultation
	_, err := f.uc.Execute(context.Background(), pricedConsultation)
	assert.ErrorIs(t, err, ErrInvalidInput)

	freeSession := sessionRequest()
	freeSession.PriceCents = 0
	_, err = f.uc.Execute(context.Background(), freeSession)
	assert.ErrorIs(t, err, ErrInvalidInput)

	badType := sessionRequest()
	badType.AppointmentType = "walk_in"
	_, err = f.uc.Execute(context.Background(), badType)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ConcurrentReservationsSameSlot(t *testing.T) {
	f := newFixture(testAvailability(), testPolicy(), farAway)

	const n = 8
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(clientID int64) {
			defer wg.Done()
			req := sessionRequest()
			req.ClientID = clientID
			_, err := f.uc.Execute(context.Background(), req)
			errs <- err
		}(int64(100 + i))
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	conflicted := 0
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrSlotConflict):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, n-1, conflicted)
	assert.Len(t, f.store.bookings, 1)
}

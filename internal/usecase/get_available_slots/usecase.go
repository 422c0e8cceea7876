package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/inkmatch/booking-service/internal/domain"
	availabilityRepo "github.com/inkmatch/booking-service/internal/infra/storage/availability"
	policyRepo "github.com/inkmatch/booking-service/internal/infra/storage/policy"
	"github.com/inkmatch/booking-service/pkg/ptr"
)

// UseCase lists the bookable slots of an artist for one calendar date.
// It reads already-persisted state only; staleness is resolved at
// reservation time, not here.
type UseCase struct {
	availabilityRepo AvailabilityRepository
	policyRepo       PolicyRepository
	bookingRepo      BookingRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase creates the use case with the production clock.
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	policyRepo PolicyRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		policyRepo:       policyRepo,
		bookingRepo:      bookingRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// WithTimeProvider overrides the clock; used by tests.
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute runs the slot generation pipeline.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: artist=%d, date=%s, duration=%d",
		req.ArtistID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	av, err := uc.availabilityRepo.Get(ctx, req.ArtistID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			uc.logger.Warn("GetAvailableSlots: availability for artist=%d not found", req.ArtistID)
			return nil, ErrAvailabilityNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get availability for artist=%d: %v", req.ArtistID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	if err := validateDuration(req.DurationMinutes, av.SlotMinutes); err != nil {
		uc.logger.Warn("GetAvailableSlots: duration validation failed: %v", err)
		return nil, err
	}

	loc, err := av.Location()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: bad timezone for artist=%d: %v", req.ArtistID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// Cutoff comes from the deposit policy; an artist without one has no
	// lead-time requirement.
	cutoffHours := 0
	policy, err := uc.policyRepo.Get(ctx, req.ArtistID)
	if err != nil && !errors.Is(err, policyRepo.ErrPolicyNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get deposit policy for artist=%d: %v", req.ArtistID, err)
		return nil, fmt.Errorf("%w: failed to get deposit policy: %v", ErrInternal, err)
	}
	if policy != nil {
		cutoffHours = policy.CutoffHours
	}

	candidates, err := generateSlots(av, req.Date, req.DurationMinutes, loc)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// Fetch every occupying booking whose buffered interval can reach into
	// this date.
	buffer := time.Duration(av.BufferMinutes) * time.Minute
	y, m, d := req.Date.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	bookings, err := uc.bookingRepo.GetByArtistWithFilter(ctx, domain.ArtistBookingsFilter{
		ArtistID:      req.ArtistID,
		From:          ptr.Ptr(dayStart.Add(-buffer)),
		To:            ptr.Ptr(dayEnd.Add(buffer)),
		OccupyingOnly: true,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for artist=%d: %v", req.ArtistID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	slots := filterSlots(candidates, bookings, av.BufferMinutes, now, cutoffHours)

	uc.logger.Info("GetAvailableSlots: %d slots for artist=%d on %s (from %d candidates, %d occupying bookings)",
		len(slots), req.ArtistID, req.Date.Format(domain.DateFormat), len(candidates), len(bookings))

	return &Response{
		ArtistID:        req.ArtistID,
		Date:            req.Date,
		Timezone:        av.Timezone,
		DurationMinutes: req.DurationMinutes,
		Slots:           slots,
	}, nil
}

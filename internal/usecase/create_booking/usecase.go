package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/inkmatch/booking-service/internal/domain"
	availabilityRepo "github.com/inkmatch/booking-service/internal/infra/storage/availability"
	policyRepo "github.com/inkmatch/booking-service/internal/infra/storage/policy"
	"github.com/inkmatch/booking-service/pkg/ptr"
	"github.com/inkmatch/booking-service/pkg/simpletxmanager"
	"github.com/inkmatch/booking-service/pkg/txmanager"
)

// UseCase is the reservation coordinator. The whole re-validate sequence —
// availability lookup, grid check, cutoff check, overlap check against
// freshly locked bookings, insert — runs inside one SERIALIZABLE
// transaction, so two concurrent reservations for overlapping slots of the
// same artist can never both commit. A slot list handed to the client
// earlier is never trusted.
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	policyRepo       PolicyRepository
	paymentClient    PaymentClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase creates the use case with the production clock.
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	policyRepo PolicyRepository,
	paymentClient PaymentClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		policyRepo:       policyRepo,
		paymentClient:    paymentClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// WithTimeProvider overrides the clock; used by tests.
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute reserves a slot and, when one is required, charges the deposit.
// Nothing persists unless the full check-then-insert sequence succeeds; a
// failed deposit charge leaves the pending booking in place and is reported
// in the response, never swallowed.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: artist=%d, client=%d, date=%s, time=%s, duration=%d, type=%s",
		req.ArtistID, req.ClientID, req.Date.Format(domain.DateFormat), req.StartTime,
		req.DurationMinutes, req.AppointmentType)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		av, err := uc.availabilityRepo.Get(txCtx, req.ArtistID)
		if err != nil {
			if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
				uc.logger.Warn("CreateBooking: availability for artist=%d not found", req.ArtistID)
				return ErrAvailabilityNotFound
			}
			uc.logger.Error("CreateBooking: failed to get availability for artist=%d: %v", req.ArtistID, err)
			return fmt.Errorf("%w: failed to get availability: %w", ErrInternal, err)
		}

		if req.DurationMinutes%av.SlotMinutes != 0 {
			uc.logger.Warn("CreateBooking: duration %d not a multiple of granularity %d",
				req.DurationMinutes, av.SlotMinutes)
			return fmt.Errorf("%w: durationMinutes %d is not a multiple of slot granularity %d",
				ErrInvalidSlot, req.DurationMinutes, av.SlotMinutes)
		}

		loc, err := av.Location()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		// The one wall-clock -> absolute conversion; everything below is
		// absolute-time math.
		startAt, err := req.StartTime.At(req.Date, loc)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSlot, err)
		}
		endAt := startAt.Add(time.Duration(req.DurationMinutes) * time.Minute)

		if err := validateSlotOnGrid(av, req.Date, startAt, endAt, loc); err != nil {
			uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
			return err
		}

		// Deposit policy: cutoff + amount. A missing policy only blocks
		// paid appointments.
		policy, err := uc.policyRepo.Get(txCtx, req.ArtistID)
		if err != nil && !errors.Is(err, policyRepo.ErrPolicyNotFound) {
			uc.logger.Error("CreateBooking: failed to get deposit policy for artist=%d: %v", req.ArtistID, err)
			return fmt.Errorf("%w: failed to get deposit policy: %w", ErrInternal, err)
		}

		cutoffHours := 0
		if policy != nil {
			cutoffHours = policy.CutoffHours
		}

		// A slot that was listable may have slid inside the cutoff window
		// since; re-check against the current instant.
		if startAt.Before(now.Add(time.Duration(cutoffHours) * time.Hour)) {
			uc.logger.Warn("CreateBooking: slot at %s violates cutoff of %d hours", startAt, cutoffHours)
			return fmt.Errorf("%w: must book at least %d hours in advance", ErrTooLateToBook, cutoffHours)
		}

		deposit, err := domain.ComputeDeposit(policy, req.PriceCents)
		if err != nil {
			if errors.Is(err, domain.ErrPolicyNotConfigured) {
				uc.logger.Warn("CreateBooking: deposit policy not configured for artist=%d", req.ArtistID)
				return fmt.Errorf("%w: %v", ErrPolicyNotConfigured, err)
			}
			uc.logger.Warn("CreateBooking: deposit computation failed: %v", err)
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		// Fresh occupying bookings, locked FOR UPDATE, covering every
		// interval whose buffered expansion can reach the requested window.
		buffer := time.Duration(av.BufferMinutes) * time.Minute
		bookings, err := uc.bookingRepo.GetByArtistWithFilter(txCtx, domain.ArtistBookingsFilter{
			ArtistID:      req.ArtistID,
			From:          ptr.Ptr(startAt.Add(-buffer)),
			To:            ptr.Ptr(endAt.Add(buffer)),
			OccupyingOnly: true,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings for artist=%d: %v", req.ArtistID, err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		if n := countOverlapping(startAt, endAt, av.BufferMinutes, bookings); n > 0 {
			uc.logger.Warn("CreateBooking: slot %s-%s conflicts with %d existing booking(s) for artist=%d",
				startAt, endAt, n, req.ArtistID)
			return fmt.Errorf("%w: %s-%s overlaps an existing booking", ErrSlotConflict, startAt, endAt)
		}

		booking := &domain.Booking{
			ArtistID:             req.ArtistID,
			ClientID:             req.ClientID,
			StartAt:              startAt,
			EndAt:                endAt,
			DurationMinutes:      req.DurationMinutes,
			AppointmentType:      req.AppointmentType,
			Status:               domain.StatusPending,
			PriceCents:           req.PriceCents,
			DepositRequiredCents: deposit.AmountCents,
			DepositPaidCents:     0,
			DepositNonRefundable: deposit.NonRefundable,
			CutoffHours:          cutoffHours,
			Note:                 req.Note,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// A serialization failure means another reservation won the race;
		// surface it as the retryable conflict the caller already handles.
		if errors.Is(err, txmanager.ErrSerializationFailure) || errors.Is(err, simpletxmanager.ErrSerializationFailure) {
			uc.logger.Warn("CreateBooking: serialization conflict for artist=%d: %v", req.ArtistID, err)
			return nil, fmt.Errorf("%w: concurrent reservation detected", ErrSlotConflict)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d status=%s deposit_required=%d",
		result.ID, result.Status, result.DepositRequiredCents)

	payment := uc.chargeDeposit(ctx, result)

	return responseFromBooking(result, payment), nil
}

// chargeDeposit runs after the booking row is committed. Failure is an
// outcome, not an error: the booking stays pending and the caller decides
// whether to retry the charge or cancel.
func (uc *UseCase) chargeDeposit(ctx context.Context, booking *domain.Booking) PaymentOutcome {
	if booking.DepositRequiredCents == 0 {
		return PaymentOutcome{Required: false}
	}

	outcome := PaymentOutcome{
		Required:    true,
		AmountCents: booking.DepositRequiredCents,
	}

	chargeResult, err := uc.paymentClient.ChargeDeposit(ctx, booking.ID, booking.DepositRequiredCents)
	if err != nil {
		uc.logger.Error("CreateBooking: deposit charge failed for booking id=%d: %v", booking.ID, err)
		outcome.FailureReason = ptr.Ptr(err.Error())
		return outcome
	}

	if err := uc.bookingRepo.SetDepositPaid(ctx, booking.ID, booking.DepositRequiredCents, chargeResult.Reference); err != nil {
		// The processor has the money but the row does not know it yet;
		// report the charge as made so the reference is not lost.
		uc.logger.Error("CreateBooking: failed to record deposit payment for booking id=%d: %v", booking.ID, err)
	} else {
		booking.DepositPaidCents = booking.DepositRequiredCents
	}

	outcome.Charged = true
	outcome.ChargeReference = ptr.Ptr(chargeResult.Reference)
	booking.ChargeReference = ptr.Ptr(chargeResult.Reference)

	uc.logger.Info("CreateBooking: deposit charged for booking id=%d amount=%d reference=%s",
		booking.ID, booking.DepositRequiredCents, chargeResult.Reference)

	return outcome
}

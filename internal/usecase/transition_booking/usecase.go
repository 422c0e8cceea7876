package transition_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/inkmatch/booking-service/internal/domain"
	bookingRepo "github.com/inkmatch/booking-service/internal/infra/storage/booking"
	"github.com/inkmatch/booking-service/pkg/ptr"
)

// UseCase drives the appointment state machine for HTTP actors. The rules
// themselves live in the domain package; this layer resolves the action to
// a target status, checks that the actor is a party to the booking, and
// runs the read-check-update inside one transaction. The read locks the
// booking row, so two concurrent transitions of the same booking serialize
// and the loser re-checks against the committed status, not the stale one.
type UseCase struct {
	bookingRepo   BookingRepository
	paymentClient PaymentClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase creates the use case with the production clock.
func NewUseCase(
	bookingRepo BookingRepository,
	paymentClient PaymentClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		paymentClient: paymentClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// WithTimeProvider overrides the clock; used by tests.
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute applies one transition. On an eligible cancellation or denial of
// a paid booking the deposit refund runs after the status change commits;
// refund failure never rolls the transition back.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TransitionBooking: id=%d, action=%s, actor=%d/%s",
		req.BookingID, req.Action, req.Actor.ID, req.Actor.Role)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("TransitionBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var booking *domain.Booking
	var refund RefundOutcome

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		b, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("TransitionBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("TransitionBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if err := checkParty(b, req.Actor); err != nil {
			uc.logger.Warn("TransitionBooking: actor=%d/%s is not a party to booking id=%d",
				req.Actor.ID, req.Actor.Role, req.BookingID)
			return err
		}

		target := resolveTarget(req.Action, req.Actor.Role)

		if err := domain.CanTransition(b, target, req.Actor, now); err != nil {
			uc.logger.Warn("TransitionBooking: rejected: %v", err)
			return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}

		// Eligibility is decided at the cancellation instant, against the
		// deposit terms snapshotted when the booking was created.
		refund = refundOutcome(b, target, now)

		switch target {
		case domain.StatusCancelledByClient, domain.StatusCancelledByArtist:
			reason := ""
			if req.Reason != nil {
				reason = *req.Reason
			}
			if err := uc.bookingRepo.Cancel(txCtx, b.ID, target, reason); err != nil {
				uc.logger.Error("TransitionBooking: failed to cancel booking id=%d: %v", b.ID, err)
				return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
			}
			b.CancellationReason = req.Reason
			b.CancelledAt = ptr.Ptr(now)
		default:
			if err := uc.bookingRepo.UpdateStatus(txCtx, b.ID, target); err != nil {
				uc.logger.Error("TransitionBooking: failed to update booking id=%d: %v", b.ID, err)
				return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
			}
		}

		b.Status = target
		b.UpdatedAt = now
		booking = b
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("TransitionBooking: booking id=%d moved to %s", booking.ID, booking.Status)

	uc.refundDeposit(ctx, booking, &refund)

	return responseFromBooking(booking, refund), nil
}

// resolveTarget maps the caller-facing action to a concrete status. Cancel
// takes the actor's role; the other actions are unambiguous.
func resolveTarget(action Action, role domain.Role) domain.BookingStatus {
	switch action {
	case ActionAccept:
		return domain.StatusAccepted
	case ActionDeny:
		return domain.StatusDenied
	case ActionComplete:
		return domain.StatusCompleted
	case ActionCancel:
		if role == domain.RoleArtist {
			return domain.StatusCancelledByArtist
		}
		return domain.StatusCancelledByClient
	default:
		// validateRequest rejects unknown actions before this runs.
		return domain.BookingStatus(action)
	}
}

// checkParty verifies the actor actually belongs to the booking. Role rules
// are the domain's job; identity is checked here.
func checkParty(b *domain.Booking, actor domain.Actor) error {
	switch actor.Role {
	case domain.RoleClient:
		if actor.ID != b.ClientID {
			return ErrForbidden
		}
	case domain.RoleArtist:
		if actor.ID != b.ArtistID {
			return ErrForbidden
		}
	default:
		return ErrForbidden
	}
	return nil
}

// refundOutcome decides whether the transition releases the paid deposit.
// Denial of a pending booking always refunds: the artist never confirmed,
// so the client cannot forfeit. Cancellation refunds per the snapshotted
// policy terms. Accept and complete never touch the deposit.
func refundOutcome(b *domain.Booking, target domain.BookingStatus, now time.Time) RefundOutcome {
	switch target {
	case domain.StatusDenied:
		return RefundOutcome{Eligible: true, AmountCents: b.DepositPaidCents}
	case domain.StatusCancelledByClient, domain.StatusCancelledByArtist:
		return RefundOutcome{Eligible: domain.RefundEligible(b, now), AmountCents: b.DepositPaidCents}
	default:
		return RefundOutcome{}
	}
}

// refundDeposit runs after the transition commits. Best effort: a refund
// failure is logged and reported in the response for out-of-band retry.
func (uc *UseCase) refundDeposit(ctx context.Context, b *domain.Booking, refund *RefundOutcome) {
	if !refund.Eligible || refund.AmountCents == 0 {
		return
	}

	refund.Attempted = true

	result, err := uc.paymentClient.Refund(ctx, b.ID, refund.AmountCents)
	if err != nil {
		uc.logger.Error("TransitionBooking: refund failed for booking id=%d amount=%d: %v",
			b.ID, refund.AmountCents, err)
		refund.FailureReason = ptr.Ptr(err.Error())
		return
	}

	refund.Refunded = true
	refund.Reference = ptr.Ptr(result.Reference)

	uc.logger.Info("TransitionBooking: refunded %d cents for booking id=%d reference=%s",
		refund.AmountCents, b.ID, result.Reference)
}

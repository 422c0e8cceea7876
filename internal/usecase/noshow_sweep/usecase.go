package noshow_sweep

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrInternal is returned when a sweep run fails.
var ErrInternal = errors.New("noshow_sweep: internal error")

// UseCase marks accepted bookings whose start passed more than the grace
// period ago as no_show. It is driven by a ticker in main, never by an
// HTTP caller; the grace period keeps an artist who is merely running a
// few minutes late from losing the appointment to the sweep.
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	gracePeriod  time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the sweep with the production clock.
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	gracePeriod time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		gracePeriod:  gracePeriod,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider overrides the clock; used by tests.
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute runs one sweep and returns the IDs it marked. The single UPDATE
// only matches accepted rows, so a booking transitioned by its artist
// between sweeps is left alone.
func (uc *UseCase) Execute(ctx context.Context) ([]int64, error) {
	cutoff := uc.timeProvider.Now().Add(-uc.gracePeriod)

	var marked []int64

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		ids, err := uc.bookingRepo.MarkNoShows(txCtx, cutoff)
		if err != nil {
			return fmt.Errorf("%w: failed to mark no-shows: %v", ErrInternal, err)
		}
		marked = ids
		return nil
	})
	if err != nil {
		uc.logger.Error("NoShowSweep: sweep failed: %v", err)
		return nil, err
	}

	if len(marked) > 0 {
		uc.logger.Info("NoShowSweep: marked %d booking(s) as no_show: %v", len(marked), marked)
	}

	return marked, nil
}

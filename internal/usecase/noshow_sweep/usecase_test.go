package noshow_sweep

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingRepo struct {
	gotCutoff time.Time
	ids       []int64
	err       error
}

func (f *fakeBookingRepo) MarkNoShows(_ context.Context, startedBefore time.Time) ([]int64, error) {
	f.gotCutoff = startedBefore
	return f.ids, f.err
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_CutoffIsNowMinusGrace(t *testing.T) {
	now := time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{ids: []int64{3, 7}}

	uc := NewUseCase(repo, passthroughTxManager{}, 30*time.Minute, nopLogger{}).
		WithTimeProvider(&fixedClock{now: now})

	marked, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, now.Add(-30*time.Minute), repo.gotCutoff)
	assert.Equal(t, []int64{3, 7}, marked)
}

func TestExecute_NothingToMark(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, passthroughTxManager{}, 30*time.Minute, nopLogger{}).
		WithTimeProvider(&fixedClock{now: time.Now()})

	marked, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, marked)
}

func TestExecute_RepositoryFailure(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection reset")}
	uc := NewUseCase(repo, passthroughTxManager{}, 30*time.Minute, nopLogger{}).
		WithTimeProvider(&fixedClock{now: time.Now()})

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkmatch/booking-service/internal/domain"
	availabilityRepo "github.com/inkmatch/booking-service/internal/infra/storage/availability"
	"github.com/inkmatch/booking-service/internal/service/availability/models"
)

type fakeAvailabilityRepo struct {
	stored *domain.Availability
}

func (f *fakeAvailabilityRepo) Get(_ context.Context, artistID int64) (*domain.Availability, error) {
	if f.stored == nil || f.stored.ArtistID != artistID {
		return nil, availabilityRepo.ErrAvailabilityNotFound
	}
	return f.stored, nil
}

func (f *fakeAvailabilityRepo) Upsert(_ context.Context, av *domain.Availability) (*domain.Availability, error) {
	f.stored = av
	return av, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func upsertRequest() *models.UpsertAvailabilityRequest {
	return &models.UpsertAvailabilityRequest{
		ArtistID:      1,
		UserID:        1,
		Timezone:      "America/New_York",
		SlotMinutes:   30,
		BufferMinutes: 15,
		Weekly: map[string][]domain.TimeRange{
			"monday":  {{Start: "10:00", End: "18:00"}},
			"tuesday": {{Start: "10:00", End: "13:00"}, {Start: "14:00", End: "18:00"}},
		},
		Exceptions: map[string][]domain.TimeRange{
			"2026-09-21": {},
		},
	}
}

func TestUpsertThenGetRoundTrips(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := NewService(repo, nopLogger{})

	req := upsertRequest()
	written, err := svc.Upsert(context.Background(), req)
	require.NoError(t, err)

	read, err := svc.Get(context.Background(), req.ArtistID)
	require.NoError(t, err)

	assert.Equal(t, written, read)
	assert.Equal(t, req.Timezone, read.Timezone)
	assert.Equal(t, req.SlotMinutes, read.SlotMinutes)
	assert.Equal(t, req.BufferMinutes, read.BufferMinutes)
	assert.Equal(t, req.Weekly, read.Weekly)
	assert.Equal(t, req.Exceptions, read.Exceptions)
}

func TestUpsertOnlyByOwner(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := NewService(repo, nopLogger{})

	req := upsertRequest()
	req.UserID = 2

	_, err := svc.Upsert(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.stored)
}

func TestUpsertRejectsInvalidSchedule(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := NewService(repo, nopLogger{})

	tests := []struct {
		name   string
		mutate func(*models.UpsertAvailabilityRequest)
	}{
		{"bad timezone", func(r *models.UpsertAvailabilityRequest) { r.Timezone = "Mars/Olympus" }},
		{"zero granularity", func(r *models.UpsertAvailabilityRequest) { r.SlotMinutes = 0 }},
		{"unknown weekday", func(r *models.UpsertAvailabilityRequest) {
			r.Weekly["funday"] = []domain.TimeRange{{Start: "10:00", End: "12:00"}}
		}},
		{"inverted range", func(r *models.UpsertAvailabilityRequest) {
			r.Weekly["monday"] = []domain.TimeRange{{Start: "18:00", End: "10:00"}}
		}},
		{"overlapping ranges", func(r *models.UpsertAvailabilityRequest) {
			r.Weekly["monday"] = []domain.TimeRange{
				{Start: "10:00", End: "14:00"},
				{Start: "13:00", End: "18:00"},
			}
		}},
		{"bad exception date", func(r *models.UpsertAvailabilityRequest) {
			r.Exceptions["21-09-2026"] = nil
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := upsertRequest()
			tt.mutate(req)
			_, err := svc.Upsert(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	assert.Nil(t, repo.stored)
}

func TestGetUnknownArtist(t *testing.T) {
	svc := NewService(&fakeAvailabilityRepo{}, nopLogger{})

	_, err := svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrAvailabilityNotFound)
}

package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/inkmatch/booking-service/internal/domain"
	availabilityRepo "github.com/inkmatch/booking-service/internal/infra/storage/availability"
	"github.com/inkmatch/booking-service/internal/service/availability/models"
)

// Service manages per-artist availability records.
type Service struct {
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewService creates the availability service.
func NewService(availabilityRepo AvailabilityRepository, logger Logger) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// Get returns the artist's stored schedule. Public: clients read it to
// render the booking calendar.
func (s *Service) Get(ctx context.Context, artistID int64) (*models.AvailabilityResponse, error) {
	s.logger.Info("Get: fetching availability for artist=%d", artistID)

	av, err := s.availabilityRepo.Get(ctx, artistID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			s.logger.Warn("Get: availability for artist=%d not found", artistID)
			return nil, ErrAvailabilityNotFound
		}
		s.logger.Error("Get: repository error for artist=%d: %v", artistID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomain(av), nil
}

// Upsert validates and stores the artist's schedule, replacing whatever was
// there. Only the artist may change their own hours. Existing bookings are
// deliberately untouched: shrinking availability stops new reservations but
// never cancels accepted ones.
func (s *Service) Upsert(ctx context.Context, req *models.UpsertAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("Upsert: updating availability for artist=%d by user=%d", req.ArtistID, req.UserID)

	if req.UserID != req.ArtistID {
		s.logger.Warn("Upsert: user=%d is not artist=%d", req.UserID, req.ArtistID)
		return nil, ErrAccessDenied
	}

	av := req.ToDomain()
	if err := av.Validate(); err != nil {
		if errors.Is(err, domain.ErrInvalidAvailability) {
			s.logger.Warn("Upsert: validation failed for artist=%d: %v", req.ArtistID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	stored, err := s.availabilityRepo.Upsert(ctx, av)
	if err != nil {
		s.logger.Error("Upsert: repository error for artist=%d: %v", req.ArtistID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: availability for artist=%d updated", req.ArtistID)
	return models.FromDomain(stored), nil
}

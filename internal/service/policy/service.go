package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/inkmatch/booking-service/internal/domain"
	policyRepo "github.com/inkmatch/booking-service/internal/infra/storage/policy"
	"github.com/inkmatch/booking-service/internal/service/policy/models"
)

// Service manages per-artist deposit policies.
type Service struct {
	policyRepo PolicyRepository
	logger     Logger
}

// NewService creates the policy service.
func NewService(policyRepo PolicyRepository, logger Logger) *Service {
	return &Service{
		policyRepo: policyRepo,
		logger:     logger,
	}
}

// Get returns the artist's deposit policy. Public: clients read it to show
// deposit terms before reserving.
func (s *Service) Get(ctx context.Context, artistID int64) (*models.PolicyResponse, error) {
	s.logger.Info("Get: fetching deposit policy for artist=%d", artistID)

	p, err := s.policyRepo.Get(ctx, artistID)
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			s.logger.Warn("Get: deposit policy for artist=%d not found", artistID)
			return nil, ErrPolicyNotFound
		}
		s.logger.Error("Get: repository error for artist=%d: %v", artistID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomain(p), nil
}

// Upsert validates and stores the artist's deposit policy. Only the artist
// may change their own terms.
func (s *Service) Upsert(ctx context.Context, req *models.UpsertPolicyRequest) (*models.PolicyResponse, error) {
	s.logger.Info("Upsert: updating deposit policy for artist=%d by user=%d, mode=%s",
		req.ArtistID, req.UserID, req.Mode)

	if req.UserID != req.ArtistID {
		s.logger.Warn("Upsert: user=%d is not artist=%d", req.UserID, req.ArtistID)
		return nil, ErrAccessDenied
	}

	p := req.ToDomain()
	if err := p.Validate(); err != nil {
		if errors.Is(err, domain.ErrInvalidDepositPolicy) {
			s.logger.Warn("Upsert: validation failed for artist=%d: %v", req.ArtistID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	stored, err := s.policyRepo.Upsert(ctx, p)
	if err != nil {
		s.logger.Error("Upsert: repository error for artist=%d: %v", req.ArtistID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: deposit policy for artist=%d updated", req.ArtistID)
	return models.FromDomain(stored), nil
}

package models

import (
	"time"

	"github.com/inkmatch/booking-service/internal/domain"
)

// UpsertPolicyRequest replaces the artist's deposit policy. Existing
// bookings keep the terms snapshotted at reservation time; only new
// reservations see the change.
type UpsertPolicyRequest struct {
	ArtistID      int64
	UserID        int64 // authenticated caller, must be the artist
	Mode          domain.DepositMode
	Percent       float64
	MinCents      int64
	MaxCents      int64
	AmountCents   int64
	NonRefundable bool
	CutoffHours   int
}

// ToDomain converts the request into the domain policy.
func (r *UpsertPolicyRequest) ToDomain() *domain.DepositPolicy {
	return &domain.DepositPolicy{
		ArtistID:      r.ArtistID,
		Mode:          r.Mode,
		Percent:       r.Percent,
		MinCents:      r.MinCents,
		MaxCents:      r.MaxCents,
		AmountCents:   r.AmountCents,
		NonRefundable: r.NonRefundable,
		CutoffHours:   r.CutoffHours,
	}
}

// PolicyResponse is the stored policy as the API returns it.
type PolicyResponse struct {
	ArtistID      int64              `json:"artistId"`
	Mode          domain.DepositMode `json:"mode"`
	Percent       float64            `json:"percent,omitempty"`
	MinCents      int64              `json:"minCents,omitempty"`
	MaxCents      int64              `json:"maxCents,omitempty"`
	AmountCents   int64              `json:"amountCents,omitempty"`
	NonRefundable bool               `json:"nonRefundable"`
	CutoffHours   int                `json:"cutoffHours"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// FromDomain converts the domain policy into the response.
func FromDomain(p *domain.DepositPolicy) *PolicyResponse {
	return &PolicyResponse{
		ArtistID:      p.ArtistID,
		Mode:          p.Mode,
		Percent:       p.Percent,
		MinCents:      p.MinCents,
		MaxCents:      p.MaxCents,
		AmountCents:   p.AmountCents,
		NonRefundable: p.NonRefundable,
		CutoffHours:   p.CutoffHours,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

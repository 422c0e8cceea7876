package update_deposit_policy

import (
	"github.com/inkmatch/booking-service/internal/domain"
	"github.com/inkmatch/booking-service/internal/service/policy/models"
)

// UpdatePolicyRequest HTTP request model. Mode coherence (percent bounds,
// flat amount) is validated in the domain layer.
type UpdatePolicyRequest struct {
	Mode          string  `json:"mode" validate:"required,oneof=percent flat"`
	Percent       float64 `json:"percent" validate:"gte=0,lte=1"`
	MinCents      int64   `json:"minCents" validate:"gte=0"`
	MaxCents      int64   `json:"maxCents" validate:"gte=0"`
	AmountCents   int64   `json:"amountCents" validate:"gte=0"`
	NonRefundable bool    `json:"nonRefundable"`
	CutoffHours   int     `json:"cutoffHours" validate:"gte=0"`
}

// ToServiceRequest converts the HTTP request into the service model.
func (r *UpdatePolicyRequest) ToServiceRequest(artistID, userID int64) *models.UpsertPolicyRequest {
	return &models.UpsertPolicyRequest{
		ArtistID:      artistID,
		UserID:        userID,
		Mode:          domain.DepositMode(r.Mode),
		Percent:       r.Percent,
		MinCents:      r.MinCents,
		MaxCents:      r.MaxCents,
		AmountCents:   r.AmountCents,
		NonRefundable: r.NonRefundable,
		CutoffHours:   r.CutoffHours,
	}
}

package domain

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// DepositMode selects how an artist's deposit is computed
type DepositMode string

const (
	DepositModePercent DepositMode = "percent"
	DepositModeFlat    DepositMode = "flat"
)

var (
	// ErrInvalidDepositPolicy is returned when a policy fails validation on
	// write.
	ErrInvalidDepositPolicy = errors.New("domain: invalid deposit policy")

	// ErrPolicyNotConfigured is returned when a paid appointment is priced
	// against a missing or incomplete policy. Reservation of paid
	// appointments is blocked on it.
	ErrPolicyNotConfigured = errors.New("domain: deposit policy not configured")
)

// DepositPolicy is an artist's deposit rule. Percent mode computes a share
// of the price clamped to [MinCents, MaxCents]; flat mode charges a fixed
// amount. CutoffHours is the minimum lead time for booking and for
// penalty-free cancellation.
type DepositPolicy struct {
	ArtistID      int64
	Mode          DepositMode
	Percent       float64 // percent mode: share of the price, (0, 1]
	MinCents      int64   // percent mode: floor for the computed deposit
	MaxCents      int64   // percent mode: cap, 0 = uncapped
	AmountCents   int64   // flat mode: the deposit itself
	NonRefundable bool
	CutoffHours   int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate enforces coherence of the policy for its selected mode.
func (p *DepositPolicy) Validate() error {
	if p.ArtistID <= 0 {
		return fmt.Errorf("%w: artistID must be positive", ErrInvalidDepositPolicy)
	}
	if p.CutoffHours < MinCutoffHours || p.CutoffHours > MaxCutoffHours {
		return fmt.Errorf("%w: cutoffHours %d outside [%d, %d]",
			ErrInvalidDepositPolicy, p.CutoffHours, MinCutoffHours, MaxCutoffHours)
	}

	switch p.Mode {
	case DepositModePercent:
		if p.Percent <= 0 || p.Percent > 1 {
			return fmt.Errorf("%w: percent %.4f outside (0, 1]", ErrInvalidDepositPolicy, p.Percent)
		}
		if p.MinCents < 0 || p.MaxCents < 0 {
			return fmt.Errorf("%w: negative deposit bounds", ErrInvalidDepositPolicy)
		}
		if p.MaxCents > 0 && p.MinCents > p.MaxCents {
			return fmt.Errorf("%w: minCents %d exceeds maxCents %d", ErrInvalidDepositPolicy, p.MinCents, p.MaxCents)
		}
	case DepositModeFlat:
		if p.AmountCents <= 0 {
			return fmt.Errorf("%w: flat amountCents must be positive", ErrInvalidDepositPolicy)
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidDepositPolicy, p.Mode)
	}

	return nil
}

// DepositRequirement is the outcome of evaluating a policy against a price.
type DepositRequirement struct {
	AmountCents   int64
	NonRefundable bool
}

// ComputeDeposit evaluates policy against priceCents. A free appointment
// (priceCents == 0) never requires a deposit, even without any policy. A
// paid appointment against a nil or incomplete policy fails with
// ErrPolicyNotConfigured.
func ComputeDeposit(policy *DepositPolicy, priceCents int64) (DepositRequirement, error) {
	if priceCents < 0 {
		return DepositRequirement{}, fmt.Errorf("%w: negative price", ErrInvalidDepositPolicy)
	}
	if priceCents == 0 {
		return DepositRequirement{AmountCents: 0, NonRefundable: false}, nil
	}
	if policy == nil {
		return DepositRequirement{}, ErrPolicyNotConfigured
	}

	switch policy.Mode {
	case DepositModeFlat:
		if policy.AmountCents <= 0 {
			return DepositRequirement{}, fmt.Errorf("%w: flat mode without amountCents", ErrPolicyNotConfigured)
		}
		return DepositRequirement{AmountCents: policy.AmountCents, NonRefundable: policy.NonRefundable}, nil

	case DepositModePercent:
		if policy.Percent <= 0 || policy.Percent > 1 {
			return DepositRequirement{}, fmt.Errorf("%w: percent mode without percent", ErrPolicyNotConfigured)
		}
		amount := int64(math.Round(float64(priceCents) * policy.Percent))
		if amount < policy.MinCents {
			amount = policy.MinCents
		}
		if policy.MaxCents > 0 && amount > policy.MaxCents {
			amount = policy.MaxCents
		}
		return DepositRequirement{AmountCents: amount, NonRefundable: policy.NonRefundable}, nil

	default:
		return DepositRequirement{}, fmt.Errorf("%w: unknown mode %q", ErrPolicyNotConfigured, policy.Mode)
	}
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func percentPolicy(percent float64, minCents, maxCents int64) *DepositPolicy {
	return &DepositPolicy{
		ArtistID:    1,
		Mode:        DepositModePercent,
		Percent:     percent,
		MinCents:    minCents,
		MaxCents:    maxCents,
		CutoffHours: 48,
	}
}

func TestComputeDeposit_PercentClamping(t *testing.T) {
	cases := []struct {
		name       string
		policy     *DepositPolicy
		priceCents int64
		want       int64
	}{
		{"plain percent", percentPolicy(0.2, 0, 0), 10000, 2000},
		{"clamped to floor", percentPolicy(0.2, 5000, 0), 10000, 5000},
		{"clamped to cap", percentPolicy(0.5, 0, 2000), 10000, 2000},
		{"within bounds untouched", percentPolicy(0.3, 1000, 5000), 10000, 3000},
		{"zero cap means uncapped", percentPolicy(0.5, 0, 0), 100000, 50000},
		{"rounds to nearest cent", percentPolicy(0.333, 0, 0), 1000, 333},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeDeposit(tt.policy, tt.priceCents)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.AmountCents)
		})
	}
}

func TestComputeDeposit_FlatMode(t *testing.T) {
	policy := &DepositPolicy{
		ArtistID:    1,
		Mode:        DepositModeFlat,
		AmountCents: 7500,
		CutoffHours: 24,
	}

	got, err := ComputeDeposit(policy, 10000)
	require.NoError(t, err)
	assert.Equal(t, int64(7500), got.AmountCents)

	// Flat amount does not depend on the price.
	got, err = ComputeDeposit(policy, 500)
	require.NoError(t, err)
	assert.Equal(t, int64(7500), got.AmountCents)
}

func TestComputeDeposit_FreeAppointmentNeedsNoPolicy(t *testing.T) {
	got, err := ComputeDeposit(nil, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.AmountCents)
	assert.False(t, got.NonRefundable)

	// Even a configured policy charges nothing for a free appointment.
	got, err = ComputeDeposit(percentPolicy(0.5, 1000, 0), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.AmountCents)
}

func TestComputeDeposit_MissingOrBrokenPolicy(t *testing.T) {
	_, err := ComputeDeposit(nil, 10000)
	assert.ErrorIs(t, err, ErrPolicyNotConfigured)

	_, err = ComputeDeposit(&DepositPolicy{ArtistID: 1, Mode: DepositModePercent}, 10000)
	assert.ErrorIs(t, err, ErrPolicyNotConfigured)

	_, err = ComputeDeposit(&DepositPolicy{ArtistID: 1, Mode: DepositModeFlat}, 10000)
	assert.ErrorIs(t, err, ErrPolicyNotConfigured)

	_, err = ComputeDeposit(&DepositPolicy{ArtistID: 1, Mode: "weird"}, 10000)
	assert.ErrorIs(t, err, ErrPolicyNotConfigured)
}

func TestComputeDeposit_NegativePrice(t *testing.T) {
	_, err := ComputeDeposit(percentPolicy(0.2, 0, 0), -1)
	assert.ErrorIs(t, err, ErrInvalidDepositPolicy)
}

func TestComputeDeposit_NonRefundableCarriedThrough(t *testing.T) {
	policy := percentPolicy(0.2, 0, 0)
	policy.NonRefundable = true

	got, err := ComputeDeposit(policy, 10000)
	require.NoError(t, err)
	assert.True(t, got.NonRefundable)
}

func TestDepositPolicy_Validate(t *testing.T) {
	cases := []struct {
		name    string
		policy  DepositPolicy
		wantErr bool
	}{
		{"valid percent", *percentPolicy(0.25, 1000, 5000), false},
		{"valid flat", DepositPolicy{ArtistID: 1, Mode: DepositModeFlat, AmountCents: 5000, CutoffHours: 24}, false},
		{"percent over one", *percentPolicy(1.5, 0, 0), true},
		{"percent zero", *percentPolicy(0, 0, 0), true},
		{"min exceeds max", *percentPolicy(0.2, 6000, 5000), true},
		{"flat without amount", DepositPolicy{ArtistID: 1, Mode: DepositModeFlat, CutoffHours: 24}, true},
		{"unknown mode", DepositPolicy{ArtistID: 1, Mode: "tip_jar", CutoffHours: 24}, true},
		{"missing artist", *func() *DepositPolicy { p := percentPolicy(0.2, 0, 0); p.ArtistID = 0; return p }(), true},
		{"negative cutoff", DepositPolicy{ArtistID: 1, Mode: DepositModeFlat, AmountCents: 100, CutoffHours: -1}, true},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDepositPolicy)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

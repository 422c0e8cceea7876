package policy

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/inkmatch/booking-service/internal/domain"
	"github.com/inkmatch/booking-service/pkg/dbmetrics"
	"github.com/inkmatch/booking-service/pkg/psqlbuilder"
)

// Repository persists per-artist deposit policies.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a deposit policy repository over db.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get fetches the deposit policy for an artist.
func (r *Repository) Get(ctx context.Context, artistID int64) (*domain.DepositPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"artist_id",
		"mode",
		"percent",
		"min_cents",
		"max_cents",
		"amount_cents",
		"non_refundable",
		"cutoff_hours",
		"created_at",
		"updated_at",
	).
		From("deposit_policies").
		Where(squirrel.Eq{"artist_id": artistID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %w", ErrBuildQuery, err)
	}

	var (
		p                    domain.DepositPolicy
		createdAt, updatedAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ArtistID,
		&p.Mode,
		&p.Percent,
		&p.MinCents,
		&p.MaxCents,
		&p.AmountCents,
		&p.NonRefundable,
		&p.CutoffHours,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan policy: %w", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// Upsert inserts or replaces the artist's deposit policy.
func (r *Repository) Upsert(ctx context.Context, p *domain.DepositPolicy) (*domain.DepositPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("deposit_policies").
		Columns(
			"artist_id",
			"mode",
			"percent",
			"min_cents",
			"max_cents",
			"amount_cents",
			"non_refundable",
			"cutoff_hours",
		).
		Values(
			p.ArtistID,
			p.Mode,
			p.Percent,
			p.MinCents,
			p.MaxCents,
			p.AmountCents,
			p.NonRefundable,
			p.CutoffHours,
		).
		Suffix(`ON CONFLICT (artist_id) DO UPDATE SET
			mode = EXCLUDED.mode,
			percent = EXCLUDED.percent,
			min_cents = EXCLUDED.min_cents,
			max_cents = EXCLUDED.max_cents,
			amount_cents = EXCLUDED.amount_cents,
			non_refundable = EXCLUDED.non_refundable,
			cutoff_hours = EXCLUDED.cutoff_hours,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %w", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

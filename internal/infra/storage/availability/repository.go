package availability

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/inkmatch/booking-service/internal/domain"
	"github.com/inkmatch/booking-service/pkg/dbmetrics"
	"github.com/inkmatch/booking-service/pkg/psqlbuilder"
)

// Repository persists per-artist availability. The weekly template and the
// exception map are stored as JSONB so an upsert followed by a get
// round-trips the caller's data exactly.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates an availability repository over db.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get fetches the availability record for an artist.
func (r *Repository) Get(ctx context.Context, artistID int64) (*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"artist_id",
		"timezone",
		"slot_minutes",
		"buffer_minutes",
		"weekly",
		"exceptions",
		"created_at",
		"updated_at",
	).
		From("artist_availability").
		Where(squirrel.Eq{"artist_id": artistID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %w", ErrBuildQuery, err)
	}

	var (
		av                   domain.Availability
		weeklyRaw            []byte
		exceptionsRaw        []byte
		createdAt, updatedAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&av.ArtistID,
		&av.Timezone,
		&av.SlotMinutes,
		&av.BufferMinutes,
		&weeklyRaw,
		&exceptionsRaw,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAvailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan availability: %w", ErrScanRow, err)
	}

	if err := json.Unmarshal(weeklyRaw, &av.Weekly); err != nil {
		return nil, fmt.Errorf("%w: Get - decode weekly: %w", ErrScanRow, err)
	}
	if err := json.Unmarshal(exceptionsRaw, &av.Exceptions); err != nil {
		return nil, fmt.Errorf("%w: Get - decode exceptions: %w", ErrScanRow, err)
	}

	av.CreatedAt = createdAt.Time
	av.UpdatedAt = updatedAt.Time

	return &av, nil
}

// Upsert inserts or replaces the artist's availability record in one
// statement. Validation happens in the service layer before this point.
func (r *Repository) Upsert(ctx context.Context, av *domain.Availability) (*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	weeklyRaw, err := json.Marshal(normalizedRanges(av.Weekly))
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - encode weekly: %w", ErrEncode, err)
	}
	exceptionsRaw, err := json.Marshal(normalizedRanges(av.Exceptions))
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - encode exceptions: %w", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("artist_availability").
		Columns(
			"artist_id",
			"timezone",
			"slot_minutes",
			"buffer_minutes",
			"weekly",
			"exceptions",
		).
		Values(
			av.ArtistID,
			av.Timezone,
			av.SlotMinutes,
			av.BufferMinutes,
			weeklyRaw,
			exceptionsRaw,
		).
		Suffix(`ON CONFLICT (artist_id) DO UPDATE SET
			timezone = EXCLUDED.timezone,
			slot_minutes = EXCLUDED.slot_minutes,
			buffer_minutes = EXCLUDED.buffer_minutes,
			weekly = EXCLUDED.weekly,
			exceptions = EXCLUDED.exceptions,
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

	av.CreatedAt = createdAt.Time
	av.UpdatedAt = updatedAt.Time

	return av, nil
}

// normalizedRanges replaces a nil map with an empty one so the stored JSON
// is always an object, never SQL NULL.
func normalizedRanges(m map[string][]domain.TimeRange) map[string][]domain.TimeRange {
	if m == nil {
		return map[string][]domain.TimeRange{}
	}
	return m
}

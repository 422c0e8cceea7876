package policy

import (
	"context"

	"github.com/inkmatch/booking-service/internal/domain"
)

// PolicyRepository is the storage surface for deposit policies.
type PolicyRepository interface {
	Get(ctx context.Context, artistID int64) (*domain.DepositPolicy, error)
	Upsert(ctx context.Context, p *domain.DepositPolicy) (*domain.DepositPolicy, error)
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

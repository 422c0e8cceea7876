package get_deposit_policy

import (
	"context"

	"github.com/inkmatch/booking-service/internal/service/policy/models"
)

type PolicyService interface {
	Get(ctx context.Context, artistID int64) (*models.PolicyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_availability

import (
	"context"

	"github.com/inkmatch/booking-service/internal/service/availability/models"
)

type AvailabilityService interface {
	Get(ctx context.Context, artistID int64) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

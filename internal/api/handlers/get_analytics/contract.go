package get_analytics

import (
	"context"

	"github.com/m04kA/SMC-RoomBooking/internal/service/analytics"
)

type AnalyticsService interface {
	Report(ctx context.Context, days int) (*analytics.Report, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/service/profiles/models"
)

type ProfileService interface {
	Me(ctx context.Context, userID uuid.UUID) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

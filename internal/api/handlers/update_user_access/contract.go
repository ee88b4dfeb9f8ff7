package update_user_access

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/service/profiles/models"
)

type ProfileService interface {
	UpdateAccess(ctx context.Context, actorID, userID uuid.UUID, req *models.UpdateAccessRequest) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

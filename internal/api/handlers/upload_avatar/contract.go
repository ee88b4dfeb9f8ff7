package upload_avatar

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/service/profiles/models"
)

type ProfileService interface {
	UploadAvatar(ctx context.Context, userID uuid.UUID, file *models.AvatarFile) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

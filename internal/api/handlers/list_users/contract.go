package list_users

import (
	"context"

	"github.com/m04kA/SMC-RoomBooking/internal/service/profiles/models"
)

type ProfileService interface {
	ListUsers(ctx context.Context) ([]*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

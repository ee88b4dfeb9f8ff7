package create_room

import (
	"context"

	"github.com/m04kA/SMC-RoomBooking/internal/service/rooms/models"
)

type RoomService interface {
	Create(ctx context.Context, input *models.RoomInput) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package list_room_blocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

type BlockService interface {
	List(ctx context.Context, roomID *uuid.UUID, from, to time.Time) ([]*domain.RoomBlock, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

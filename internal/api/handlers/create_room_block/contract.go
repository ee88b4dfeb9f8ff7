package create_room_block

import (
	"context"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/blocks"
)

type BlockService interface {
	Create(ctx context.Context, req *blocks.CreateRequest) (*domain.RoomBlock, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_user

import (
	"context"

	createUser "github.com/m04kA/SMC-RoomBooking/internal/usecase/create_user"
)

type CreateUserUseCase interface {
	Execute(ctx context.Context, req *createUser.Request) (*createUser.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

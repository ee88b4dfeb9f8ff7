package create_user

import (
	"context"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/integrations/authadmin"
)

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	Upsert(ctx context.Context, profile *domain.Profile) error
}

// AuthAdminClient административный API провайдера аутентификации
type AuthAdminClient interface {
	CreateUser(ctx context.Context, in authadmin.CreateUserRequest) (*authadmin.User, error)
}

// PasswordGenerator генератор временных паролей (для тестирования)
type PasswordGenerator interface {
	Generate() (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

const (
	tempPasswordLength   = 12
	tempPasswordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"
)

// NanoIDPasswordGenerator генерирует пароль из 12 символов криптостойким генератором
type NanoIDPasswordGenerator struct{}

func (g *NanoIDPasswordGenerator) Generate() (string, error) {
	return gonanoid.Generate(tempPasswordAlphabet, tempPasswordLength)
}

package access

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

type PermissionRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Permission, error)
}

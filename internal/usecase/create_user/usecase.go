package create_user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	profileRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/profile"
	"github.com/m04kA/SMC-RoomBooking/internal/integrations/authadmin"
)

// UseCase use case для создания пользователя администратором
type UseCase struct {
	profileRepo ProfileRepository
	authClient  AuthAdminClient
	passwords   PasswordGenerator
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(profileRepo ProfileRepository, authClient AuthAdminClient, logger Logger) *UseCase {
	return &UseCase{
		profileRepo: profileRepo,
		authClient:  authClient,
		passwords:   &NanoIDPasswordGenerator{},
		logger:      logger,
	}
}

// Execute выполняет use case создания пользователя
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateUser: actor=%s, email=%s", req.ActorID, req.Email)

	// 1. Вызывающий должен быть администратором
	actor, err := uc.profileRepo.GetByID(ctx, req.ActorID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			uc.logger.Warn("CreateUser: actor=%s has no profile", req.ActorID)
			return nil, ErrForbidden
		}
		uc.logger.Error("CreateUser: failed to get actor profile: %v", err)
		return nil, fmt.Errorf("%w: failed to get actor profile: %v", ErrInternal, err)
	}
	if !actor.IsAdmin() {
		uc.logger.Warn("CreateUser: actor=%s is not an admin", req.ActorID)
		return nil, ErrForbidden
	}

	// 2. Обязательные поля
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 3. Временный пароль
	password, err := uc.passwords.Generate()
	if err != nil {
		uc.logger.Error("CreateUser: failed to generate password: %v", err)
		return nil, fmt.Errorf("%w: failed to generate password: %v", ErrInternal, err)
	}

	// 4. Пользователь в провайдере аутентификации
	user, err := uc.authClient.CreateUser(ctx, authadmin.CreateUserRequest{
		Email:        req.Email,
		Password:     password,
		EmailConfirm: true,
		UserMetadata: authadmin.UserMetadata{
			FullName:   req.FullName,
			Department: req.Department,
		},
	})
	if err != nil {
		uc.logger.Warn("CreateUser: auth provider failed for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}

	// 5. Профиль. Ошибка не отменяет создание пользователя
	uc.upsertProfile(ctx, user, req)

	uc.logger.Info("CreateUser: user id=%s created by actor=%s", user.ID, req.ActorID)

	email := user.Email
	if email == "" {
		email = req.Email
	}

	return &Response{
		UserID:       user.ID,
		Email:        email,
		TempPassword: password,
	}, nil
}

func (uc *UseCase) upsertProfile(ctx context.Context, user *authadmin.User, req *Request) {
	id, err := uuid.Parse(user.ID)
	if err != nil {
		uc.logger.Error("CreateUser: auth provider returned non-uuid id=%q: %v", user.ID, err)
		return
	}

	err = uc.profileRepo.Upsert(ctx, &domain.Profile{
		ID:         id,
		Email:      req.Email,
		FullName:   req.FullName,
		Department: req.Department,
		Role:       domain.RoleUser,
	})
	if err != nil {
		uc.logger.Error("CreateUser: failed to update profile id=%s: %v", id, err)
	}
}

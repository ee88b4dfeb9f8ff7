package create_user

import (
	"github.com/google/uuid"

	createUser "github.com/m04kA/SMC-RoomBooking/internal/usecase/create_user"
)

// CreateUserRequest тело функции create-user
type CreateUserRequest struct {
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Department string `json:"department"`
}

// CreateUserResponse временный пароль возвращается один раз и нигде не хранится
type CreateUserResponse struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	TempPassword string `json:"temp_password"`
}

func (r *CreateUserRequest) ToUseCaseRequest(actorID uuid.UUID) *createUser.Request {
	return &createUser.Request{
		ActorID:    actorID,
		Email:      r.Email,
		FullName:   r.FullName,
		Department: r.Department,
	}
}

func FromUseCaseResponse(resp *createUser.Response) *CreateUserResponse {
	return &CreateUserResponse{
		UserID:       resp.UserID,
		Email:        resp.Email,
		TempPassword: resp.TempPassword,
	}
}

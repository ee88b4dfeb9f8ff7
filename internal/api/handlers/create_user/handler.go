package create_user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/api/middleware"
	createUser "github.com/m04kA/SMC-RoomBooking/internal/usecase/create_user"
)

const (
	msgUnauthorized  = "Unauthorized"
	msgForbidden     = "Forbidden: Admin access required"
	msgMissingFields = "Missing required fields: email, full_name, department"
	msgCreateFailed  = "Failed to create user"
)

type Handler struct {
	useCase CreateUserUseCase
	logger  Logger
}

func NewHandler(useCase CreateUserUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/functions/create-user
// Проверка роли администратора выполняется внутри use case
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Пустое или битое тело считаем запросом без полей
	var req CreateUserRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(actorID))
	if err != nil {
		switch {
		case errors.Is(err, createUser.ErrForbidden):
			h.logger.Warn("POST /functions/create-user - Forbidden: user_id=%s", actorID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createUser.ErrMissingFields):
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createUser.ErrCreateFailed):
			h.logger.Warn("POST /functions/create-user - Provider rejected user: email=%s, error=%v", req.Email, err)
			msg := createUser.RejectionMessage(err)
			if msg == "" {
				msg = msgCreateFailed
			}
			handlers.RespondBadRequest(w, msg)

		default:
			h.logger.Error("POST /functions/create-user - Failed to create user: email=%s, error=%v", req.Email, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgCreateFailed)
		}
		return
	}

	h.logger.Info("POST /functions/create-user - User created: user_id=%s, by=%s", result.UserID, actorID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

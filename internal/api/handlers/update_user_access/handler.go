package update_user_access

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBooking/internal/service/profiles"
	"github.com/m04kA/SMC-RoomBooking/internal/service/profiles/models"
)

const (
	msgInvalidUserID      = "некорректный ID пользователя"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidAccess      = "неизвестная роль или право"
	msgSelfDemotion       = "нельзя снять роль администратора с самого себя"
	msgNotFound           = "пользователь не найден"
)

type Handler struct {
	service ProfileService
	logger  Logger
}

func NewHandler(service ProfileService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/users/{userId}/access
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	targetID, err := uuid.Parse(mux.Vars(r)["userId"])
	if err != nil {
		h.logger.Warn("PUT /users/{id}/access - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /users/{id}/access - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateAccessRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/{id}/access - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	profile, err := h.service.UpdateAccess(r.Context(), actorID, targetID, &req)
	if err != nil {
		switch {
		case errors.Is(err, profiles.ErrInvalidInput):
			h.logger.Warn("PUT /users/{id}/access - Invalid access: user_id=%s, error=%v", targetID, err)
			handlers.RespondBadRequest(w, msgInvalidAccess)

		case errors.Is(err, profiles.ErrSelfDemotion):
			h.logger.Warn("PUT /users/{id}/access - Self demotion: user_id=%s", actorID)
			handlers.RespondConflict(w, msgSelfDemotion)

		case errors.Is(err, profiles.ErrProfileNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /users/{id}/access - Failed to update access: user_id=%s, error=%v", targetID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /users/{id}/access - Access updated: user_id=%s, role=%s, by=%s", targetID, profile.Role, actorID)
	handlers.RespondJSON(w, http.StatusOK, profile)
}

package update_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBooking/internal/service/profiles"
	"github.com/m04kA/SMC-RoomBooking/internal/service/profiles/models"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidProfile     = "имя и отдел обязательны"
	msgNotFound           = "профиль не найден"
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

// Handle PUT /api/v1/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /profile - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	profile, err := h.service.Update(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, profiles.ErrInvalidInput):
			h.logger.Warn("PUT /profile - Invalid profile: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidProfile)

		case errors.Is(err, profiles.ErrProfileNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /profile - Failed to update profile: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /profile - Profile updated: user_id=%s", userID)
	handlers.RespondJSON(w, http.StatusOK, profile)
}

package accept_terms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBooking/internal/service/profiles"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "профиль не найден"
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

// Handle POST /api/v1/profile/terms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /profile/terms - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.AcceptTerms(r.Context(), userID); err != nil {
		switch {
		case errors.Is(err, profiles.ErrProfileNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /profile/terms - Failed to accept terms: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /profile/terms - Terms accepted: user_id=%s", userID)
	handlers.RespondNoContent(w)
}

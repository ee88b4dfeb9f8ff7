package update_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/service/settings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownSetting     = "неизвестная настройка"
	msgInvalidValue       = "значение должно быть положительным целым числом"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/settings
// Тело: {"max_booking_duration_hours": "4", "max_days_ahead": "30"}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req map[string]string
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Update(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, settings.ErrUnknownSetting):
			h.logger.Warn("PUT /settings - Unknown setting: %v", err)
			handlers.RespondBadRequest(w, msgUnknownSetting)

		case errors.Is(err, settings.ErrInvalidValue):
			h.logger.Warn("PUT /settings - Invalid value: %v", err)
			handlers.RespondBadRequest(w, msgInvalidValue)

		default:
			h.logger.Error("PUT /settings - Failed to update settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	values, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("PUT /settings - Failed to reload settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /settings - Settings updated: %d keys", len(req))
	handlers.RespondJSON(w, http.StatusOK, values)
}

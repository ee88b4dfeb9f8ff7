package get_analytics

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/service/analytics"
)

const (
	msgInvalidDays = "параметр days должен быть от 1 до 365"

	defaultDays = 30
)

type Handler struct {
	service AnalyticsService
	logger  Logger
}

func NewHandler(service AnalyticsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/analytics?days=30
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	days := defaultDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		days = v
	}

	report, err := h.service.Report(r.Context(), days)
	if err != nil {
		switch {
		case errors.Is(err, analytics.ErrInvalidPeriod):
			handlers.RespondBadRequest(w, msgInvalidDays)

		default:
			h.logger.Error("GET /analytics - Failed to build report: days=%d, error=%v", days, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, report)
}

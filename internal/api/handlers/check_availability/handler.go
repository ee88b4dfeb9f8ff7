package check_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-RoomBooking/internal/usecase/check_availability"
)

const (
	msgInvalidQuery    = "некорректные параметры запроса"
	msgInvalidInterval = "некорректный интервал времени"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	loc     *time.Location
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		loc:     loc,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?room_id=&date=&start=&end=&exclude=
// Конфликт возвращается как 200 с valid=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseQuery(r.URL.Query(), h.loc)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid interval: room_id=%s, error=%v", req.RoomID, err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		default:
			h.logger.Error("GET /availability - Failed to check availability: room_id=%s, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

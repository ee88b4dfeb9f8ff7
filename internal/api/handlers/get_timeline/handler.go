package get_timeline

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	getTimeline "github.com/m04kA/SMC-RoomBooking/internal/usecase/get_timeline"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRoomID = "некорректный ID комнаты"
)

type Handler struct {
	useCase GetTimelineUseCase
	loc     *time.Location
	logger  Logger
}

func NewHandler(useCase GetTimelineUseCase, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		loc:     loc,
		logger:  logger,
	}
}

// Handle GET /api/v1/timeline?date=2026-05-05&room_id=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /timeline - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	access, _ := middleware.GetAccess(r.Context())

	query := r.URL.Query()

	date := time.Now().In(h.loc)
	if raw := query.Get("date"); raw != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, raw, h.loc)
		if err != nil {
			h.logger.Warn("GET /timeline - Invalid date: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	req := &getTimeline.Request{UserID: userID, Access: access, Date: date}
	if raw := query.Get("room_id"); raw != "" {
		roomID, err := uuid.Parse(raw)
		if err != nil {
			h.logger.Warn("GET /timeline - Invalid room ID: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidRoomID)
			return
		}
		req.RoomID = &roomID
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getTimeline.ErrInvalidInput):
			h.logger.Warn("GET /timeline - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /timeline - Failed to build timeline: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

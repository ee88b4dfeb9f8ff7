package list_room_blocks

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/blocks/models"
)

const (
	msgInvalidRoomID = "некорректный ID комнаты"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange  = "период должен быть не длиннее 31 дня"

	maxRangeDays = 31
)

type Handler struct {
	service BlockService
	loc     *time.Location
	logger  Logger
}

func NewHandler(service BlockService, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		service: service,
		loc:     loc,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/blocks?from=2026-05-01&to=2026-05-07
// Без параметров возвращает блокировки на сегодня
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(mux.Vars(r)["roomId"])
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/blocks - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	query := r.URL.Query()
	now := time.Now().In(h.loc)
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.loc)
	if raw := query.Get("from"); raw != "" {
		if from, err = time.ParseInLocation(domain.DateFormat, raw, h.loc); err != nil {
			h.logger.Warn("GET /rooms/{id}/blocks - Invalid from: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
	}
	to := from
	if raw := query.Get("to"); raw != "" {
		if to, err = time.ParseInLocation(domain.DateFormat, raw, h.loc); err != nil {
			h.logger.Warn("GET /rooms/{id}/blocks - Invalid to: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
	}
	// to включительно
	to = to.AddDate(0, 0, 1)
	if !to.After(from) || to.Sub(from) > maxRangeDays*24*time.Hour {
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	list, err := h.service.List(r.Context(), &roomID, from, to)
	if err != nil {
		h.logger.Error("GET /rooms/{id}/blocks - Failed to list blocks: room_id=%s, error=%v", roomID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBlockList(list))
}

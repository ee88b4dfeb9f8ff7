package create_room_block

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBooking/internal/service/blocks"
	"github.com/m04kA/SMC-RoomBooking/internal/service/blocks/models"
)

const (
	msgInvalidRoomID       = "некорректный ID комнаты"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgInvalidBlock        = "некорректный интервал блокировки"
	msgRoomNotFound        = "комната не найдена"
	msgBookingConflict     = "на это время уже есть бронирование"
	msgAlreadyBlocked      = "комната уже заблокирована на это время"
	msgAvailabilityUnknown = "не удалось проверить доступность комнаты"
)

type Handler struct {
	service BlockService
	logger  Logger
}

func NewHandler(service BlockService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms/{roomId}/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(mux.Vars(r)["roomId"])
	if err != nil {
		h.logger.Warn("POST /rooms/{id}/blocks - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /rooms/{id}/blocks - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms/{id}/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	block, err := h.service.Create(r.Context(), req.ToServiceRequest(roomID, userID))
	if err != nil {
		switch {
		case errors.Is(err, blocks.ErrInvalidInput):
			h.logger.Warn("POST /rooms/{id}/blocks - Invalid block: room_id=%s, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidBlock)

		case errors.Is(err, blocks.ErrRoomNotFound):
			h.logger.Warn("POST /rooms/{id}/blocks - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, blocks.ErrBookingConflict):
			h.logger.Warn("POST /rooms/{id}/blocks - Booking conflict: room_id=%s", roomID)
			handlers.RespondConflict(w, msgBookingConflict)

		case errors.Is(err, blocks.ErrAlreadyBlocked):
			h.logger.Warn("POST /rooms/{id}/blocks - Already blocked: room_id=%s", roomID)
			handlers.RespondConflict(w, msgAlreadyBlocked)

		case errors.Is(err, blocks.ErrAvailabilityUnknown):
			h.logger.Error("POST /rooms/{id}/blocks - Availability unknown: room_id=%s, error=%v", roomID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgAvailabilityUnknown)

		default:
			h.logger.Error("POST /rooms/{id}/blocks - Failed to create block: room_id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms/{id}/blocks - Block created: block_id=%s, room_id=%s, user_id=%s", block.ID, roomID, userID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainBlock(block))
}

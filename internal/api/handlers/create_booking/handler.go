package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-RoomBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateTime     = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgForbidden           = "нет права бронировать комнаты"
	msgInvalidInput        = "некорректные данные бронирования"
	msgRoomNotFound        = "комната не найдена"
	msgRoomUnavailable     = "комната на обслуживании"
	msgTimeBooked          = "это время уже забронировано"
	msgRoomBlocked         = "комната заблокирована на обслуживание в это время"
	msgAvailabilityUnknown = "не удалось проверить доступность комнаты"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	access, _ := middleware.GetAccess(r.Context())

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, access)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrForbidden):
			h.logger.Warn("POST /bookings - Forbidden: user_id=%s", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%s", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrRoomUnavailable):
			h.logger.Warn("POST /bookings - Room under maintenance: room_id=%s", req.RoomID)
			handlers.RespondConflict(w, msgRoomUnavailable)

		case errors.Is(err, createBooking.ErrPolicyViolation):
			h.logger.Warn("POST /bookings - Policy violation: user_id=%s, room_id=%s, error=%v", userID, req.RoomID, err)
			handlers.RespondBadRequest(w, handlers.PolicyMessage(err))

		case errors.Is(err, createBooking.ErrTimeBooked):
			h.logger.Warn("POST /bookings - Time already booked: room_id=%s", req.RoomID)
			handlers.RespondConflict(w, msgTimeBooked)

		case errors.Is(err, createBooking.ErrRoomBlocked):
			h.logger.Warn("POST /bookings - Room blocked: room_id=%s", req.RoomID)
			handlers.RespondConflict(w, msgRoomBlocked)

		case errors.Is(err, createBooking.ErrAvailabilityUnknown):
			h.logger.Error("POST /bookings - Availability unknown: room_id=%s, error=%v", req.RoomID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgAvailabilityUnknown)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, room_id=%s, error=%v",
				userID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user_id=%s, room_id=%s",
		result.Booking.ID, userID, req.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

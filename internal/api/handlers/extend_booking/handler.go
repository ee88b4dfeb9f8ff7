package extend_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/api/middleware"
	bookingModels "github.com/m04kA/SMC-RoomBooking/internal/service/bookings/models"
	extendBooking "github.com/m04kA/SMC-RoomBooking/internal/usecase/extend_booking"
)

const (
	msgInvalidBookingID    = "некорректный ID бронирования"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidTime         = "некорректный формат времени окончания, ожидается HH:MM"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgNotFound            = "бронирование не найдено"
	msgForbidden           = "продлить можно только свое бронирование"
	msgNotConfirmed        = "бронирование не активно"
	msgEndNotLater         = "новое время окончания должно быть позже текущего"
	msgTimeBooked          = "это время уже забронировано"
	msgRoomBlocked         = "комната заблокирована на обслуживание в это время"
	msgAvailabilityUnknown = "не удалось проверить доступность комнаты"
)

type Handler struct {
	useCase ExtendBookingUseCase
	logger  Logger
}

func NewHandler(useCase ExtendBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/extend
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/extend - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/extend - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	access, _ := middleware.GetAccess(r.Context())

	var req ExtendBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/extend - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID, userID, access)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/extend - Invalid end time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, extendBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/extend - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, extendBooking.ErrForbidden):
			h.logger.Warn("PATCH /bookings/{id}/extend - Forbidden: booking_id=%s, user_id=%s", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, extendBooking.ErrNotConfirmed):
			handlers.RespondConflict(w, msgNotConfirmed)

		case errors.Is(err, extendBooking.ErrEndNotLater), errors.Is(err, extendBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/extend - Invalid end: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgEndNotLater)

		case errors.Is(err, extendBooking.ErrPolicyViolation):
			h.logger.Warn("PATCH /bookings/{id}/extend - Policy violation: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, handlers.PolicyMessage(err))

		case errors.Is(err, extendBooking.ErrTimeBooked):
			handlers.RespondConflict(w, msgTimeBooked)

		case errors.Is(err, extendBooking.ErrRoomBlocked):
			handlers.RespondConflict(w, msgRoomBlocked)

		case errors.Is(err, extendBooking.ErrAvailabilityUnknown):
			h.logger.Error("PATCH /bookings/{id}/extend - Availability unknown: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgAvailabilityUnknown)

		default:
			h.logger.Error("PATCH /bookings/{id}/extend - Failed to extend booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/extend - Booking extended: booking_id=%s, end=%s",
		bookingID, result.Booking.EndTime)
	handlers.RespondJSON(w, http.StatusOK, bookingModels.FromDomainBooking(result.Booking))
}

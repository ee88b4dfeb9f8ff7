package send_booking_email

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	sendBookingEmail "github.com/m04kA/SMC-RoomBooking/internal/usecase/send_booking_email"
)

const (
	msgMissingData   = "Missing required data"
	msgNotConfigured = "Email service not configured"
	msgSent          = "Email sent successfully"
	msgSendFailed    = "Failed to send email"
)

type Handler struct {
	useCase SendBookingEmailUseCase
	logger  Logger
}

func NewHandler(useCase SendBookingEmailUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/functions/send-booking-email
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SendBookingEmailRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /functions/send-booking-email - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgMissingData)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, sendBookingEmail.ErrMissingData):
			handlers.RespondBadRequest(w, msgMissingData)

		default:
			h.logger.Error("POST /functions/send-booking-email - Failed to send email: %v", err)
			resp := &EmailResponse{Error: msgSendFailed}
			if result != nil {
				resp.ICS = result.ICS
			}
			handlers.RespondJSON(w, http.StatusInternalServerError, resp)
		}
		return
	}

	msg := msgSent
	if result.Outcome == sendBookingEmail.OutcomeSkipped {
		msg = msgNotConfigured
	}

	handlers.RespondJSON(w, http.StatusOK, &EmailResponse{Message: msg, ICS: result.ICS})
}

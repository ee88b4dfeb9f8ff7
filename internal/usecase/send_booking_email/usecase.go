package send_booking_email

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	bookingRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/booking"
)

// UseCase use case для отправки письма о бронировании с приглашением в календарь
type UseCase struct {
	sender       EmailSender
	bookingRepo  BookingRepository
	metrics      Metrics
	from         string
	loc          *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// from - адрес отправителя, loc - часовой пояс для текста письма
func NewUseCase(
	sender EmailSender,
	bookingRepo BookingRepository,
	metrics Metrics,
	from string,
	loc *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		sender:       sender,
		bookingRepo:  bookingRepo,
		metrics:      metrics,
		from:         from,
		loc:          loc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute строит приглашение и отправляет письмо
//
// Без настроенного провайдера письмо не отправляется, возвращается OutcomeSkipped и ICS.
// При отказе провайдера возвращается ErrSendFailed вместе с Response, содержащим ICS
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Booking == nil || req.User == nil || req.Room == nil {
		return nil, ErrMissingData
	}

	uc.logger.Info("SendBookingEmail: booking=%s, to=%s", req.Booking.ID, req.User.Email)

	// 1. Приглашение
	invite := buildInvite(req, uc.timeProvider.Now())

	// 2. Провайдер не настроен
	if !uc.sender.Configured() {
		uc.logger.Warn("SendBookingEmail: email provider not configured, sending disabled")
		uc.metrics.EmailProcessed(string(OutcomeSkipped))
		return &Response{Outcome: OutcomeSkipped, ICS: invite}, nil
	}

	// 3. Отправка
	msg, err := buildMessage(req, invite, uc.from, uc.loc)
	if err != nil {
		uc.logger.Error("SendBookingEmail: failed to render message: %v", err)
		return nil, fmt.Errorf("%w: render message: %v", ErrInternal, err)
	}

	id, err := uc.sender.Send(ctx, msg)
	if err != nil {
		uc.logger.Error("SendBookingEmail: failed to send email for booking=%s: %v", req.Booking.ID, err)
		uc.metrics.EmailProcessed(string(OutcomeFailed))
		return &Response{Outcome: OutcomeFailed, ICS: invite}, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	uc.metrics.EmailProcessed(string(OutcomeSent))
	uc.logger.Info("SendBookingEmail: email id=%s sent for booking=%s", id, req.Booking.ID)

	return &Response{Outcome: OutcomeSent, ICS: invite}, nil
}

// SendForBooking загружает бронирование с комнатой и владельцем и отправляет письмо
// Используется обработчиком очереди
func (uc *UseCase) SendForBooking(ctx context.Context, bookingID uuid.UUID) error {
	booking, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	if booking.Room == nil || booking.User == nil {
		return fmt.Errorf("%w: booking=%s has no room or owner profile", ErrMissingData, bookingID)
	}

	_, err = uc.Execute(ctx, &Request{
		Booking: &BookingData{
			ID:             booking.ID.String(),
			Title:          booking.Title,
			Description:    booking.Description,
			StartTime:      booking.StartTime,
			EndTime:        booking.EndTime,
			AttendeesCount: booking.AttendeesCount,
		},
		User: &UserData{
			FullName: booking.User.FullName,
			Email:    booking.User.Email,
		},
		Room: &RoomData{
			Name:  booking.Room.Name,
			Floor: booking.Room.Floor,
		},
	})
	return err
}

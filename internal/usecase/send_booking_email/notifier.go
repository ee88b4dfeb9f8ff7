package send_booking_email

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// InlineNotifier отправляет письмо в отдельной горутине, когда очередь отключена
// Ошибки только логируются, повторов нет
type InlineNotifier struct {
	uc      *UseCase
	timeout time.Duration
	logger  Logger
}

func NewInlineNotifier(uc *UseCase, timeout time.Duration, logger Logger) *InlineNotifier {
	return &InlineNotifier{uc: uc, timeout: timeout, logger: logger}
}

// EnqueueBookingConfirmation запускает отправку и сразу возвращает управление
func (n *InlineNotifier) EnqueueBookingConfirmation(ctx context.Context, bookingID uuid.UUID) error {
	// Запрос завершится раньше отправки: отвязываемся от его отмены
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)

	go func() {
		defer cancel()
		if err := n.uc.SendForBooking(sendCtx, bookingID); err != nil {
			n.logger.Warn("SendBookingEmail: background send for booking=%s failed: %v", bookingID, err)
		}
	}()

	return nil
}

// Package queue ставит фоновые задачи в Redis через asynq и обрабатывает их
package queue

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const (
	// TypeBookingConfirmation письмо с подтверждением бронирования и ICS приглашением
	TypeBookingConfirmation = "email:booking_confirmation"

	QueueEmails = "emails"
)

type BookingConfirmationPayload struct {
	BookingID uuid.UUID `json:"booking_id"`
}

// NewBookingConfirmationTask создает задачу отправки письма о бронировании
func NewBookingConfirmationTask(bookingID uuid.UUID, maxRetry int) (*asynq.Task, error) {
	payload, err := json.Marshal(BookingConfirmationPayload{BookingID: bookingID})
	if err != nil {
		return nil, fmt.Errorf("queue: marshal payload: %w", err)
	}
	return asynq.NewTask(TypeBookingConfirmation, payload, asynq.MaxRetry(maxRetry), asynq.Queue(QueueEmails)), nil
}

// ParseBookingConfirmation разбирает payload задачи
func ParseBookingConfirmation(task *asynq.Task) (BookingConfirmationPayload, error) {
	var p BookingConfirmationPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("queue: unmarshal payload: %w", err)
	}
	if p.BookingID == uuid.Nil {
		return p, fmt.Errorf("queue: empty booking_id")
	}
	return p, nil
}

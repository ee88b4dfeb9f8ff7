package queue

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/m04kA/SMC-RoomBooking/internal/config"
)

// BookingConfirmationSender отправляет письмо по ID бронирования
type BookingConfirmationSender interface {
	SendForBooking(ctx context.Context, bookingID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewServeMux регистрирует обработчики задач
func NewServeMux(sender BookingConfirmationSender, logger Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingConfirmation, HandleBookingConfirmation(sender, logger))
	return mux
}

// HandleBookingConfirmation обработчик задачи отправки письма
// Некорректный payload не повторяется (asynq.SkipRetry)
func HandleBookingConfirmation(sender BookingConfirmationSender, logger Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		payload, err := ParseBookingConfirmation(task)
		if err != nil {
			logger.Error("queue: %s - bad payload: %v", TypeBookingConfirmation, err)
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		if err := sender.SendForBooking(ctx, payload.BookingID); err != nil {
			logger.Warn("queue: %s - booking=%s failed: %v", TypeBookingConfirmation, payload.BookingID, err)
			return err
		}

		logger.Info("queue: %s - booking=%s sent", TypeBookingConfirmation, payload.BookingID)
		return nil
	}
}

// NewServer создает сервер обработки очереди
func NewServer(cfg config.QueueConfig, logger Logger) *asynq.Server {
	return asynq.NewServer(RedisOpt(cfg), asynq.Config{
		Concurrency: cfg.Concurrency,
		Queues:      map[string]int{QueueEmails: 1},
		Logger:      &asynqLogger{logger: logger},
	})
}

// asynqLogger адаптирует printf логгер к интерфейсу asynq.Logger
type asynqLogger struct {
	logger Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info("asynq: %s", fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn("asynq: %s", fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error("asynq: %s", fmt.Sprint(args...))
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error("asynq: fatal: %s", fmt.Sprint(args...))
}

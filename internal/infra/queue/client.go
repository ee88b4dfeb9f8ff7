package queue

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/m04kA/SMC-RoomBooking/internal/config"
)

// Enqueuer подмножество asynq.Client
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Client ставит задачи в очередь
type Client struct {
	enqueuer Enqueuer
	maxRetry int
}

func RedisOpt(cfg config.QueueConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}
}

func NewClient(enqueuer Enqueuer, maxRetry int) *Client {
	return &Client{enqueuer: enqueuer, maxRetry: maxRetry}
}

// EnqueueBookingConfirmation ставит письмо о бронировании в очередь
func (c *Client) EnqueueBookingConfirmation(ctx context.Context, bookingID uuid.UUID) error {
	task, err := NewBookingConfirmationTask(bookingID, c.maxRetry)
	if err != nil {
		return err
	}

	if _, err := c.enqueuer.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("queue: enqueue %s for booking %s: %w", TypeBookingConfirmation, bookingID, err)
	}

	return nil
}

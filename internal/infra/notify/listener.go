// Package notify слушает канал PostgreSQL NOTIFY с изменениями бронирований и блокировок
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const pingInterval = 90 * time.Second

// Channel имя канала, в который пишет триггер notify_booking_change
const Channel = "booking_changes"

// EventResync отправляется после переподключения: уведомления за время разрыва потеряны
const EventResync = "RESYNC"

// Event изменение строки bookings или room_blocks
type Event struct {
	Table     string    `json:"table"`
	Event     string    `json:"event"` // INSERT | UPDATE | DELETE | RESYNC
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"room_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// ParseEvent разбирает payload, сформированный триггером notify_booking_change
func ParseEvent(payload string) (Event, error) {
	var e Event
	if err := json.Unmarshal([]byte(payload), &e); err != nil {
		return e, fmt.Errorf("notify: parse payload: %w", err)
	}
	return e, nil
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Listener подписка на канал изменений
// Переподключение выполняет pq.Listener с интервалами min/max
type Listener struct {
	listener *pq.Listener
	channel  string
	logger   Logger
}

func NewListener(dsn string, minReconnect, maxReconnect time.Duration, logger Logger) *Listener {
	l := &Listener{channel: Channel, logger: logger}
	l.listener = pq.NewListener(dsn, minReconnect, maxReconnect, l.onConnectionEvent)
	return l
}

func (l *Listener) onConnectionEvent(ev pq.ListenerEventType, err error) {
	switch ev {
	case pq.ListenerEventConnected:
		l.logger.Info("notify: connected, channel=%s", l.channel)
	case pq.ListenerEventDisconnected:
		l.logger.Warn("notify: disconnected: %v", err)
	case pq.ListenerEventReconnected:
		l.logger.Info("notify: reconnected, channel=%s", l.channel)
	case pq.ListenerEventConnectionAttemptFailed:
		l.logger.Warn("notify: connection attempt failed: %v", err)
	}
}

// Run слушает канал до отмены контекста, передавая события в handle
func (l *Listener) Run(ctx context.Context, handle func(Event)) error {
	if err := l.listener.Listen(l.channel); err != nil {
		return fmt.Errorf("notify: listen %s: %w", l.channel, err)
	}
	defer l.listener.Close()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case n := <-l.listener.Notify:
			if n == nil {
				handle(Event{Event: EventResync})
				continue
			}
			event, err := ParseEvent(n.Extra)
			if err != nil {
				l.logger.Warn("%v", err)
				continue
			}
			handle(event)
		case <-ticker.C:
			if err := l.listener.Ping(); err != nil {
				l.logger.Warn("notify: ping failed: %v", err)
			}
		}
	}
}

// Package realtime рассылает подписчикам актуальное состояние дней при изменении бронирований и блокировок
//
// Подписчик получает полный набор бронирований и блокировок дня, а не инкрементальные изменения
package realtime

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/infra/notify"
)

const (
	sendBufferSize   = 32
	eventsBufferSize = 64
	loadTimeout      = 5 * time.Second
)

// Subscriber подписка на окно дат
type Subscriber struct {
	UserID uuid.UUID
	Access domain.Access
	Window Window

	send chan *Message
}

func NewSubscriber(userID uuid.UUID, access domain.Access, window Window) *Subscriber {
	return &Subscriber{
		UserID: userID,
		Access: access,
		Window: window,
		send:   make(chan *Message, sendBufferSize),
	}
}

// Messages канал сообщений. Закрывается при отписке или остановке хаба
func (s *Subscriber) Messages() <-chan *Message {
	return s.send
}

// Hub владеет подписчиками. Все изменения состояния выполняются в горутине Run
type Hub struct {
	loader  SnapshotLoader
	loc     *time.Location
	metrics Metrics
	logger  Logger

	register    chan *Subscriber
	unregister  chan *Subscriber
	events      chan notify.Event
	subscribers map[*Subscriber]struct{}
	done        chan struct{}
}

func NewHub(loader SnapshotLoader, loc *time.Location, metrics Metrics, logger Logger) *Hub {
	return &Hub{
		loader:      loader,
		loc:         loc,
		metrics:     metrics,
		logger:      logger,
		register:    make(chan *Subscriber),
		unregister:  make(chan *Subscriber),
		events:      make(chan notify.Event, eventsBufferSize),
		subscribers: make(map[*Subscriber]struct{}),
		done:        make(chan struct{}),
	}
}

// Run обрабатывает подписки и события до отмены контекста
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		for sub := range h.subscribers {
			h.drop(sub)
		}
		close(h.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case sub := <-h.register:
			h.subscribers[sub] = struct{}{}
			h.metrics.SubscribersChanged(1)
			for _, day := range sub.Window.Days() {
				h.push(ctx, day, []*Subscriber{sub})
			}
		case sub := <-h.unregister:
			if _, ok := h.subscribers[sub]; ok {
				h.drop(sub)
			}
		case event := <-h.events:
			h.dispatch(ctx, event)
		}
	}
}

// Subscribe регистрирует подписчика. Начальное состояние окна отправляется сразу
func (h *Hub) Subscribe(sub *Subscriber) error {
	select {
	case h.register <- sub:
		return nil
	case <-h.done:
		return ErrHubClosed
	}
}

func (h *Hub) Unsubscribe(sub *Subscriber) {
	select {
	case h.unregister <- sub:
	case <-h.done:
	}
}

// Publish передает событие из канала изменений
func (h *Hub) Publish(event notify.Event) {
	select {
	case h.events <- event:
	case <-h.done:
	}
}

func (h *Hub) dispatch(ctx context.Context, event notify.Event) {
	var days []time.Time
	if event.Event == notify.EventResync {
		days = h.subscribedDays()
	} else {
		days = DaysTouched(event.StartTime, event.EndTime, h.loc)
	}

	for _, day := range days {
		targets := make([]*Subscriber, 0)
		for sub := range h.subscribers {
			if sub.Window.Contains(day) {
				targets = append(targets, sub)
			}
		}
		if len(targets) > 0 {
			h.push(ctx, day, targets)
		}
	}
}

func (h *Hub) push(ctx context.Context, day time.Time, targets []*Subscriber) {
	loadCtx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	snapshot, err := h.loader.LoadDay(loadCtx, day)
	if err != nil {
		h.logger.Error("realtime: %v", err)
		return
	}

	for _, sub := range targets {
		select {
		case sub.send <- snapshot.MessageFor(sub.UserID, sub.Access):
		default:
			// медленный клиент
			h.logger.Warn("realtime: send buffer full for user=%s, dropping subscriber", sub.UserID)
			h.drop(sub)
		}
	}
}

func (h *Hub) drop(sub *Subscriber) {
	delete(h.subscribers, sub)
	h.metrics.SubscribersChanged(-1)
	close(sub.send)
}

func (h *Hub) subscribedDays() []time.Time {
	seen := make(map[time.Time]struct{})
	days := make([]time.Time, 0)
	for sub := range h.subscribers {
		for _, day := range sub.Window.Days() {
			if _, ok := seen[day]; !ok {
				seen[day] = struct{}{}
				days = append(days, day)
			}
		}
	}
	return days
}

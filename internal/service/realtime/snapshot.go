package realtime

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	blockModels "github.com/m04kA/SMC-RoomBooking/internal/service/blocks/models"
	bookingModels "github.com/m04kA/SMC-RoomBooking/internal/service/bookings/models"
)

const MessageTypeSnapshot = "snapshot"

// Snapshot полный набор подтверждённых бронирований и блокировок за день
type Snapshot struct {
	Day      time.Time
	Bookings []*domain.Booking
	Blocks   []*domain.RoomBlock
}

// Message сообщение подписчику
type Message struct {
	Type     string                           `json:"type"`
	Date     string                           `json:"date"`
	Bookings []*bookingModels.BookingResponse `json:"bookings"`
	Blocks   []*blockModels.BlockResponse     `json:"blocks"`
}

// MessageFor формирует сообщение с учётом прав получателя
func (s *Snapshot) MessageFor(viewerID uuid.UUID, access domain.Access) *Message {
	return &Message{
		Type:     MessageTypeSnapshot,
		Date:     s.Day.Format(domain.DateFormat),
		Bookings: bookingModels.FromDomainBookingListFor(s.Bookings, viewerID, access.Can(domain.PermViewAllSchedules)),
		Blocks:   blockModels.FromDomainBlockList(s.Blocks),
	}
}

// DayLoader читает состояние дня через сервисы бронирований и блокировок
type DayLoader struct {
	bookings BookingLister
	blocks   BlockLister
}

func NewDayLoader(bookings BookingLister, blocks BlockLister) *DayLoader {
	return &DayLoader{bookings: bookings, blocks: blocks}
}

// LoadDay day должен быть началом суток в часовом поясе расписания
func (l *DayLoader) LoadDay(ctx context.Context, day time.Time) (*Snapshot, error) {
	next := day.AddDate(0, 0, 1)

	bookings, err := l.bookings.ListForDay(ctx, nil, day, next)
	if err != nil {
		return nil, fmt.Errorf("realtime: load bookings %s: %w", day.Format(domain.DateFormat), err)
	}

	blocks, err := l.blocks.List(ctx, nil, day, next)
	if err != nil {
		return nil, fmt.Errorf("realtime: load blocks %s: %w", day.Format(domain.DateFormat), err)
	}

	return &Snapshot{Day: day, Bookings: bookings, Blocks: blocks}, nil
}

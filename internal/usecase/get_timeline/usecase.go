package get_timeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	bookingModels "github.com/m04kA/SMC-RoomBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-RoomBooking/internal/service/timeline"
)

// UseCase use case для получения сетки бронирований на день
type UseCase struct {
	rooms    RoomLister
	bookings BookingLister
	blocks   BlockLister
	slots    []domain.TimeSlot
	loc      *time.Location
	logger   Logger
}

// NewUseCase создает use case. Сетка слотов строится один раз из конфигурации
func NewUseCase(
	rooms RoomLister,
	bookings BookingLister,
	blocks BlockLister,
	cfg timeline.Config,
	loc *time.Location,
	logger Logger,
) (*UseCase, error) {
	slots, err := timeline.GenerateTimeSlots(cfg)
	if err != nil {
		return nil, err
	}

	return &UseCase{
		rooms:    rooms,
		bookings: bookings,
		blocks:   blocks,
		slots:    slots,
		loc:      loc,
		logger:   logger,
	}, nil
}

// Slots сетка слотов дня
func (uc *UseCase) Slots() []domain.TimeSlot {
	return uc.slots
}

// Execute выполняет use case получения сетки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	y, m, d := req.Date.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, uc.loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	uc.logger.Info("GetTimeline: user=%s, date=%s", req.UserID, dayStart.Format(domain.DateFormat))

	// 1. Активные комнаты
	rooms, err := uc.rooms.ListDomain(ctx, true)
	if err != nil {
		uc.logger.Error("GetTimeline: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}
	if req.RoomID != nil {
		rooms = filterRooms(rooms, *req.RoomID)
	}

	// 2. Бронирования и блокировки, пересекающие день
	bookings, err := uc.bookings.ListForDay(ctx, req.RoomID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetTimeline: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	blocks, err := uc.blocks.List(ctx, req.RoomID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetTimeline: failed to list blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to list blocks: %v", ErrInternal, err)
	}

	// 3. Раскладка по слотам
	projected := timeline.ProjectBookings(bookings, dayStart, uc.slots, uc.loc)
	cells := maskCells(projected, req.UserID, req.Access.Can(domain.PermViewAllSchedules))
	spans := timeline.ProjectBlocks(blocks, dayStart, uc.slots, uc.loc)

	uc.logger.Info("GetTimeline: date=%s, rooms=%d, bookings=%d/%d projected, blocks=%d",
		dayStart.Format(domain.DateFormat), len(rooms), len(cells), len(bookings), len(spans))

	return &Response{
		Date:     dayStart,
		Slots:    uc.slots,
		Rooms:    rooms,
		Bookings: cells,
		Blocks:   spans,
	}, nil
}

func filterRooms(rooms []*domain.Room, id uuid.UUID) []*domain.Room {
	for _, r := range rooms {
		if r.ID == id {
			return []*domain.Room{r}
		}
	}
	return []*domain.Room{}
}

func maskCells(projected []domain.BookingBlock, viewerID uuid.UUID, canViewAll bool) []BookingCell {
	list := make([]*domain.Booking, 0, len(projected))
	for _, p := range projected {
		list = append(list, p.Booking)
	}
	responses := bookingModels.FromDomainBookingListFor(list, viewerID, canViewAll)

	cells := make([]BookingCell, 0, len(projected))
	for i, p := range projected {
		cells = append(cells, BookingCell{
			Booking:   responses[i],
			StartSlot: p.StartSlot,
			EndSlot:   p.EndSlot,
			Span:      p.Span,
		})
	}
	return cells
}

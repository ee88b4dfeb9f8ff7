package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBooking/internal/service/availability"
	"github.com/m04kA/SMC-RoomBooking/internal/service/policy"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	settings     SettingsProvider
	availability AvailabilityChecker
	notifier     ConfirmationNotifier
	txManager    TransactionManager
	metrics      Metrics
	loc          *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// loc - часовой пояс, в котором интерпретируются дата и время запроса
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	settings SettingsProvider,
	availability AvailabilityChecker,
	notifier ConfirmationNotifier,
	txManager TransactionManager,
	metrics Metrics,
	loc *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		settings:     settings,
		availability: availability,
		notifier:     notifier,
		txManager:    txManager,
		metrics:      metrics,
		loc:          loc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Порядок проверок: комната, длительность, срок, вместимость, доступность.
// Проверка доступности и вставка выполняются в сериализуемой транзакции,
// окончательную защиту от пересечений дает ограничение EXCLUDE в базе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, room=%s, date=%s, time=%s-%s",
		req.UserID, req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Права и входные данные
	if !req.Access.Can(domain.PermBookRoom) {
		uc.logger.Warn("CreateBooking: user=%s has no book_room permission", req.UserID)
		return nil, ErrForbidden
	}
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	interval, err := resolveInterval(req.Date, req.StartTime, req.EndTime, uc.loc)
	if err != nil {
		return nil, err
	}

	// 2. Комната
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}
	if !room.IsActive() {
		uc.logger.Warn("CreateBooking: room id=%s is under maintenance", req.RoomID)
		return nil, ErrRoomUnavailable
	}

	// 3. Правила бронирования
	limits := uc.settings.Limits(ctx)
	err = policy.CheckAll(policy.Request{
		Interval:  interval,
		Attendees: req.AttendeesCount,
		Room:      room,
		Now:       uc.timeProvider.Now(),
	}, limits)
	if err != nil {
		uc.logger.Warn("CreateBooking: policy check failed: %v", err)
		uc.metrics.BookingRejected("policy")
		return nil, fmt.Errorf("%w: %w", ErrPolicyViolation, err)
	}

	// 4. Доступность и вставка в одной транзакции
	booking := &domain.Booking{
		RoomID:         room.ID,
		UserID:         req.UserID,
		Title:          req.Title,
		Description:    req.Description,
		StartTime:      interval.Start,
		EndTime:        interval.End,
		AttendeesCount: req.AttendeesCount,
		Status:         domain.StatusConfirmed,
	}

	var created *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.availability.Check(txCtx, room.ID, interval, nil); err != nil {
			return err
		}

		var err error
		created, err = uc.bookingRepo.Create(txCtx, booking)
		return err
	})
	if err != nil {
		mapped := uc.mapWriteError(err)
		if errors.Is(mapped, ErrInternal) {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		} else {
			uc.logger.Warn("CreateBooking: rejected: %v", err)
		}
		return nil, mapped
	}

	created.Room = room
	uc.metrics.BookingSaved("create")
	uc.logger.Info("CreateBooking: booking id=%s created for user=%s", created.ID, req.UserID)

	// 5. Письмо-подтверждение. Ошибка не отменяет бронирование
	queued := true
	if err := uc.notifier.EnqueueBookingConfirmation(ctx, created.ID); err != nil {
		uc.logger.Warn("CreateBooking: failed to enqueue confirmation for booking id=%s: %v", created.ID, err)
		queued = false
	}

	return &Response{Booking: created, EmailQueued: queued}, nil
}

func (uc *UseCase) mapWriteError(err error) error {
	switch {
	case errors.Is(err, availability.ErrTimeBooked), errors.Is(err, bookingRepo.ErrTimeConflict):
		uc.metrics.BookingRejected("booked")
		return ErrTimeBooked
	case errors.Is(err, availability.ErrRoomBlocked), errors.Is(err, bookingRepo.ErrRoomBlocked):
		uc.metrics.BookingRejected("blocked")
		return ErrRoomBlocked
	case errors.Is(err, availability.ErrAvailabilityUnknown):
		uc.metrics.BookingRejected("unknown")
		return fmt.Errorf("%w: %v", ErrAvailabilityUnknown, err)
	case errors.Is(err, bookingRepo.ErrReferenceNotFound):
		return ErrRoomNotFound
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

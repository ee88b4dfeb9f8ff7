package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RoomBooking/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Чужое бронирование доступно только с правом view_all_schedules
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID, access domain.Access) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID && !access.Can(domain.PermViewAllSchedules) {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// ListByUser возвращает бронирования пользователя
// Будущие - подтверждённые, ещё не закончившиеся, по возрастанию начала
// Прошедшие - все остальные, начиная с самых поздних
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) (*models.MyBookingsResponse, error) {
	s.logger.Info("ListByUser: fetching bookings for user=%s", userID)

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{UserID: &userID})
	if err != nil {
		s.logger.Error("ListByUser: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: ListByUser - repository error: %v", ErrInternal, err)
	}

	upcoming, past := SplitByTime(bookings, s.timeProvider.Now())

	return &models.MyBookingsResponse{
		Upcoming: models.FromDomainBookingList(upcoming),
		Past:     models.FromDomainBookingList(past),
	}, nil
}

// ListForDay подтверждённые бронирования, пересекающие [from, to)
// Включает бронирования, начавшиеся накануне. roomID опционален
func (s *Service) ListForDay(ctx context.Context, roomID *uuid.UUID, from, to time.Time) ([]*domain.Booking, error) {
	status := domain.StatusConfirmed
	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{
		RoomID: roomID,
		EndAfter: &from,
		To:       &to,
		Status:   &status,
	})
	if err != nil {
		s.logger.Error("ListForDay: repository error for %s: %v", from.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListForDay - repository error: %v", ErrInternal, err)
	}
	return bookings, nil
}

// Cancel отменяет бронирование
// Владельцу нужно право cancel_own_booking, остальным - cancel_any_booking
// Отмена необратима
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, userID uuid.UUID, access domain.Access) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: user=%s cancelling booking id=%s", userID, id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !CanCancel(booking, userID, access) {
		s.logger.Warn("Cancel: access denied for user=%s to booking id=%s", userID, id)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		return nil, ErrAlreadyCancelled
	}

	now := s.timeProvider.Now()
	if err := s.bookingRepo.Cancel(ctx, id, now); err != nil {
		if errors.Is(err, bookingRepo.ErrNotConfirmed) {
			// отменено параллельным запросом
			return nil, ErrAlreadyCancelled
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusCancelled
	booking.CancelledAt = &now

	s.logger.Info("Cancel: booking id=%s cancelled", id)
	return models.FromDomainBooking(booking), nil
}

// CanCancel проверяет право пользователя отменить бронирование
func CanCancel(booking *domain.Booking, userID uuid.UUID, access domain.Access) bool {
	if booking.UserID == userID {
		return access.Can(domain.PermCancelOwnBooking) || access.Can(domain.PermCancelAnyBooking)
	}
	return access.Can(domain.PermCancelAnyBooking)
}

// SplitByTime делит бронирования на будущие и прошедшие относительно now
func SplitByTime(bookings []*domain.Booking, now time.Time) (upcoming, past []*domain.Booking) {
	upcoming = make([]*domain.Booking, 0)
	past = make([]*domain.Booking, 0)

	for _, b := range bookings {
		if b.IsConfirmed() && b.EndTime.After(now) {
			upcoming = append(upcoming, b)
		} else {
			past = append(past, b)
		}
	}

	// репозиторий сортирует по возрастанию начала
	for i, j := 0, len(past)-1; i < j; i, j = i+1, j-1 {
		past[i], past[j] = past[j], past[i]
	}

	return upcoming, past
}

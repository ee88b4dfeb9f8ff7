package extend_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RoomBooking/internal/service/availability"
	"github.com/m04kA/SMC-RoomBooking/internal/service/policy"
)

// UseCase use case для продления бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	settings     SettingsProvider
	availability AvailabilityChecker
	txManager    TransactionManager
	metrics      Metrics
	loc          *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settings SettingsProvider,
	availability AvailabilityChecker,
	txManager TransactionManager,
	metrics Metrics,
	loc *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settings:     settings,
		availability: availability,
		txManager:    txManager,
		metrics:      metrics,
		loc:          loc,
		logger:       logger,
	}
}

// Execute выполняет use case продления бронирования
//
// Чтение, проверки и обновление выполняются в одной сериализуемой транзакции:
// строка бронирования блокируется до записи нового окончания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ExtendBooking: booking=%s, user=%s, new_end=%s", req.BookingID, req.UserID, req.NewEndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ExtendBooking: validation failed: %v", err)
		return nil, err
	}

	limits := uc.settings.Limits(ctx)

	var extended *domain.Booking
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Бронирование и права владельца
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			return err
		}
		if booking.UserID != req.UserID || !req.Access.Can(domain.PermBookRoom) {
			return ErrForbidden
		}
		if !booking.CanBeExtended() {
			return ErrNotConfirmed
		}

		// 3. Новый интервал и длительность от исходного начала
		interval, err := extendedInterval(booking, req, uc.loc)
		if err != nil {
			return err
		}
		if err := policy.CheckDuration(interval, limits); err != nil {
			return fmt.Errorf("%w: %w", ErrPolicyViolation, err)
		}

		// 4. Доступность без учета самого бронирования
		if err := uc.availability.Check(txCtx, booking.RoomID, interval, &booking.ID); err != nil {
			return err
		}

		if err := uc.bookingRepo.UpdateEndTime(txCtx, booking.ID, interval.End); err != nil {
			return err
		}

		booking.EndTime = interval.End
		extended = booking
		return nil
	})
	if err != nil {
		mapped := uc.mapError(err)
		if errors.Is(mapped, ErrInternal) {
			uc.logger.Error("ExtendBooking: failed to extend booking id=%s: %v", req.BookingID, err)
		} else {
			uc.logger.Warn("ExtendBooking: booking id=%s rejected: %v", req.BookingID, err)
		}
		return nil, mapped
	}

	uc.metrics.BookingSaved("extend")
	uc.logger.Info("ExtendBooking: booking id=%s extended to %s", extended.ID, extended.EndTime.Format(time.RFC3339))

	return &Response{Booking: extended}, nil
}

func (uc *UseCase) mapError(err error) error {
	switch {
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrInvalidInput), errors.Is(err, ErrEndNotLater):
		return err
	case errors.Is(err, ErrPolicyViolation):
		uc.metrics.BookingRejected("policy")
		return err
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		return ErrBookingNotFound
	case errors.Is(err, ErrNotConfirmed), errors.Is(err, bookingRepo.ErrNotConfirmed):
		return ErrNotConfirmed
	case errors.Is(err, availability.ErrTimeBooked), errors.Is(err, bookingRepo.ErrTimeConflict):
		uc.metrics.BookingRejected("booked")
		return ErrTimeBooked
	case errors.Is(err, availability.ErrRoomBlocked), errors.Is(err, bookingRepo.ErrRoomBlocked):
		uc.metrics.BookingRejected("blocked")
		return ErrRoomBlocked
	case errors.Is(err, availability.ErrAvailabilityUnknown):
		uc.metrics.BookingRejected("unknown")
		return fmt.Errorf("%w: %v", ErrAvailabilityUnknown, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

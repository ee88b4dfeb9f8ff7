// Package blocks управляет блокировками комнат на время обслуживания
package blocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	roomRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/room"
	blockRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/roomblock"
	"github.com/m04kA/SMC-RoomBooking/internal/service/availability"
)

type Service struct {
	blockRepo    BlockRepository
	roomRepo     RoomRepository
	availability AvailabilityChecker
	txManager    TransactionManager
	logger       Logger
}

func NewService(
	blockRepo BlockRepository,
	roomRepo RoomRepository,
	availability AvailabilityChecker,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		blockRepo:    blockRepo,
		roomRepo:     roomRepo,
		availability: availability,
		txManager:    txManager,
		logger:       logger,
	}
}

// CreateRequest новая блокировка
type CreateRequest struct {
	RoomID    uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Reason    *string
	CreatedBy uuid.UUID
}

// List блокировки, пересекающие [from, to). roomID опционален
func (s *Service) List(ctx context.Context, roomID *uuid.UUID, from, to time.Time) ([]*domain.RoomBlock, error) {
	blocks, err := s.blockRepo.ListInRange(ctx, roomID, from, to)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return blocks, nil
}

// Create создает блокировку
// Интервал не должен пересекаться ни с бронированиями, ни с другими блокировками
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*domain.RoomBlock, error) {
	interval := domain.NewInterval(req.StartTime, req.EndTime)
	if interval.IsEmpty() {
		return nil, fmt.Errorf("%w: end time must be after start time", ErrInvalidInput)
	}
	if req.Reason != nil {
		reason := strings.TrimSpace(*req.Reason)
		if len(reason) > domain.MaxBlockReasonLength {
			return nil, fmt.Errorf("%w: reason is longer than %d characters", ErrInvalidInput, domain.MaxBlockReasonLength)
		}
		req.Reason = &reason
	}

	if _, err := s.roomRepo.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("%w: Create - room lookup: %v", ErrInternal, err)
	}

	if err := s.availability.Check(ctx, req.RoomID, interval, nil); err != nil {
		return nil, mapAvailabilityError(err)
	}

	block := &domain.RoomBlock{
		RoomID:    req.RoomID,
		StartTime: interval.Start,
		EndTime:   interval.End,
		Reason:    req.Reason,
		CreatedBy: req.CreatedBy,
	}

	var created *domain.RoomBlock
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.blockRepo.Create(txCtx, block)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, blockRepo.ErrBookingConflict):
			return nil, ErrBookingConflict
		case errors.Is(err, blockRepo.ErrBlockConflict):
			return nil, ErrAlreadyBlocked
		}
		s.logger.Error("Create: repository error for room=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: block id=%s room=%s %s - %s", created.ID, created.RoomID,
		created.StartTime.Format(time.RFC3339), created.EndTime.Format(time.RFC3339))
	return created, nil
}

// Delete снимает блокировку
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.blockRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			return ErrBlockNotFound
		}
		s.logger.Error("Delete: repository error for block id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: block id=%s removed", id)
	return nil
}

func mapAvailabilityError(err error) error {
	switch {
	case errors.Is(err, availability.ErrTimeBooked):
		return ErrBookingConflict
	case errors.Is(err, availability.ErrRoomBlocked):
		return ErrAlreadyBlocked
	default:
		return fmt.Errorf("%w: %v", ErrAvailabilityUnknown, err)
	}
}

package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// BlockResponse ответ с данными блокировки
type BlockResponse struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"roomId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedBy uuid.UUID `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromDomainBlock(b *domain.RoomBlock) *BlockResponse {
	return &BlockResponse{
		ID:        b.ID,
		RoomID:    b.RoomID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Reason:    b.Reason,
		CreatedBy: b.CreatedBy,
		CreatedAt: b.CreatedAt,
	}
}

func FromDomainBlockList(blocks []*domain.RoomBlock) []*BlockResponse {
	result := make([]*BlockResponse, 0, len(blocks))
	for _, b := range blocks {
		result = append(result, FromDomainBlock(b))
	}
	return result
}

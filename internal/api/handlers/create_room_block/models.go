package create_room_block

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/service/blocks"
)

// CreateBlockRequest HTTP request model. Время в RFC3339
type CreateBlockRequest struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Reason    *string   `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateBlockRequest) ToServiceRequest(roomID, createdBy uuid.UUID) *blocks.CreateRequest {
	return &blocks.CreateRequest{
		RoomID:    roomID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Reason:    r.Reason,
		CreatedBy: createdBy,
	}
}

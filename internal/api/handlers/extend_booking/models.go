package extend_booking

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	extendBooking "github.com/m04kA/SMC-RoomBooking/internal/usecase/extend_booking"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// ExtendBookingRequest HTTP request model
type ExtendBookingRequest struct {
	EndTime string `json:"endTime"` // "11:30"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ExtendBookingRequest) ToUseCaseRequest(bookingID, userID uuid.UUID, access domain.Access) (*extendBooking.Request, error) {
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &extendBooking.Request{
		BookingID:  bookingID,
		UserID:     userID,
		Access:     access,
		NewEndTime: endTime,
	}, nil
}

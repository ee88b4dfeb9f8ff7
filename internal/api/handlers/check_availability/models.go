package check_availability

import (
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	checkAvailability "github.com/m04kA/SMC-RoomBooking/internal/usecase/check_availability"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

var (
	errInvalidRoomID  = errors.New("invalid room_id")
	errInvalidDate    = errors.New("invalid date")
	errInvalidSlot    = errors.New("invalid slot index")
	errInvalidExclude = errors.New("invalid exclude")
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Valid     bool      `json:"valid"`
	Error     string    `json:"error,omitempty"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// ParseQuery собирает запрос use case из query параметров
// room_id, date, start, end или from_slot, to_slot, exclude
func ParseQuery(q url.Values, loc *time.Location) (*checkAvailability.Request, error) {
	roomID, err := uuid.Parse(q.Get("room_id"))
	if err != nil {
		return nil, errInvalidRoomID
	}

	date, err := time.ParseInLocation(domain.DateFormat, q.Get("date"), loc)
	if err != nil {
		return nil, errInvalidDate
	}

	req := &checkAvailability.Request{
		RoomID:    roomID,
		Date:      date,
		StartTime: types.TimeString(q.Get("start")),
		EndTime:   types.TimeString(q.Get("end")),
	}

	for name, dst := range map[string]**int{"from_slot": &req.FromSlot, "to_slot": &req.ToSlot} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errInvalidSlot
		}
		*dst = &v
	}

	if raw := q.Get("exclude"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errInvalidExclude
		}
		req.ExcludeBookingID = &id
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Valid:     resp.Valid,
		Error:     resp.Error,
		StartTime: resp.StartTime,
		EndTime:   resp.EndTime,
	}
}

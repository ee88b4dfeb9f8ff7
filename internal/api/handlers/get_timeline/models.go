package get_timeline

import (
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	blockModels "github.com/m04kA/SMC-RoomBooking/internal/service/blocks/models"
	bookingModels "github.com/m04kA/SMC-RoomBooking/internal/service/bookings/models"
	roomModels "github.com/m04kA/SMC-RoomBooking/internal/service/rooms/models"
	getTimeline "github.com/m04kA/SMC-RoomBooking/internal/usecase/get_timeline"
)

// TimelineResponse HTTP response model
type TimelineResponse struct {
	Date     string                     `json:"date"`
	Slots    []SlotResponse             `json:"slots"`
	Rooms    []*roomModels.RoomResponse `json:"rooms"`
	Bookings []BookingCellResponse      `json:"bookings"`
	Blocks   []BlockCellResponse        `json:"blocks"`
}

type SlotResponse struct {
	Index   int    `json:"index"`
	Time    string `json:"time"`
	Display string `json:"display"`
}

// BookingCellResponse бронирование на слотах [startSlot, endSlot)
type BookingCellResponse struct {
	Booking   *bookingModels.BookingResponse `json:"booking"`
	StartSlot int                            `json:"startSlot"`
	EndSlot   int                            `json:"endSlot"`
	Span      int                            `json:"span"`
}

type BlockCellResponse struct {
	Block     *blockModels.BlockResponse `json:"block"`
	StartSlot int                        `json:"startSlot"`
	EndSlot   int                        `json:"endSlot"`
	Span      int                        `json:"span"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTimeline.Response) *TimelineResponse {
	out := &TimelineResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Slots:    make([]SlotResponse, 0, len(resp.Slots)),
		Rooms:    roomModels.FromDomainRoomList(resp.Rooms),
		Bookings: make([]BookingCellResponse, 0, len(resp.Bookings)),
		Blocks:   make([]BlockCellResponse, 0, len(resp.Blocks)),
	}

	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{Index: s.Index, Time: s.Time.String(), Display: s.Display})
	}
	for _, c := range resp.Bookings {
		out.Bookings = append(out.Bookings, BookingCellResponse{
			Booking:   c.Booking,
			StartSlot: c.StartSlot,
			EndSlot:   c.EndSlot,
			Span:      c.Span,
		})
	}
	for _, b := range resp.Blocks {
		out.Blocks = append(out.Blocks, BlockCellResponse{
			Block:     blockModels.FromDomainBlock(b.Block),
			StartSlot: b.StartSlot,
			EndSlot:   b.EndSlot,
			Span:      b.Span,
		})
	}

	return out
}

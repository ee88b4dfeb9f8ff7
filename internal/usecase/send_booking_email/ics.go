package send_booking_email

import (
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

const (
	productID  = "-//SMC RoomBooking//Booking Invite//EN"
	uidDomain  = "@roombooking"
	busyStatus = "X-MICROSOFT-CDO-BUSYSTATUS"
)

// buildInvite строит VCALENDAR с одним подтвержденным событием
// Организатор - владелец бронирования, место - комната и этаж
func buildInvite(req *Request, now time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodRequest)
	cal.SetProductId(productID)

	uid := req.Booking.ID
	if uid == "" {
		uid = req.Booking.StartTime.UTC().Format("20060102T150405Z") + "-" + strings.ToLower(req.User.Email)
	}

	event := cal.AddEvent(uid + uidDomain)
	event.SetDtStampTime(now.UTC())
	event.SetStartAt(req.Booking.StartTime.UTC())
	event.SetEndAt(req.Booking.EndTime.UTC())
	event.SetSummary(req.Booking.Title)
	event.SetDescription(description(req))
	event.SetLocation(location(req.Room))
	event.SetStatus(ics.ObjectStatusConfirmed)
	event.SetTimeTransparency(ics.TransparencyOpaque)
	event.AddProperty(ics.ComponentProperty(busyStatus), "BUSY")
	event.SetOrganizer("mailto:"+req.User.Email, ics.WithCN(req.User.FullName))

	return cal.Serialize()
}

func description(req *Request) string {
	if req.Booking.Description != nil && strings.TrimSpace(*req.Booking.Description) != "" {
		return *req.Booking.Description
	}
	return "Booking in room " + req.Room.Name
}

func location(room *RoomData) string {
	r := domain.Room{Name: room.Name, Floor: room.Floor}
	return room.Name + " - " + r.FloorLabel()
}

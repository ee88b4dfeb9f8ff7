package send_booking_email

import (
	"bytes"
	"encoding/base64"
	"html/template"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/integrations/email"
)

const inviteFilename = "booking.ics"

var bodyTemplate = template.Must(template.New("booking").Parse(`<h2>Booking confirmed</h2>
<p>Hello {{.Name}},</p>
<p>Your booking has been confirmed.</p>
<h3>Booking details:</h3>
<ul>
  <li><strong>Room:</strong> {{.Location}}</li>
  <li><strong>Date:</strong> {{.Date}}</li>
  <li><strong>Time:</strong> {{.From}} - {{.To}}</li>
  <li><strong>Title:</strong> {{.Title}}</li>
  {{- if .Description}}
  <li><strong>Description:</strong> {{.Description}}</li>
  {{- end}}
  <li><strong>Attendees:</strong> {{.Attendees}}</li>
</ul>
`))

type bodyData struct {
	Name        string
	Location    string
	Date        string
	From        string
	To          string
	Title       string
	Description string
	Attendees   int
}

// buildMessage собирает письмо с ICS вложением. Время выводится в часовом поясе расписания
func buildMessage(req *Request, invite, from string, loc *time.Location) (email.Message, error) {
	start := req.Booking.StartTime.In(loc)
	end := req.Booking.EndTime.In(loc)

	data := bodyData{
		Name:      req.User.FullName,
		Location:  location(req.Room),
		Date:      start.Format("02.01.2006"),
		From:      start.Format("15:04"),
		To:        end.Format("15:04"),
		Title:     req.Booking.Title,
		Attendees: req.Booking.AttendeesCount,
	}
	if req.Booking.Description != nil {
		data.Description = *req.Booking.Description
	}

	var body bytes.Buffer
	if err := bodyTemplate.Execute(&body, data); err != nil {
		return email.Message{}, err
	}

	msg := email.Message{
		From:    from,
		To:      []string{req.User.Email},
		Subject: "Booking confirmed: " + req.Booking.Title,
		HTML:    body.String(),
	}
	if invite != "" {
		msg.Attachments = []email.Attachment{{
			Filename: inviteFilename,
			Content:  base64.StdEncoding.EncodeToString([]byte(invite)),
		}}
	}

	return msg, nil
}

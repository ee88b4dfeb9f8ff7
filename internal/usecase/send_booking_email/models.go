package send_booking_email

import "time"

// Request данные письма. Все три части обязательны
type Request struct {
	Booking *BookingData
	User    *UserData
	Room    *RoomData
}

type BookingData struct {
	ID             string
	Title          string
	Description    *string
	StartTime      time.Time
	EndTime        time.Time
	AttendeesCount int
}

type UserData struct {
	FullName string
	Email    string
}

type RoomData struct {
	Name  string
	Floor int
}

// Outcome результат обработки письма
type Outcome string

const (
	OutcomeSent    Outcome = "sent"
	OutcomeSkipped Outcome = "skipped" // провайдер не настроен
	OutcomeFailed  Outcome = "failed"
)

// Response исход отправки и текст приглашения в формате iCalendar
type Response struct {
	Outcome Outcome
	ICS     string
}

package send_booking_email

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sendBookingEmail "github.com/m04kA/SMC-RoomBooking/internal/usecase/send_booking_email"
)

type stubUseCase struct {
	got  *sendBookingEmail.Request
	resp *sendBookingEmail.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *sendBookingEmail.Request) (*sendBookingEmail.Response, error) {
	s.got = req
	if req.Booking == nil || req.User == nil || req.Room == nil {
		return nil, sendBookingEmail.ErrMissingData
	}
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const payload = `{
	"booking": {"id": "b1", "title": "Sync", "start_time": "2026-05-05T09:00:00Z", "end_time": "2026-05-05T10:00:00Z", "attendees_count": 2},
	"user": {"full_name": "Ana", "email": "ana@example.com"},
	"room": {"name": "Board", "floor": 2}
}`

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/api/v1/functions/send-booking-email", strings.NewReader(body))
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		resp       *sendBookingEmail.Response
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "sent",
			resp:       &sendBookingEmail.Response{Outcome: sendBookingEmail.OutcomeSent, ICS: "BEGIN:VCALENDAR"},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"Email sent successfully","ics":"BEGIN:VCALENDAR"}`,
		},
		{
			name:       "not configured",
			resp:       &sendBookingEmail.Response{Outcome: sendBookingEmail.OutcomeSkipped, ICS: "BEGIN:VCALENDAR"},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"Email service not configured","ics":"BEGIN:VCALENDAR"}`,
		},
		{
			name:       "provider failure",
			resp:       &sendBookingEmail.Response{Outcome: sendBookingEmail.OutcomeFailed, ICS: "BEGIN:VCALENDAR"},
			err:        fmt.Errorf("%w: 502", sendBookingEmail.ErrSendFailed),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to send email","ics":"BEGIN:VCALENDAR"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{resp: tt.resp, err: tt.err}
			rec := httptest.NewRecorder()

			NewHandler(uc, nopLogger{}).Handle(rec, post(payload))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			require.NotNil(t, uc.got.Booking)
			assert.Equal(t, time.Date(2026, 5, 5, 9, 0, 0, 0, time.UTC), uc.got.Booking.StartTime.UTC())
			assert.Equal(t, 2, uc.got.Room.Floor)
		})
	}
}

func TestHandler_Handle_MissingData(t *testing.T) {
	for name, body := range map[string]string{
		"empty object": `{}`,
		"no room":      `{"booking": {"id": "b1"}, "user": {"email": "a@b.c"}}`,
		"not json":     `booking`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			NewHandler(&stubUseCase{}, nopLogger{}).Handle(rec, post(body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"Missing required data"}`, rec.Body.String())
		})
	}
}

package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/policy"
	createBooking "github.com/m04kA/SMC-RoomBooking/internal/usecase/create_booking"
)

type stubUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.got = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	userID = uuid.New()
	roomID = uuid.New()
	booker = domain.Access{Role: domain.RoleUser, Grants: []domain.Permission{domain.PermBookRoom}}
)

func post(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	ctx := middleware.WithAccess(middleware.WithUserID(req.Context(), userID), booker)
	return req.WithContext(ctx)
}

func validBody() string {
	return fmt.Sprintf(`{"roomId":%q,"date":"2026-05-05","startTime":"09:00","endTime":"10:00","title":"Sync","attendeesCount":3}`, roomID)
}

func TestHandler_Handle_Created(t *testing.T) {
	uc := &stubUseCase{resp: &createBooking.Response{
		Booking: &domain.Booking{
			ID:        uuid.New(),
			RoomID:    roomID,
			UserID:    userID,
			Title:     "Sync",
			StartTime: time.Date(2026, 5, 5, 9, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 5, 5, 10, 0, 0, 0, time.UTC),
			Status:    domain.StatusConfirmed,
		},
		EmailQueued: true,
	}}
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, post(validBody()))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, userID, uc.got.UserID)
	assert.Equal(t, booker, uc.got.Access)
	assert.Equal(t, "09:00", uc.got.StartTime.String())
	assert.Equal(t, 3, uc.got.AttendeesCount)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Sync", body["title"])
	assert.Equal(t, true, body["emailQueued"])
	assert.Equal(t, "confirmed", body["status"])
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantError  string
	}{
		{name: "bad json", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "bad time", body: strings.Replace(validBody(), "09:00", "9am", 1), wantStatus: http.StatusBadRequest},
		{name: "forbidden", body: validBody(), err: createBooking.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "room not found", body: validBody(), err: createBooking.ErrRoomNotFound, wantStatus: http.StatusNotFound},
		{
			name:       "duration",
			body:       validBody(),
			err:        fmt.Errorf("%w: %w", createBooking.ErrPolicyViolation, &policy.LimitError{Err: policy.ErrExceedsMaxDuration, Limit: 4}),
			wantStatus: http.StatusBadRequest,
			wantError:  "бронирование не может быть длиннее 4 ч",
		},
		{name: "booked", body: validBody(), err: createBooking.ErrTimeBooked, wantStatus: http.StatusConflict, wantError: msgTimeBooked},
		{name: "blocked", body: validBody(), err: createBooking.ErrRoomBlocked, wantStatus: http.StatusConflict, wantError: msgRoomBlocked},
		{name: "unknown", body: validBody(), err: createBooking.ErrAvailabilityUnknown, wantStatus: http.StatusServiceUnavailable},
		{name: "internal", body: validBody(), err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			NewHandler(&stubUseCase{err: tt.err}, nopLogger{}).Handle(rec, post(tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.wantError), rec.Body.String())
			}
		})
	}
}

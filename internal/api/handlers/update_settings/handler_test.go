package update_settings

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RoomBooking/internal/service/settings"
)

type stubService struct {
	updated map[string]string
	err     error
}

func (s *stubService) Update(_ context.Context, values map[string]string) error {
	if s.err != nil {
		return s.err
	}
	s.updated = values
	return nil
}

func (s *stubService) GetAll(context.Context) (map[string]string, error) {
	return map[string]string{"max_booking_duration_hours": "6", "max_days_ahead": "30"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func put(body string) *http.Request {
	return httptest.NewRequest(http.MethodPut, "/api/v1/settings", strings.NewReader(body))
}

func TestHandler_Handle(t *testing.T) {
	svc := &stubService{}
	rec := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(rec, put(`{"max_booking_duration_hours":"6"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]string{"max_booking_duration_hours": "6"}, svc.updated)
	assert.JSONEq(t, `{"max_booking_duration_hours":"6","max_days_ahead":"30"}`, rec.Body.String())
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantError  string
	}{
		{name: "numbers are not strings", body: `{"max_days_ahead":30}`, wantStatus: http.StatusBadRequest, wantError: msgInvalidRequestBody},
		{name: "unknown key", body: `{"theme":"dark"}`, err: settings.ErrUnknownSetting, wantStatus: http.StatusBadRequest, wantError: msgUnknownSetting},
		{name: "zero", body: `{"max_days_ahead":"0"}`, err: settings.ErrInvalidValue, wantStatus: http.StatusBadRequest, wantError: msgInvalidValue},
		{name: "internal", body: `{"max_days_ahead":"7"}`, err: settings.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			NewHandler(&stubService{err: tt.err}, nopLogger{}).Handle(rec, put(tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.wantError), rec.Body.String())
			}
		})
	}
}

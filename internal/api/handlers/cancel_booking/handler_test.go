package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RoomBooking/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/bookings"
	"github.com/m04kA/SMC-RoomBooking/internal/service/bookings/models"
)

type stubService struct {
	access domain.Access
	err    error
}

func (s *stubService) Cancel(_ context.Context, id uuid.UUID, _ uuid.UUID, access domain.Access) (*models.BookingResponse, error) {
	s.access = access
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingResponse{ID: id, Status: string(domain.StatusCancelled)}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_Handle(t *testing.T) {
	manager := domain.Access{Role: domain.RoleManager, Grants: []domain.Permission{domain.PermCancelAnyBooking}}

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "cancelled", wantStatus: http.StatusOK},
		{name: "not found", err: bookings.ErrBookingNotFound, wantStatus: http.StatusNotFound},
		{name: "denied", err: bookings.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "twice", err: bookings.ErrAlreadyCancelled, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/"+id.String()+"/cancel", nil)
			req = mux.SetURLVars(req, map[string]string{"bookingId": id.String()})
			req = req.WithContext(middleware.WithAccess(middleware.WithUserID(req.Context(), uuid.New()), manager))
			svc := &stubService{err: tt.err}
			rec := httptest.NewRecorder()

			NewHandler(svc, nopLogger{}).Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, manager, svc.access)
		})
	}
}

package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ConsultationService/internal/api/middleware"
	"github.com/m04kA/SMC-ConsultationService/internal/service/bookings"
	"github.com/m04kA/SMC-ConsultationService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	actor uuid.UUID
	err   error
}

func (f *fakeService) Cancel(_ context.Context, bookingID, studentID uuid.UUID) (*models.BookingResponse, error) {
	f.actor = studentID
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingResponse{ID: bookingID.String(), Status: "cancelled"}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "cancelled", status: http.StatusOK},
		{name: "not found", err: bookings.ErrBookingNotFound, status: http.StatusNotFound},
		{name: "someone else's booking", err: bookings.ErrAccessDenied, status: http.StatusForbidden},
		{name: "already terminal", err: bookings.ErrInvalidTransition, status: http.StatusConflict},
		{name: "internal", err: bookings.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			r := mux.NewRouter()
			r.HandleFunc("/api/v1/bookings/{bookingId}/cancel", NewHandler(svc, nopLogger{}).Handle)

			userID := uuid.New()
			req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+uuid.NewString()+"/cancel", nil)
			req = req.WithContext(middleware.WithUserID(req.Context(), userID))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, userID, svc.actor)
		})
	}
}

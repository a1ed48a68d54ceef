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

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultationService/internal/api/middleware"
	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	createBooking "github.com/m04kA/SMC-ConsultationService/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got *createBooking.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	now := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	return &createBooking.Response{
		ID:          uuid.New(),
		StudentID:   req.StudentID,
		ProfessorID: req.ProfessorID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Mode:        req.Mode,
		Topic:       req.Topic,
		Status:      string(domain.StatusPending),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func doRequest(h *Handler, userID uuid.UUID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if userID != uuid.Nil {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func validBody(professorID uuid.UUID) string {
	return fmt.Sprintf(`{"professorId":%q,"date":"2026-10-20","startTime":"09:00","endTime":"10:15","mode":"online","topic":"Thesis chapter two"}`,
		professorID)
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})
	studentID, professorID := uuid.New(), uuid.New()

	rec := doRequest(h, studentID, validBody(professorID))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2026-10-20", resp.Date)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, studentID.String(), resp.StudentID)

	require.NotNil(t, uc.got)
	assert.Equal(t, studentID, uc.got.StudentID, "student id comes from the token")
	assert.Equal(t, professorID, uc.got.ProfessorID)
}

func TestHandle_Errors(t *testing.T) {
	professorID := uuid.New()

	tests := []struct {
		name   string
		body   string
		err    error
		status int
		field  string
	}{
		{name: "broken json", body: `{`, status: http.StatusBadRequest},
		{name: "forged student id", body: `{"studentId":"x"}`, status: http.StatusBadRequest},
		{name: "bad professor id", body: `{"professorId":"42","date":"2026-10-20","startTime":"09:00","endTime":"10:15"}`,
			status: http.StatusBadRequest, field: "professorId"},
		{name: "bad date", body: fmt.Sprintf(`{"professorId":%q,"date":"20.10.2026","startTime":"09:00","endTime":"10:15"}`, professorID),
			status: http.StatusBadRequest, field: "date"},
		{name: "slot unavailable", body: validBody(professorID), err: fmt.Errorf("%w: unset", createBooking.ErrSlotUnavailable),
			status: http.StatusConflict},
		{name: "professor not found", body: validBody(professorID), err: createBooking.ErrProfessorNotFound, status: http.StatusNotFound},
		{name: "not a student", body: validBody(professorID), err: createBooking.ErrNotStudent, status: http.StatusForbidden},
		{name: "validation from use case", body: validBody(professorID), err: domain.NewValidationError("topic", "too short"),
			status: http.StatusBadRequest, field: "topic"},
		{name: "store unavailable", body: validBody(professorID), err: createBooking.ErrUnavailable, status: http.StatusServiceUnavailable},
		{name: "internal", body: validBody(professorID), err: createBooking.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			rec := doRequest(h, uuid.New(), tt.body)
			assert.Equal(t, tt.status, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.field, body.Field)
		})
	}
}

func TestHandle_Unauthenticated(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := doRequest(h, uuid.Nil, validBody(uuid.New()))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

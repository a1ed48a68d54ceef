package get_my_schedule

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConsultationService/internal/api/middleware"
	"github.com/m04kA/SMC-ConsultationService/internal/service/schedules"
	"github.com/m04kA/SMC-ConsultationService/internal/service/schedules/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	actor uuid.UUID
	err   error
}

func (f *fakeService) GetEditorSchedule(_ context.Context, actorID uuid.UUID) (*models.ScheduleResponse, error) {
	f.actor = actorID
	if f.err != nil {
		return nil, f.err
	}
	return &models.ScheduleResponse{
		ProfessorID: actorID.String(),
		Blocks:      []models.BlockResponse{{ID: uuid.NewString(), Type: "consultation", VisibleToStudents: false}},
		Week:        []models.DayResponse{},
	}, nil
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	professorID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), professorID))
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, professorID, svc.actor)

	var body models.ScheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, professorID.String(), body.ProfessorID)
	require.Len(t, body.Blocks, 1)
	assert.False(t, body.Blocks[0].VisibleToStudents)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		noUser bool
		err    error
		status int
	}{
		{name: "no user", noUser: true, status: http.StatusUnauthorized},
		{name: "student", err: schedules.ErrNotProfessor, status: http.StatusForbidden},
		{name: "no profile", err: schedules.ErrProfileNotFound, status: http.StatusNotFound},
		{name: "storage down", err: schedules.ErrUnavailable, status: http.StatusServiceUnavailable},
		{name: "internal", err: schedules.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule", nil)
			if !tt.noUser {
				req = req.WithContext(middleware.WithUserID(req.Context(), uuid.New()))
			}
			rec := httptest.NewRecorder()
			NewHandler(&fakeService{err: tt.err}, nopLogger{}).Handle(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

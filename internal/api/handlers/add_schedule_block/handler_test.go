package add_schedule_block

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultationService/internal/api/middleware"
	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/internal/service/schedules"
	"github.com/m04kA/SMC-ConsultationService/internal/service/schedules/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	got *models.AddBlockRequest
	err error
}

func (f *fakeService) AddBlock(_ context.Context, actorID uuid.UUID, req *models.AddBlockRequest) (*models.BlockResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.BlockResponse{
		ID:                uuid.NewString(),
		ProfessorID:       actorID.String(),
		Weekday:           req.Weekday,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		Type:              req.Type,
		VisibleToStudents: true,
	}, nil
}

const body = `{"weekday":2,"startTime":"09:00","endTime":"10:15","type":"consultation"}`

func serve(h *Handler, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedule", strings.NewReader(payload))
	req = req.WithContext(middleware.WithUserID(req.Context(), uuid.New()))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	svc := &fakeService{}
	rec := serve(NewHandler(svc, nopLogger{}), body)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp models.BlockResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Weekday)
	assert.Equal(t, "consultation", resp.Type)
	assert.Nil(t, svc.got.VisibleToStudents)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		err     error
		status  int
		field   string
	}{
		{name: "foreign professor id rejected", payload: `{"professorId":"x","weekday":2}`, status: http.StatusBadRequest},
		{name: "slot occupied", payload: body, err: schedules.ErrSlotOccupied, status: http.StatusConflict},
		{name: "not professor", payload: body, err: schedules.ErrNotProfessor, status: http.StatusForbidden},
		{name: "bad weekday", payload: body, err: domain.NewValidationError("weekday", "must be between 1 and 5, got 6"),
			status: http.StatusBadRequest, field: "weekday"},
		{name: "unavailable", payload: body, err: schedules.ErrUnavailable, status: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&fakeService{err: tt.err}, nopLogger{}), tt.payload)
			assert.Equal(t, tt.status, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.field, resp.Field)
		})
	}
}

package delete_schedule_block

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
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
	actor   uuid.UUID
	blockID uuid.UUID
	calls   int
	err     error
}

func (f *fakeService) DeleteBlock(_ context.Context, actorID, blockID uuid.UUID) (*models.BlockResponse, error) {
	f.calls++
	f.actor, f.blockID = actorID, blockID
	if f.err != nil {
		return nil, f.err
	}
	return &models.BlockResponse{ID: blockID.String(), ProfessorID: actorID.String(), Weekday: 2, StartTime: "09:00", EndTime: "10:15"}, nil
}

func serve(svc *fakeService, blockID string, userID *uuid.UUID) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/schedule/{blockId}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/schedule/"+blockID, nil)
	if userID != nil {
		req = req.WithContext(middleware.WithUserID(req.Context(), *userID))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Deleted(t *testing.T) {
	svc := &fakeService{}
	professorID, blockID := uuid.New(), uuid.New()

	rec := serve(svc, blockID.String(), &professorID)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, professorID, svc.actor)
	assert.Equal(t, blockID, svc.blockID)

	var body models.BlockResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, blockID.String(), body.ID)
}

func TestHandle_Errors(t *testing.T) {
	professorID := uuid.New()

	tests := []struct {
		name    string
		blockID string
		userID  *uuid.UUID
		err     error
		status  int
	}{
		{name: "bad block id", blockID: "42", userID: &professorID, status: http.StatusBadRequest},
		{name: "no user", blockID: uuid.NewString(), status: http.StatusUnauthorized},
		{name: "not found", blockID: uuid.NewString(), userID: &professorID, err: schedules.ErrBlockNotFound, status: http.StatusNotFound},
		{name: "someone else's block", blockID: uuid.NewString(), userID: &professorID, err: schedules.ErrNotOwner, status: http.StatusForbidden},
		{name: "storage down", blockID: uuid.NewString(), userID: &professorID, err: fmt.Errorf("%w: Delete", schedules.ErrUnavailable), status: http.StatusServiceUnavailable},
		{name: "internal", blockID: uuid.NewString(), userID: &professorID, err: schedules.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			rec := serve(svc, tt.blockID, tt.userID)
			assert.Equal(t, tt.status, rec.Code)
		})
	}

	t.Run("service not reached on bad input", func(t *testing.T) {
		svc := &fakeService{}
		serve(svc, "not-a-uuid", &professorID)
		serve(svc, uuid.NewString(), nil)
		assert.Zero(t, svc.calls)
	})
}

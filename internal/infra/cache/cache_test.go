package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/pkg/ptr"
	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

func TestEncodeDecode(t *testing.T) {
	professorID := uuid.New()
	blocks := []*domain.ScheduleBlock{
		{
			ID:                uuid.New(),
			ProfessorID:       professorID,
			Weekday:           2,
			StartTime:         types.MustTimeString("09:30"),
			EndTime:           types.MustTimeString("10:45"),
			Type:              domain.BlockTypeConsultation,
			Note:              ptr.Ptr("E314"),
			VisibleToStudents: true,
			CreatedAt:         time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	raw, err := encode(blocks)
	require.NoError(t, err)

	got, err := decode(raw)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, blocks[0], got[0])

	_, err = decode([]byte("{broken"))
	assert.ErrorIs(t, err, ErrDecode)
}

func TestKey(t *testing.T) {
	id := uuid.MustParse("7f1d9c1e-4a8b-4e0c-9a43-2d5b8e6f0a11")
	assert.Equal(t, "schedule:visible:7f1d9c1e-4a8b-4e0c-9a43-2d5b8e6f0a11:0", key(id, 0))
	assert.Equal(t, "schedule:visible:7f1d9c1e-4a8b-4e0c-9a43-2d5b8e6f0a11:12", key(id, 12))
	assert.Equal(t, "schedule:generation:7f1d9c1e-4a8b-4e0c-9a43-2d5b8e6f0a11", generationKey(id))
}

func TestNop(t *testing.T) {
	var c Nop
	blocks, gen, ok, err := c.GetVisible(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, gen)
	assert.Nil(t, blocks)
	assert.NoError(t, c.Invalidate(context.Background(), uuid.New()))
}

package schedule

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/pkg/ptr"
)

func TestListQuery(t *testing.T) {
	professorID := uuid.New()

	t.Run("all blocks outside transaction", func(t *testing.T) {
		query, args, err := listQuery(professorID, false, false).ToSql()
		require.NoError(t, err)

		assert.Equal(t,
			"SELECT id, professor_id, weekday, start_time, end_time, type, note, visible_to_students, created_at "+
				"FROM professor_schedules WHERE professor_id = $1 ORDER BY weekday ASC, start_time ASC",
			query)
		assert.Equal(t, []interface{}{professorID.String()}, args)
	})

	t.Run("visible blocks locked for share", func(t *testing.T) {
		query, args, err := listQuery(professorID, true, true).ToSql()
		require.NoError(t, err)

		assert.Contains(t, query, "visible_to_students = $2")
		assert.Contains(t, query, "ORDER BY weekday ASC, start_time ASC FOR SHARE")
		assert.Equal(t, []interface{}{professorID.String(), true}, args)
	})
}

func TestUpdateQuery(t *testing.T) {
	id, professorID := uuid.New(), uuid.New()

	query, args, err := updateQuery(id, professorID, domain.BlockUpdate{
		Note:              ptr.Ptr("CS200 / E314"),
		VisibleToStudents: ptr.Ptr(false),
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE professor_schedules SET note = $1, visible_to_students = $2")
	assert.Contains(t, query, "WHERE id = $3 AND professor_id = $4")
	assert.Contains(t, query, "RETURNING id, professor_id")
	assert.Equal(t, []interface{}{"CS200 / E314", false, id.String(), professorID.String()}, args)
}

func TestUpdateQuery_ClearNote(t *testing.T) {
	_, args, err := updateQuery(uuid.New(), uuid.New(), domain.BlockUpdate{Note: ptr.Ptr("")}).ToSql()
	require.NoError(t, err)
	assert.Nil(t, args[0])
}

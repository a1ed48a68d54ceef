package booking

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/pkg/ptr"
)

func TestTransitionQuery(t *testing.T) {
	id, actor := uuid.New(), uuid.New()

	t.Run("confirm guards on professor and pending", func(t *testing.T) {
		tr, ok := domain.TransitionFor(domain.ActionConfirm)
		require.True(t, ok)

		query, args, err := transitionQuery(id, tr, actor, ptr.Ptr("bring laptop")).ToSql()
		require.NoError(t, err)

		assert.Contains(t, query, "UPDATE bookings SET status = $1, updated_at = NOW(), professor_notes = $2")
		assert.Contains(t, query, "WHERE id = $3 AND professor_id = $4 AND status IN ($5)")
		assert.Contains(t, query, "RETURNING id, student_id, professor_id")
		assert.Equal(t, []interface{}{domain.StatusConfirmed, "bring laptop", id.String(), actor.String(), "pending"}, args)
	})

	t.Run("cancel guards on student and active statuses", func(t *testing.T) {
		tr, ok := domain.TransitionFor(domain.ActionCancel)
		require.True(t, ok)

		query, args, err := transitionQuery(id, tr, actor, nil).ToSql()
		require.NoError(t, err)

		assert.NotContains(t, query, "professor_notes =")
		assert.Contains(t, query, "student_id = $3 AND status IN ($4,$5)")
		assert.Equal(t, []interface{}{domain.StatusCancelled, id.String(), actor.String(), "pending", "confirmed"}, args)
	})
}

func TestListQuery(t *testing.T) {
	studentID := uuid.New()
	professorID := uuid.New()

	t.Run("student history", func(t *testing.T) {
		query, args, err := listQuery(domain.BookingsFilter{StudentID: &studentID}).ToSql()
		require.NoError(t, err)

		assert.Contains(t, query, "FROM bookings b JOIN profiles s ON s.id = b.student_id JOIN profiles p ON p.id = b.professor_id")
		assert.Contains(t, query, "WHERE b.student_id = $1")
		assert.Contains(t, query, "ORDER BY b.date DESC, b.start_time DESC")
		assert.Equal(t, []interface{}{studentID.String()}, args)
	})

	t.Run("professor agenda", func(t *testing.T) {
		status := domain.StatusConfirmed
		query, args, err := listQuery(domain.BookingsFilter{
			ProfessorID: &professorID,
			Status:      &status,
			OrderBy:     domain.OrderByDateAsc,
		}).ToSql()
		require.NoError(t, err)

		assert.Contains(t, query, "WHERE b.professor_id = $1 AND b.status = $2")
		assert.Contains(t, query, "ORDER BY b.date ASC, b.start_time ASC")
		assert.Equal(t, []interface{}{professorID.String(), status}, args)
	})

	t.Run("professor requests", func(t *testing.T) {
		query, _, err := listQuery(domain.BookingsFilter{
			ProfessorID: &professorID,
			OrderBy:     domain.OrderByCreatedDesc,
		}).ToSql()
		require.NoError(t, err)
		assert.Contains(t, query, "ORDER BY b.created_at DESC")
	})
}

package schedule

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/internal/infra/storage/pgerr"
	"github.com/m04kA/SMC-ConsultationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ConsultationService/pkg/psqlbuilder"
)

const table = "professor_schedules"

var columns = []string{
	"id",
	"professor_id",
	"weekday",
	"start_time",
	"end_time",
	"type",
	"note",
	"visible_to_students",
	"created_at",
}

// Repository репозиторий блоков недельного расписания преподавателей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет блок. Уникальность (professor_id, weekday, start_time) обеспечивает
// уникальный индекс, поэтому из двух конкурентных вставок успешна только одна.
func (r *Repository) Create(ctx context.Context, b *domain.ScheduleBlock) (*domain.ScheduleBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns[:8]...).
		Values(b.ID, b.ProfessorID, b.Weekday, b.StartTime, b.EndTime, b.Type, b.Note, b.VisibleToStudents).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, wrapErr(ErrBuildQuery, "Create - build insert query", err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&b.CreatedAt); err != nil {
		if pgerr.IsUniqueViolation(err) {
			return nil, ErrDuplicateSlot
		}
		if pgerr.IsForeignKeyViolation(err) {
			return nil, ErrProfessorNotFound
		}
		return nil, wrapErr(ErrExecQuery, "Create - execute insert", err)
	}

	return b, nil
}

// GetByID получает блок по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ScheduleBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, wrapErr(ErrBuildQuery, "GetByID - build select query", err)
	}

	b, err := scanBlock(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, wrapErr(ErrScanRow, "GetByID - scan block", err)
	}

	return b, nil
}

// ListByProfessor возвращает блоки преподавателя, упорядоченные по дню и времени начала.
// visibleOnly оставляет только блоки, видимые студентам.
// Внутри транзакции строки читаются с FOR SHARE, чтобы блок не удалили до конца транзакции.
func (r *Repository) ListByProfessor(ctx context.Context, professorID uuid.UUID, visibleOnly bool) ([]*domain.ScheduleBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := listQuery(professorID, visibleOnly, dbmetrics.IsInTransaction(ctx)).ToSql()
	if err != nil {
		return nil, wrapErr(ErrBuildQuery, "ListByProfessor - build select query", err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(ErrExecQuery, "ListByProfessor - execute query", err)
	}
	defer rows.Close()

	blocks := make([]*domain.ScheduleBlock, 0)
	for rows.Next() {
		b, err := scanBlock(rows)
		if err != nil {
			return nil, wrapErr(ErrScanRow, "ListByProfessor - scan block", err)
		}
		blocks = append(blocks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(ErrExecQuery, "ListByProfessor - iterate rows", err)
	}

	return blocks, nil
}

// Delete удаляет блок только если он принадлежит professorID и возвращает удаленный блок.
// ErrBlockNotFound означает, что блока нет или он чужой; различать случаи должен вызывающий.
func (r *Repository) Delete(ctx context.Context, id, professorID uuid.UUID) (*domain.ScheduleBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id, "professor_id": professorID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, wrapErr(ErrBuildQuery, "Delete - build delete query", err)
	}

	b, err := scanBlock(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, wrapErr(ErrExecQuery, "Delete - execute delete", err)
	}

	return b, nil
}

// Update меняет заметку и/или видимость блока владельца. Остальные поля неизменяемы.
func (r *Repository) Update(ctx context.Context, id, professorID uuid.UUID, upd domain.BlockUpdate) (*domain.ScheduleBlock, error) {
	if upd.IsEmpty() {
		b, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if b.ProfessorID != professorID {
			return nil, ErrBlockNotFound
		}
		return b, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := updateQuery(id, professorID, upd).ToSql()
	if err != nil {
		return nil, wrapErr(ErrBuildQuery, "Update - build update query", err)
	}

	b, err := scanBlock(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, wrapErr(ErrExecQuery, "Update - execute update", err)
	}

	return b, nil
}

func listQuery(professorID uuid.UUID, visibleOnly, lock bool) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"professor_id": professorID}).
		OrderBy("weekday ASC", "start_time ASC")

	if visibleOnly {
		builder = builder.Where(squirrel.Eq{"visible_to_students": true})
	}
	if lock {
		builder = builder.Suffix("FOR SHARE")
	}

	return builder
}

func updateQuery(id, professorID uuid.UUID, upd domain.BlockUpdate) squirrel.UpdateBuilder {
	builder := psqlbuilder.Update(table).
		Where(squirrel.Eq{"id": id, "professor_id": professorID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	if upd.Note != nil {
		if *upd.Note == "" {
			builder = builder.Set("note", nil)
		} else {
			builder = builder.Set("note", *upd.Note)
		}
	}
	if upd.VisibleToStudents != nil {
		builder = builder.Set("visible_to_students", *upd.VisibleToStudents)
	}

	return builder
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBlock(row rowScanner) (*domain.ScheduleBlock, error) {
	var b domain.ScheduleBlock
	err := row.Scan(
		&b.ID,
		&b.ProfessorID,
		&b.Weekday,
		&b.StartTime,
		&b.EndTime,
		&b.Type,
		&b.Note,
		&b.VisibleToStudents,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

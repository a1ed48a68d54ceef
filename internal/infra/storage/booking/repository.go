package booking

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

const table = "bookings"

var columns = []string{
	"id",
	"student_id",
	"professor_id",
	"date",
	"start_time",
	"end_time",
	"mode",
	"topic",
	"status",
	"professor_notes",
	"created_at",
	"updated_at",
}

var profileColumns = []string{
	"id",
	"role",
	"full_name",
	"email",
	"department",
	"program",
	"student_number",
	"teams_email",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, использует её: usecase создания
// проверяет слот и вставляет бронирование в одной транзакции.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if !b.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns[:10]...).
		Values(
			b.ID,
			b.StudentID,
			b.ProfessorID,
			b.Date,
			b.StartTime,
			b.EndTime,
			b.Mode,
			b.Topic,
			b.Status,
			b.ProfessorNotes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, wrapErr(ErrBuildQuery, "Create - build insert query", err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if pgerr.IsForeignKeyViolation(err) {
			return nil, ErrParticipantNotFound
		}
		return nil, wrapErr(ErrExecQuery, "Create - execute insert", err)
	}

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, wrapErr(ErrBuildQuery, "GetByID - build select query", err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, wrapErr(ErrScanRow, "GetByID - scan booking", err)
	}

	return b, nil
}

// GetView получает бронирование вместе с профилями студента и преподавателя.
// Если любого из профилей нет, бронирование считается не найденным.
func (r *Repository) GetView(ctx context.Context, id uuid.UUID) (*domain.BookingView, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := viewQuery().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, wrapErr(ErrBuildQuery, "GetView - build select query", err)
	}

	v, err := scanView(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, wrapErr(ErrScanRow, "GetView - scan booking", err)
	}

	return v, nil
}

// List возвращает бронирования студента или преподавателя вместе с профилями участников.
// Опционально фильтрует по статусу; порядок задается filter.OrderBy.
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingView, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := listQuery(filter).ToSql()
	if err != nil {
		return nil, wrapErr(ErrBuildQuery, "List - build select query", err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(ErrExecQuery, "List - execute query", err)
	}
	defer rows.Close()

	views := make([]*domain.BookingView, 0)
	for rows.Next() {
		v, err := scanView(rows)
		if err != nil {
			return nil, wrapErr(ErrScanRow, "List - scan booking", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(ErrExecQuery, "List - iterate rows", err)
	}

	return views, nil
}

// Transition атомарно переводит бронирование в новый статус.
// Строка обновляется, только если actorID совпадает с участником, которому разрешен переход,
// и текущий статус входит в t.From. Если ни одна строка не обновлена, возвращается
// ErrBookingNotFound; причину (нет записи, чужое бронирование, недопустимый статус)
// определяет вызывающий, перечитав бронирование.
func (r *Repository) Transition(ctx context.Context, id uuid.UUID, t domain.Transition, actorID uuid.UUID, notes *string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := transitionQuery(id, t, actorID, notes).ToSql()
	if err != nil {
		return nil, wrapErr(ErrBuildQuery, "Transition - build update query", err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, wrapErr(ErrExecQuery, "Transition - execute update", err)
	}

	return b, nil
}

func viewQuery() squirrel.SelectBuilder {
	cols := make([]string, 0, len(columns)+2*len(profileColumns))
	for _, c := range columns {
		cols = append(cols, "b."+c)
	}
	for _, c := range profileColumns {
		cols = append(cols, "s."+c)
	}
	for _, c := range profileColumns {
		cols = append(cols, "p."+c)
	}

	return psqlbuilder.Select(cols...).
		From(table + " b").
		Join("profiles s ON s.id = b.student_id").
		Join("profiles p ON p.id = b.professor_id")
}

func listQuery(filter domain.BookingsFilter) squirrel.SelectBuilder {
	builder := viewQuery()

	if filter.StudentID != nil {
		builder = builder.Where(squirrel.Eq{"b.student_id": *filter.StudentID})
	}
	if filter.ProfessorID != nil {
		builder = builder.Where(squirrel.Eq{"b.professor_id": *filter.ProfessorID})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"b.status": *filter.Status})
	}

	switch filter.OrderBy {
	case domain.OrderByDateAsc:
		builder = builder.OrderBy("b.date ASC", "b.start_time ASC")
	case domain.OrderByCreatedDesc:
		builder = builder.OrderBy("b.created_at DESC")
	default:
		builder = builder.OrderBy("b.date DESC", "b.start_time DESC")
	}

	return builder
}

func transitionQuery(id uuid.UUID, t domain.Transition, actorID uuid.UUID, notes *string) squirrel.UpdateBuilder {
	actorColumn := "student_id"
	if t.Actor == domain.ActorProfessor {
		actorColumn = "professor_id"
	}

	from := make([]string, len(t.From))
	for i, s := range t.From {
		from[i] = string(s)
	}

	builder := psqlbuilder.Update(table).
		Set("status", t.To).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{actorColumn: actorID}).
		Where(squirrel.Eq{"status": from}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	if notes != nil {
		builder = builder.Set("professor_notes", *notes)
	}

	return builder
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func bookingDest(b *domain.Booking) []interface{} {
	return []interface{}{
		&b.ID,
		&b.StudentID,
		&b.ProfessorID,
		&b.Date,
		&b.StartTime,
		&b.EndTime,
		&b.Mode,
		&b.Topic,
		&b.Status,
		&b.ProfessorNotes,
		&b.CreatedAt,
		&b.UpdatedAt,
	}
}

func profileDest(p *domain.Profile) []interface{} {
	return []interface{}{
		&p.ID,
		&p.Role,
		&p.FullName,
		&p.Email,
		&p.Department,
		&p.Program,
		&p.StudentNumber,
		&p.TeamsEmail,
		&p.CreatedAt,
	}
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(bookingDest(&b)...); err != nil {
		return nil, err
	}
	return &b, nil
}

func scanView(row rowScanner) (*domain.BookingView, error) {
	var v domain.BookingView
	dest := bookingDest(&v.Booking)
	dest = append(dest, profileDest(&v.Student)...)
	dest = append(dest, profileDest(&v.Professor)...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &v, nil
}

package profile

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

var professorColumns = []string{
	"id",
	"office_location",
	"department",
	"bio",
	"updated_at",
}

// Repository репозиторий профилей и расширений преподавателей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateProfile создает профиль пользователя.
// Для преподавателя вызывается в одной транзакции с CreateProfessor.
func (r *Repository) CreateProfile(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("profiles").
		Columns(profileColumns[:8]...).
		Values(p.ID, p.Role, p.FullName, p.Email, p.Department, p.Program, p.StudentNumber, p.TeamsEmail).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, wrapErr(ErrBuildQuery, "CreateProfile - build insert query", err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&p.CreatedAt); err != nil {
		if pgerr.IsUniqueViolation(err) {
			return nil, ErrProfileExists
		}
		return nil, wrapErr(ErrExecQuery, "CreateProfile - execute insert", err)
	}

	return p, nil
}

// CreateProfessor создает расширение профиля преподавателя
func (r *Repository) CreateProfessor(ctx context.Context, p *domain.Professor) (*domain.Professor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("professors").
		Columns("id", "office_location", "department", "bio").
		Values(p.ID, p.OfficeLocation, p.Department, p.Bio).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, wrapErr(ErrBuildQuery, "CreateProfessor - build insert query", err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&p.UpdatedAt); err != nil {
		if pgerr.IsUniqueViolation(err) {
			return nil, ErrProfileExists
		}
		if pgerr.IsForeignKeyViolation(err) {
			return nil, ErrProfileNotFound
		}
		return nil, wrapErr(ErrExecQuery, "CreateProfessor - execute insert", err)
	}

	return p, nil
}

// GetByID получает профиль по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(profileColumns...).
		From("profiles").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, wrapErr(ErrBuildQuery, "GetByID - build select query", err)
	}

	p, err := scanProfile(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, wrapErr(ErrScanRow, "GetByID - scan profile", err)
	}

	return p, nil
}

// UpdateProfile обновляет контактные поля профиля и возвращает обновленную запись
func (r *Repository) UpdateProfile(ctx context.Context, id uuid.UUID, upd *domain.ProfileUpdate) (*domain.Profile, error) {
	set := map[string]interface{}{}
	if upd.FullName != nil {
		set["full_name"] = *upd.FullName
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Department != nil {
		set["department"] = *upd.Department
	}
	if upd.Program != nil {
		set["program"] = *upd.Program
	}
	if upd.StudentNumber != nil {
		set["student_number"] = *upd.StudentNumber
	}
	if upd.TeamsEmail != nil {
		set["teams_email"] = *upd.TeamsEmail
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("profiles").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(profileColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, wrapErr(ErrBuildQuery, "UpdateProfile - build update query", err)
	}

	p, err := scanProfile(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			return nil, ErrProfileExists
		}
		return nil, wrapErr(ErrExecQuery, "UpdateProfile - execute update", err)
	}

	return p, nil
}

// UpdateProfessor обновляет расширение преподавателя (кабинет, кафедра, био)
func (r *Repository) UpdateProfessor(ctx context.Context, id uuid.UUID, upd *domain.ProfileUpdate) (*domain.Professor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update("professors").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(professorColumns, ", "))
	if upd.OfficeLocation != nil {
		builder = builder.Set("office_location", *upd.OfficeLocation)
	}
	if upd.Department != nil {
		builder = builder.Set("department", *upd.Department)
	}
	if upd.Bio != nil {
		builder = builder.Set("bio", *upd.Bio)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, wrapErr(ErrBuildQuery, "UpdateProfessor - build update query", err)
	}

	var p domain.Professor
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.OfficeLocation,
		&p.Department,
		&p.Bio,
		&p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfessorNotFound
	}
	if err != nil {
		return nil, wrapErr(ErrExecQuery, "UpdateProfessor - execute update", err)
	}

	return &p, nil
}

// GetProfessor получает преподавателя вместе с профилем одним запросом.
// Если отсутствует любая из двух записей, возвращается ErrProfessorNotFound.
func (r *Repository) GetProfessor(ctx context.Context, id uuid.UUID) (*domain.ProfessorDetail, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := professorDetailQuery().
		Where(squirrel.Eq{"pr.id": id}).
		ToSql()
	if err != nil {
		return nil, wrapErr(ErrBuildQuery, "GetProfessor - build select query", err)
	}

	d, err := scanProfessorDetail(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfessorNotFound
	}
	if err != nil {
		return nil, wrapErr(ErrScanRow, "GetProfessor - scan professor", err)
	}

	return d, nil
}

// ListProfessors возвращает каталог преподавателей, отсортированный по ФИО.
// search ищет без учета регистра по ФИО и кафедре.
func (r *Repository) ListProfessors(ctx context.Context, search string) ([]*domain.ProfessorDetail, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := listProfessorsQuery(search).ToSql()
	if err != nil {
		return nil, wrapErr(ErrBuildQuery, "ListProfessors - build select query", err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(ErrExecQuery, "ListProfessors - execute query", err)
	}
	defer rows.Close()

	result := make([]*domain.ProfessorDetail, 0)
	for rows.Next() {
		d, err := scanProfessorDetail(rows)
		if err != nil {
			return nil, wrapErr(ErrScanRow, "ListProfessors - scan professor", err)
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(ErrExecQuery, "ListProfessors - iterate rows", err)
	}

	return result, nil
}

func professorDetailQuery() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"pr.id",
		"pr.office_location",
		"pr.department",
		"pr.bio",
		"pr.updated_at",
		"p.id",
		"p.role",
		"p.full_name",
		"p.email",
		"p.department",
		"p.program",
		"p.student_number",
		"p.teams_email",
		"p.created_at",
	).
		From("professors pr").
		Join("profiles p ON p.id = pr.id")
}

func listProfessorsQuery(search string) squirrel.SelectBuilder {
	builder := professorDetailQuery().OrderBy("p.full_name ASC")

	search = strings.TrimSpace(search)
	if search != "" {
		pattern := "%" + escapeLike(search) + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"p.full_name": pattern},
			squirrel.ILike{"pr.department": pattern},
		})
	}

	return builder
}

// escapeLike экранирует спецсимволы шаблона LIKE
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID,
		&p.Role,
		&p.FullName,
		&p.Email,
		&p.Department,
		&p.Program,
		&p.StudentNumber,
		&p.TeamsEmail,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProfessorDetail(row rowScanner) (*domain.ProfessorDetail, error) {
	var d domain.ProfessorDetail
	err := row.Scan(
		&d.Professor.ID,
		&d.OfficeLocation,
		&d.Professor.Department,
		&d.Bio,
		&d.UpdatedAt,
		&d.Profile.ID,
		&d.Profile.Role,
		&d.Profile.FullName,
		&d.Profile.Email,
		&d.Profile.Department,
		&d.Profile.Program,
		&d.Profile.StudentNumber,
		&d.Profile.TeamsEmail,
		&d.Profile.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

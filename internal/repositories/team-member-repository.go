package repositories

import (
	"context"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const memberFields = "m.id, m.name, m.email, m.phone, m.position, m.employee_id, m.status, m.joining_date, m.team_id, m.created_at, m.updated_at"

// memberFilterColumns — какие поля фильтра разрешено транслировать в SQL.
var memberFilterColumns = map[string]string{
	"team_id": "m.team_id",
	"status":  "m.status",
}

type TeamMemberRepositoryInterface interface {
	GetMembers(ctx context.Context, filter types.Filter) ([]entities.TeamMember, uint64, error)
	FindMember(ctx context.Context, id uint64) (*entities.TeamMember, error)
	CreateMember(ctx context.Context, member entities.TeamMember) (uint64, error)
	UpdateMember(ctx context.Context, id uint64, member entities.TeamMember) error
	DeleteMember(ctx context.Context, id uint64) error

	// ListEmployeeCodes отдаёт снимок всех назначенных табельных кодов —
	// вход аллокатора. Вычитывается заново при каждом вызове.
	ListEmployeeCodes(ctx context.Context) ([]string, error)

	ExistsByEmail(ctx context.Context, email string, excludeID uint64) (bool, error)
	ExistsByPhone(ctx context.Context, phone string, excludeID uint64) (bool, error)
	ExistsByName(ctx context.Context, name string, excludeID uint64) (bool, error)
	ExistsByEmployeeID(ctx context.Context, employeeID string, excludeID uint64) (bool, error)

	CountMembers(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
	ListActiveTechnicians(ctx context.Context) ([]entities.TeamMember, error)
}

type TeamMemberRepository struct {
	storage *pgxpool.Pool
}

func NewTeamMemberRepository(storage *pgxpool.Pool) TeamMemberRepositoryInterface {
	return &TeamMemberRepository{storage: storage}
}

func (r *TeamMemberRepository) GetMembers(ctx context.Context, filter types.Filter) ([]entities.TeamMember, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	base := psql.Select().
		From("team_members m").
		LeftJoin("teams t ON t.id = m.team_id")

	for field, val := range filter.Filter {
		col, ok := memberFilterColumns[field]
		if !ok {
			continue
		}
		base = base.Where(sq.Eq{col: val})
	}
	if filter.Search != "" {
		base = base.Where(sq.Or{
			sq.ILike{"m.name": "%" + filter.Search + "%"},
			sq.ILike{"m.email": "%" + filter.Search + "%"},
		})
	}

	countQuery, countArgs, err := base.Columns("COUNT(m.id)").ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listBuilder := base.Columns(memberFields, "t.name AS team_name").OrderBy("m.id ASC")
	if filter.WithPagination && filter.Limit > 0 {
		listBuilder = listBuilder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var members []entities.TeamMember
	for rows.Next() {
		var m entities.TeamMember
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Email, &m.Phone, &m.Position, &m.EmployeeID,
			&m.Status, &m.JoiningDate, &m.TeamID, &m.CreatedAt, &m.UpdatedAt,
			&m.TeamName,
		); err != nil {
			return nil, 0, err
		}
		members = append(members, m)
	}

	return members, total, rows.Err()
}

func (r *TeamMemberRepository) FindMember(ctx context.Context, id uint64) (*entities.TeamMember, error) {
	query := `
		SELECT m.id, m.name, m.email, m.phone, m.position, m.employee_id, m.status,
		       m.joining_date, m.team_id, m.created_at, m.updated_at, t.name AS team_name
		FROM team_members m
			LEFT JOIN teams t ON t.id = m.team_id
		WHERE m.id = $1
	`

	var m entities.TeamMember
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.Email, &m.Phone, &m.Position, &m.EmployeeID,
		&m.Status, &m.JoiningDate, &m.TeamID, &m.CreatedAt, &m.UpdatedAt,
		&m.TeamName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, err
	}

	return &m, nil
}

func (r *TeamMemberRepository) CreateMember(ctx context.Context, member entities.TeamMember) (uint64, error) {
	query := `
		INSERT INTO team_members (name, email, phone, position, employee_id, status, joining_date, team_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		member.Name, member.Email, member.Phone, member.Position,
		member.EmployeeID, member.Status, member.JoiningDate, member.TeamID,
	).Scan(&id)
	if err != nil {
		return 0, mapPgError(err)
	}
	return id, nil
}

func (r *TeamMemberRepository) UpdateMember(ctx context.Context, id uint64, member entities.TeamMember) error {
	query := `
		UPDATE team_members
		SET name = $1, email = $2, phone = $3, position = $4, employee_id = $5,
		    status = $6, joining_date = $7, team_id = $8, updated_at = CURRENT_TIMESTAMP
		WHERE id = $9
	`

	result, err := r.storage.Exec(ctx, query,
		member.Name, member.Email, member.Phone, member.Position,
		member.EmployeeID, member.Status, member.JoiningDate, member.TeamID, id,
	)
	if err != nil {
		return mapPgError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrMemberNotFound
	}
	return nil
}

func (r *TeamMemberRepository) DeleteMember(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return mapPgError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrMemberNotFound
	}
	return nil
}

func (r *TeamMemberRepository) ListEmployeeCodes(ctx context.Context) ([]string, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT employee_id FROM team_members WHERE employee_id IS NOT NULL`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}

	return codes, rows.Err()
}

func (r *TeamMemberRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM team_members WHERE email = $1 AND id <> $2)`, email, excludeID)
}

func (r *TeamMemberRepository) ExistsByPhone(ctx context.Context, phone string, excludeID uint64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM team_members WHERE phone = $1 AND id <> $2)`, phone, excludeID)
}

func (r *TeamMemberRepository) ExistsByName(ctx context.Context, name string, excludeID uint64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM team_members WHERE name = $1 AND id <> $2)`, name, excludeID)
}

func (r *TeamMemberRepository) ExistsByEmployeeID(ctx context.Context, employeeID string, excludeID uint64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM team_members WHERE employee_id = $1 AND id <> $2)`, employeeID, excludeID)
}

func (r *TeamMemberRepository) exists(ctx context.Context, query string, value string, excludeID uint64) (bool, error) {
	var exists bool
	err := r.storage.QueryRow(ctx, query, value, excludeID).Scan(&exists)
	return exists, err
}

func (r *TeamMemberRepository) CountMembers(ctx context.Context) (int, error) {
	var count int
	err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM team_members`).Scan(&count)
	return count, err
}

func (r *TeamMemberRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.storage.QueryRow(ctx,
		`SELECT COUNT(*) FROM team_members WHERE status = $1`, status).Scan(&count)
	return count, err
}

// ListActiveTechnicians — активные сотрудники для выпадающих списков форм.
func (r *TeamMemberRepository) ListActiveTechnicians(ctx context.Context) ([]entities.TeamMember, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT m.id, m.name, m.email, m.phone, m.position, m.employee_id, m.status,
		       m.joining_date, m.team_id, m.created_at, m.updated_at
		FROM team_members m
		WHERE m.status = 'active'
		ORDER BY m.name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []entities.TeamMember
	for rows.Next() {
		var m entities.TeamMember
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Email, &m.Phone, &m.Position, &m.EmployeeID,
			&m.Status, &m.JoiningDate, &m.TeamID, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

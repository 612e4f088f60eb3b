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

const teamFields = "t.id, t.name, t.department, t.company, t.description, t.created_at, t.updated_at"

type TeamRepositoryInterface interface {
	GetTeams(ctx context.Context, filter types.Filter) ([]entities.Team, uint64, error)
	GetRecentTeams(ctx context.Context, limit int) ([]entities.Team, error)
	FindTeam(ctx context.Context, id uint64) (*entities.Team, error)
	ExistsByName(ctx context.Context, name string, excludeID uint64) (bool, error)
	CreateTeam(ctx context.Context, team entities.Team) (uint64, error)
	UpdateTeam(ctx context.Context, id uint64, team entities.Team) error
	DeleteTeam(ctx context.Context, id uint64) error
	CountTeams(ctx context.Context) (int, error)
}

type TeamRepository struct {
	storage *pgxpool.Pool
}

func NewTeamRepository(storage *pgxpool.Pool) TeamRepositoryInterface {
	return &TeamRepository{storage: storage}
}

func (r *TeamRepository) GetTeams(ctx context.Context, filter types.Filter) ([]entities.Team, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	base := psql.Select().
		From("teams t").
		LeftJoin("team_members m ON m.team_id = t.id")

	if filter.Search != "" {
		base = base.Where(sq.ILike{"t.name": "%" + filter.Search + "%"})
	}

	countQuery, countArgs, err := psql.Select("COUNT(DISTINCT t.id)").From("teams t").ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listBuilder := base.
		Columns(teamFields, "COUNT(m.id) AS member_count").
		GroupBy("t.id").
		OrderBy("t.id ASC")
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

	var teams []entities.Team
	for rows.Next() {
		var t entities.Team
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Department, &t.Company, &t.Description,
			&t.CreatedAt, &t.UpdatedAt, &t.MemberCount,
		); err != nil {
			return nil, 0, err
		}
		teams = append(teams, t)
	}

	return teams, total, rows.Err()
}

func (r *TeamRepository) GetRecentTeams(ctx context.Context, limit int) ([]entities.Team, error) {
	query := `
		SELECT t.id, t.name, t.department, t.company, t.description, t.created_at, t.updated_at,
		       (SELECT COUNT(*) FROM team_members m WHERE m.team_id = t.id) AS member_count
		FROM teams t
		ORDER BY t.created_at DESC
		LIMIT $1
	`

	rows, err := r.storage.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []entities.Team
	for rows.Next() {
		var t entities.Team
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Department, &t.Company, &t.Description,
			&t.CreatedAt, &t.UpdatedAt, &t.MemberCount,
		); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}

	return teams, rows.Err()
}

func (r *TeamRepository) FindTeam(ctx context.Context, id uint64) (*entities.Team, error) {
	query := `
		SELECT t.id, t.name, t.department, t.company, t.description, t.created_at, t.updated_at,
		       (SELECT COUNT(*) FROM team_members m WHERE m.team_id = t.id) AS member_count
		FROM teams t
		WHERE t.id = $1
	`

	var t entities.Team
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.Department, &t.Company, &t.Description,
		&t.CreatedAt, &t.UpdatedAt, &t.MemberCount,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, err
	}

	return &t, nil
}

func (r *TeamRepository) ExistsByName(ctx context.Context, name string, excludeID uint64) (bool, error) {
	var exists bool
	err := r.storage.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM teams WHERE name = $1 AND id <> $2)`,
		name, excludeID,
	).Scan(&exists)
	return exists, err
}

func (r *TeamRepository) CreateTeam(ctx context.Context, team entities.Team) (uint64, error) {
	query := `
		INSERT INTO teams (name, department, company, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		team.Name, team.Department, team.Company, team.Description,
	).Scan(&id)
	if err != nil {
		return 0, mapPgError(err)
	}
	return id, nil
}

func (r *TeamRepository) UpdateTeam(ctx context.Context, id uint64, team entities.Team) error {
	query := `
		UPDATE teams
		SET name = $1, department = $2, company = $3, description = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
	`

	result, err := r.storage.Exec(ctx, query,
		team.Name, team.Department, team.Company, team.Description, id,
	)
	if err != nil {
		return mapPgError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrTeamNotFound
	}
	return nil
}

// DeleteTeam удаляет команду. Сотрудники команды удаляются каскадно
// (ON DELETE CASCADE в схеме) — это сознательное решение, а не случайность.
func (r *TeamRepository) DeleteTeam(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrTeamNotFound
	}
	return nil
}

func (r *TeamRepository) CountTeams(ctx context.Context) (int, error) {
	var count int
	err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM teams`).Scan(&count)
	return count, err
}

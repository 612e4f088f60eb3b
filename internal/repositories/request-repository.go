package repositories

import (
	"context"
	"time"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const requestFields = "r.id, r.title, r.description, r.equipment_id, r.technician_id, r.team_id, r.status, r.type, r.priority, r.scheduled_date, r.due_date, r.completed_date, r.estimated_hours, r.actual_hours, r.created_at, r.updated_at"

const requestJoins = `
	LEFT JOIN equipment e ON e.id = r.equipment_id
	LEFT JOIN team_members m ON m.id = r.technician_id
	LEFT JOIN teams t ON t.id = r.team_id`

var requestFilterColumns = map[string]string{
	"status":        "r.status",
	"type":          "r.type",
	"priority":      "r.priority",
	"team_id":       "r.team_id",
	"technician_id": "r.technician_id",
	"equipment_id":  "r.equipment_id",
}

type RequestRepositoryInterface interface {
	GetRequests(ctx context.Context, filter types.Filter) ([]entities.Request, uint64, error)
	FindRequest(ctx context.Context, id uint64) (*entities.Request, error)
	CreateRequest(ctx context.Context, req entities.Request) (uint64, error)
	UpdateRequest(ctx context.Context, id uint64, req entities.Request) error
	UpdateRequestStatus(ctx context.Context, id uint64, status string) error
	DeleteRequest(ctx context.Context, id uint64) error

	ListRecent(ctx context.Context, limit int) ([]entities.Request, error)
	ListAll(ctx context.Context) ([]entities.Request, error)

	CountRequests(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
	CountByType(ctx context.Context, reqType string) (int, error)
	CountOverdue(ctx context.Context, today time.Time) (int, error)
}

type RequestRepository struct {
	storage *pgxpool.Pool
}

func NewRequestRepository(storage *pgxpool.Pool) RequestRepositoryInterface {
	return &RequestRepository{storage: storage}
}

func scanRequestRow(row pgx.Row, r *entities.Request) error {
	return row.Scan(
		&r.ID, &r.Title, &r.Description, &r.EquipmentID, &r.TechnicianID, &r.TeamID,
		&r.Status, &r.Type, &r.Priority,
		&r.ScheduledDate, &r.DueDate, &r.CompletedDate,
		&r.EstimatedHours, &r.ActualHours,
		&r.CreatedAt, &r.UpdatedAt,
		&r.EquipmentName, &r.TechnicianName, &r.TeamName,
	)
}

func (r *RequestRepository) GetRequests(ctx context.Context, filter types.Filter) ([]entities.Request, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	base := psql.Select().
		From("requests r").
		LeftJoin("equipment e ON e.id = r.equipment_id").
		LeftJoin("team_members m ON m.id = r.technician_id").
		LeftJoin("teams t ON t.id = r.team_id")

	for field, val := range filter.Filter {
		col, ok := requestFilterColumns[field]
		if !ok {
			continue
		}
		base = base.Where(sq.Eq{col: val})
	}
	if filter.Search != "" {
		base = base.Where(sq.ILike{"r.title": "%" + filter.Search + "%"})
	}

	countQuery, countArgs, err := base.Columns("COUNT(r.id)").ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listBuilder := base.
		Columns(requestFields, "e.name AS equipment_name", "m.name AS technician_name", "t.name AS team_name").
		OrderBy("r.created_at DESC")
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

	var requests []entities.Request
	for rows.Next() {
		var req entities.Request
		if err := scanRequestRow(rows, &req); err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}

	return requests, total, rows.Err()
}

func (r *RequestRepository) FindRequest(ctx context.Context, id uint64) (*entities.Request, error) {
	query := `
		SELECT ` + requestFields + `,
		       e.name AS equipment_name, m.name AS technician_name, t.name AS team_name
		FROM requests r` + requestJoins + `
		WHERE r.id = $1
	`

	var req entities.Request
	err := scanRequestRow(r.storage.QueryRow(ctx, query, id), &req)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, err
	}

	return &req, nil
}

func (r *RequestRepository) CreateRequest(ctx context.Context, req entities.Request) (uint64, error) {
	query := `
		INSERT INTO requests (title, description, equipment_id, technician_id, team_id,
		                      status, type, priority, scheduled_date, due_date,
		                      completed_date, estimated_hours, actual_hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		req.Title, req.Description, req.EquipmentID, req.TechnicianID, req.TeamID,
		req.Status, req.Type, req.Priority, req.ScheduledDate, req.DueDate,
		req.CompletedDate, req.EstimatedHours, req.ActualHours,
	).Scan(&id)
	if err != nil {
		return 0, mapPgError(err)
	}
	return id, nil
}

func (r *RequestRepository) UpdateRequest(ctx context.Context, id uint64, req entities.Request) error {
	query := `
		UPDATE requests
		SET title = $1, description = $2, equipment_id = $3, technician_id = $4,
		    team_id = $5, status = $6, type = $7, priority = $8,
		    scheduled_date = $9, due_date = $10, completed_date = $11,
		    estimated_hours = $12, actual_hours = $13, updated_at = CURRENT_TIMESTAMP
		WHERE id = $14
	`

	result, err := r.storage.Exec(ctx, query,
		req.Title, req.Description, req.EquipmentID, req.TechnicianID,
		req.TeamID, req.Status, req.Type, req.Priority,
		req.ScheduledDate, req.DueDate, req.CompletedDate,
		req.EstimatedHours, req.ActualHours, id,
	)
	if err != nil {
		return mapPgError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepository) UpdateRequestStatus(ctx context.Context, id uint64, status string) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE requests SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepository) DeleteRequest(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepository) ListRecent(ctx context.Context, limit int) ([]entities.Request, error) {
	query := `
		SELECT ` + requestFields + `,
		       e.name AS equipment_name, m.name AS technician_name, t.name AS team_name
		FROM requests r` + requestJoins + `
		ORDER BY r.created_at DESC
		LIMIT $1
	`
	return r.queryRequests(ctx, query, limit)
}

// ListAll — все заявки для канбана/календаря. Канбан и календарь показывают
// всю доску целиком, без пагинации.
func (r *RequestRepository) ListAll(ctx context.Context) ([]entities.Request, error) {
	query := `
		SELECT ` + requestFields + `,
		       e.name AS equipment_name, m.name AS technician_name, t.name AS team_name
		FROM requests r` + requestJoins + `
		ORDER BY r.created_at DESC
	`
	return r.queryRequests(ctx, query)
}

func (r *RequestRepository) queryRequests(ctx context.Context, query string, args ...interface{}) ([]entities.Request, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []entities.Request
	for rows.Next() {
		var req entities.Request
		if err := scanRequestRow(rows, &req); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func (r *RequestRepository) CountRequests(ctx context.Context) (int, error) {
	var count int
	err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM requests`).Scan(&count)
	return count, err
}

func (r *RequestRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.storage.QueryRow(ctx,
		`SELECT COUNT(*) FROM requests WHERE status = $1`, status).Scan(&count)
	return count, err
}

func (r *RequestRepository) CountByType(ctx context.Context, reqType string) (int, error) {
	var count int
	err := r.storage.QueryRow(ctx,
		`SELECT COUNT(*) FROM requests WHERE type = $1`, reqType).Scan(&count)
	return count, err
}

// CountOverdue — количество просроченных заявок на момент today.
// Признак не хранится в таблице, каждый запрос вычисляет его заново.
func (r *RequestRepository) CountOverdue(ctx context.Context, today time.Time) (int, error) {
	var count int
	err := r.storage.QueryRow(ctx, `
		SELECT COUNT(*) FROM requests
		WHERE due_date IS NOT NULL
		  AND due_date < $1::date
		  AND status NOT IN ('COMPLETED', 'CANCELLED')
	`, today).Scan(&count)
	return count, err
}

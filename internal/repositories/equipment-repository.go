package repositories

import (
	"context"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const equipmentFields = "e.id, e.name, e.category, e.company, e.status, e.location, e.used_in_location, e.work_center, e.description, e.maintenance_team_id, e.technician_id, e.assigned_date, e.scrap_date, e.created_at, e.updated_at"

var equipmentFilterColumns = map[string]string{
	"status":              "e.status",
	"category":            "e.category",
	"maintenance_team_id": "e.maintenance_team_id",
	"technician_id":       "e.technician_id",
}

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	ExistsByName(ctx context.Context, name string, excludeID uint64) (bool, error)
	CreateEquipment(ctx context.Context, eq entities.Equipment) (uint64, error)
	UpdateEquipment(ctx context.Context, id uint64, eq entities.Equipment) error
	DeleteEquipment(ctx context.Context, id uint64) error
	CountEquipment(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context) ([]dto.EquipmentStatusCountDTO, error)
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	base := psql.Select().
		From("equipment e").
		LeftJoin("teams t ON t.id = e.maintenance_team_id").
		LeftJoin("team_members m ON m.id = e.technician_id")

	for field, val := range filter.Filter {
		col, ok := equipmentFilterColumns[field]
		if !ok {
			continue
		}
		base = base.Where(sq.Eq{col: val})
	}
	if filter.Search != "" {
		base = base.Where(sq.ILike{"e.name": "%" + filter.Search + "%"})
	}

	countQuery, countArgs, err := base.Columns("COUNT(e.id)").ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listBuilder := base.
		Columns(equipmentFields, "t.name AS team_name", "m.name AS technician_name").
		OrderBy("e.id ASC")
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

	var items []entities.Equipment
	for rows.Next() {
		var e entities.Equipment
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Category, &e.Company, &e.Status, &e.Location,
			&e.UsedInLocation, &e.WorkCenter, &e.Description,
			&e.MaintenanceTeamID, &e.TechnicianID, &e.AssignedDate, &e.ScrapDate,
			&e.CreatedAt, &e.UpdatedAt,
			&e.MaintenanceTeamName, &e.TechnicianName,
		); err != nil {
			return nil, 0, err
		}
		items = append(items, e)
	}

	return items, total, rows.Err()
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query := `
		SELECT e.id, e.name, e.category, e.company, e.status, e.location,
		       e.used_in_location, e.work_center, e.description,
		       e.maintenance_team_id, e.technician_id, e.assigned_date, e.scrap_date,
		       e.created_at, e.updated_at,
		       t.name AS team_name, m.name AS technician_name
		FROM equipment e
			LEFT JOIN teams t ON t.id = e.maintenance_team_id
			LEFT JOIN team_members m ON m.id = e.technician_id
		WHERE e.id = $1
	`

	var e entities.Equipment
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.Category, &e.Company, &e.Status, &e.Location,
		&e.UsedInLocation, &e.WorkCenter, &e.Description,
		&e.MaintenanceTeamID, &e.TechnicianID, &e.AssignedDate, &e.ScrapDate,
		&e.CreatedAt, &e.UpdatedAt,
		&e.MaintenanceTeamName, &e.TechnicianName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, err
	}

	return &e, nil
}

func (r *EquipmentRepository) ExistsByName(ctx context.Context, name string, excludeID uint64) (bool, error) {
	var exists bool
	err := r.storage.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM equipment WHERE name = $1 AND id <> $2)`,
		name, excludeID,
	).Scan(&exists)
	return exists, err
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, eq entities.Equipment) (uint64, error) {
	query := `
		INSERT INTO equipment (name, category, company, status, location, used_in_location,
		                       work_center, description, maintenance_team_id, technician_id,
		                       assigned_date, scrap_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		eq.Name, eq.Category, eq.Company, eq.Status, eq.Location, eq.UsedInLocation,
		eq.WorkCenter, eq.Description, eq.MaintenanceTeamID, eq.TechnicianID,
		eq.AssignedDate, eq.ScrapDate,
	).Scan(&id)
	if err != nil {
		return 0, mapPgError(err)
	}
	return id, nil
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, eq entities.Equipment) error {
	query := `
		UPDATE equipment
		SET name = $1, category = $2, company = $3, status = $4, location = $5,
		    used_in_location = $6, work_center = $7, description = $8,
		    maintenance_team_id = $9, technician_id = $10, assigned_date = $11,
		    scrap_date = $12, updated_at = CURRENT_TIMESTAMP
		WHERE id = $13
	`

	result, err := r.storage.Exec(ctx, query,
		eq.Name, eq.Category, eq.Company, eq.Status, eq.Location, eq.UsedInLocation,
		eq.WorkCenter, eq.Description, eq.MaintenanceTeamID, eq.TechnicianID,
		eq.AssignedDate, eq.ScrapDate, id,
	)
	if err != nil {
		return mapPgError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEquipmentNotFound
	}
	return nil
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEquipmentNotFound
	}
	return nil
}

func (r *EquipmentRepository) CountEquipment(ctx context.Context) (int, error) {
	var count int
	err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM equipment`).Scan(&count)
	return count, err
}

// CountByStatus группирует оборудование по буквальному значению статуса.
// Таксономия не проверяется: нераспознанный статус просто образует свою группу.
func (r *EquipmentRepository) CountByStatus(ctx context.Context) ([]dto.EquipmentStatusCountDTO, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT status, COUNT(*) FROM equipment GROUP BY status ORDER BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []dto.EquipmentStatusCountDTO
	for rows.Next() {
		var c dto.EquipmentStatusCountDTO
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

package repositories

import (
	"context"
	"fmt"

	"gearguard/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportRepositoryInterface interface {
	GetReport(ctx context.Context, filter entities.ReportFilter) ([]entities.ReportItem, uint64, error)
}

type reportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) ReportRepositoryInterface {
	return &reportRepository{db: db}
}

func (r *reportRepository) GetReport(ctx context.Context, filter entities.ReportFilter) ([]entities.ReportItem, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	// Общая база для COUNT и выборки (FROM, JOIN, WHERE)
	baseSelect := psql.Select().
		From("requests r").
		LeftJoin("equipment e ON r.equipment_id = e.id").
		LeftJoin("teams t ON r.team_id = t.id").
		LeftJoin("team_members m ON r.technician_id = m.id")

	if filter.DateFrom != nil {
		baseSelect = baseSelect.Where(sq.GtOrEq{"r.created_at": filter.DateFrom})
	}
	if filter.DateTo != nil {
		baseSelect = baseSelect.Where(sq.LtOrEq{"r.created_at": filter.DateTo})
	}
	if len(filter.TeamIDs) > 0 {
		baseSelect = baseSelect.Where(sq.Eq{"r.team_id": filter.TeamIDs})
	}
	if len(filter.TechnicianIDs) > 0 {
		baseSelect = baseSelect.Where(sq.Eq{"r.technician_id": filter.TechnicianIDs})
	}
	if len(filter.Types) > 0 {
		baseSelect = baseSelect.Where(sq.Eq{"r.type": filter.Types})
	}
	if len(filter.Statuses) > 0 {
		baseSelect = baseSelect.Where(sq.Eq{"r.status": filter.Statuses})
	}
	if len(filter.Priorities) > 0 {
		baseSelect = baseSelect.Where(sq.Eq{"r.priority": filter.Priorities})
	}

	countBuilder := baseSelect.Columns("COUNT(r.id)")
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка сборки COUNT-запроса: %w", err)
	}

	var total uint64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка выполнения COUNT-запроса: %w", err)
	}

	dataBuilder := baseSelect.Columns(
		"r.id", "r.title", "r.type", "r.priority", "r.status",
		"e.name AS equipment_name", "t.name AS team_name", "m.name AS technician_name",
		"r.scheduled_date", "r.due_date", "r.completed_date",
		"r.estimated_hours", "r.actual_hours", "r.created_at",
	).OrderBy("r.created_at DESC")

	dataQuery, dataArgs, err := dataBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка сборки запроса реестра: %w", err)
	}

	rows, err := r.db.Query(ctx, dataQuery, dataArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка выполнения запроса реестра: %w", err)
	}
	defer rows.Close()

	var items []entities.ReportItem
	for rows.Next() {
		var item entities.ReportItem
		if err := rows.Scan(
			&item.RequestID, &item.Title, &item.Type, &item.Priority, &item.Status,
			&item.EquipmentName, &item.TeamName, &item.TechnicianName,
			&item.ScheduledDate, &item.DueDate, &item.CompletedDate,
			&item.EstimatedHours, &item.ActualHours, &item.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}

	return items, total, rows.Err()
}

package repositories

import (
	"context"

	"gearguard/internal/entities"

	"github.com/jackc/pgx/v5/pgxpool"
)

type MaintenanceHistoryRepositoryInterface interface {
	CreateRecord(ctx context.Context, record entities.MaintenanceHistory) (uint64, error)
	ListByRequest(ctx context.Context, requestID uint64) ([]entities.MaintenanceHistory, error)
}

type MaintenanceHistoryRepository struct {
	storage *pgxpool.Pool
}

func NewMaintenanceHistoryRepository(storage *pgxpool.Pool) MaintenanceHistoryRepositoryInterface {
	return &MaintenanceHistoryRepository{storage: storage}
}

func (r *MaintenanceHistoryRepository) CreateRecord(ctx context.Context, record entities.MaintenanceHistory) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx, `
		INSERT INTO maintenance_history (request_id, note, recorded_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, record.RequestID, record.Note, record.RecordedAt).Scan(&id)
	if err != nil {
		return 0, mapPgError(err)
	}
	return id, nil
}

func (r *MaintenanceHistoryRepository) ListByRequest(ctx context.Context, requestID uint64) ([]entities.MaintenanceHistory, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT id, request_id, note, recorded_at
		FROM maintenance_history
		WHERE request_id = $1
		ORDER BY recorded_at DESC
	`, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []entities.MaintenanceHistory
	for rows.Next() {
		var rec entities.MaintenanceHistory
		if err := rows.Scan(&rec.ID, &rec.RequestID, &rec.Note, &rec.RecordedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

package seeders

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// mapAllIDsByName загружает словарь "имя -> id" для справочной таблицы.
func mapAllIDsByName(ctx context.Context, tx pgx.Tx, table string) (map[string]uint64, error) {
	rows, err := tx.Query(ctx, fmt.Sprintf("SELECT id, name FROM %s", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]uint64)
	for rows.Next() {
		var id uint64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		result[name] = id
	}
	return result, rows.Err()
}

// mapEquipmentToTeam загружает словарь "оборудование -> обслуживающая команда".
func mapEquipmentToTeam(ctx context.Context, tx pgx.Tx) (map[uint64]uint64, error) {
	rows, err := tx.Query(ctx, "SELECT id, maintenance_team_id FROM equipment WHERE maintenance_team_id IS NOT NULL")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[uint64]uint64)
	for rows.Next() {
		var equipmentID, teamID uint64
		if err := rows.Scan(&equipmentID, &teamID); err != nil {
			return nil, err
		}
		result[equipmentID] = teamID
	}
	return result, rows.Err()
}

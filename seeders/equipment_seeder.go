package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedEquipments(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'equipment'...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE TABLE equipment RESTART IDENTITY CASCADE"); err != nil {
		return err
	}

	teamsMap, err := mapAllIDsByName(ctx, tx, "teams")
	if err != nil {
		return fmt.Errorf("ошибка получения ID команд: %w", err)
	}
	membersMap, err := mapAllIDsByName(ctx, tx, "team_members")
	if err != nil {
		return fmt.Errorf("ошибка получения ID сотрудников: %w", err)
	}

	query := `INSERT INTO equipment
			  (name, category, location, status, company, used_in_location, work_center, description, maintenance_team_id, technician_id)
			  VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8, $9, $10)`

	for _, e := range equipmentsData {
		teamID, ok := teamsMap[e.TeamName]
		if !ok {
			log.Printf("ПРЕДУПРЕЖДЕНИЕ: Команда '%s' не найдена, пропускаем оборудование '%s'.", e.TeamName, e.Name)
			continue
		}
		technicianID, ok := membersMap[e.TechnicianName]
		if !ok {
			log.Printf("ПРЕДУПРЕЖДЕНИЕ: Техник '%s' не найден, пропускаем оборудование '%s'.", e.TechnicianName, e.Name)
			continue
		}
		if _, err := tx.Exec(ctx, query,
			e.Name, e.Category, e.Location, e.Status, e.Company,
			e.UsedInLocation, e.WorkCenter, e.Description, teamID, technicianID,
		); err != nil {
			log.Printf("Ошибка при вставке оборудования '%s': %v", e.Name, err)
			return err
		}
	}

	return tx.Commit(ctx)
}

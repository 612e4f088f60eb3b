package seeders

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedRequests(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'requests'...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE TABLE requests RESTART IDENTITY CASCADE"); err != nil {
		return err
	}

	equipmentMap, err := mapAllIDsByName(ctx, tx, "equipment")
	if err != nil {
		return fmt.Errorf("ошибка получения ID оборудования: %w", err)
	}
	membersMap, err := mapAllIDsByName(ctx, tx, "team_members")
	if err != nil {
		return fmt.Errorf("ошибка получения ID сотрудников: %w", err)
	}
	equipmentToTeam, err := mapEquipmentToTeam(ctx, tx)
	if err != nil {
		return fmt.Errorf("ошибка получения связей оборудование-команда: %w", err)
	}

	query := `INSERT INTO requests
			  (title, description, equipment_id, technician_id, team_id, type, priority, status,
			   scheduled_date, due_date, completed_date, actual_hours)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	today := time.Now()
	offsetDate := func(offset *int) interface{} {
		if offset == nil {
			return nil
		}
		return today.AddDate(0, 0, *offset).Format("2006-01-02")
	}

	for _, r := range requestsData {
		equipmentID, ok := equipmentMap[r.EquipmentName]
		if !ok {
			log.Printf("ПРЕДУПРЕЖДЕНИЕ: Оборудование '%s' не найдено, пропускаем заявку '%s'.", r.EquipmentName, r.Title)
			continue
		}
		technicianID, ok := membersMap[r.TechnicianName]
		if !ok {
			log.Printf("ПРЕДУПРЕЖДЕНИЕ: Техник '%s' не найден, пропускаем заявку '%s'.", r.TechnicianName, r.Title)
			continue
		}

		// Команда заявки выводится из оборудования, как и при создании через API
		var teamID interface{}
		if id, ok := equipmentToTeam[equipmentID]; ok {
			teamID = id
		}

		if _, err := tx.Exec(ctx, query,
			r.Title, r.Description, equipmentID, technicianID, teamID,
			r.Type, r.Priority, r.Status,
			offsetDate(r.ScheduledOffset), offsetDate(r.DueOffset), offsetDate(r.CompletedOffset),
			r.ActualHours,
		); err != nil {
			log.Printf("Ошибка при вставке заявки '%s': %v", r.Title, err)
			return err
		}
	}

	return tx.Commit(ctx)
}

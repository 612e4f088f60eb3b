package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedMembers(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'team_members'...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE TABLE team_members RESTART IDENTITY CASCADE"); err != nil {
		return err
	}

	teamsMap, err := mapAllIDsByName(ctx, tx, "teams")
	if err != nil {
		return fmt.Errorf("ошибка получения ID команд: %w", err)
	}

	query := `INSERT INTO team_members (employee_id, name, email, phone, position, status, joining_date, team_id)
			  VALUES ($1, $2, $3, $4, $5, 'active', $6::date, $7)`

	for _, m := range membersData {
		teamID, ok := teamsMap[m.TeamName]
		if !ok {
			log.Printf("ПРЕДУПРЕЖДЕНИЕ: Команда '%s' не найдена, пропускаем сотрудника '%s'.", m.TeamName, m.Name)
			continue
		}
		if _, err := tx.Exec(ctx, query, m.EmployeeID, m.Name, m.Email, m.Phone, m.Position, m.JoiningDate, teamID); err != nil {
			log.Printf("Ошибка при вставке сотрудника '%s': %v", m.Name, err)
			return err
		}
	}

	return tx.Commit(ctx)
}

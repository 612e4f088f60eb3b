package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedTeams(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'teams'...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE TABLE teams RESTART IDENTITY CASCADE"); err != nil {
		return err
	}

	query := `INSERT INTO teams (name, department, company, description) VALUES ($1, $2, $3, $4)`
	for _, t := range teamsData {
		if _, err := tx.Exec(ctx, query, t.Name, t.Department, t.Company, t.Description); err != nil {
			log.Printf("Ошибка при вставке команды '%s': %v", t.Name, err)
			return err
		}
	}

	return tx.Commit(ctx)
}

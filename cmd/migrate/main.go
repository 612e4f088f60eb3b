package main

import (
	"database/sql"
	"flag"
	"log"

	"gearguard/migrations"
	"gearguard/pkg/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	command := flag.String("command", "up", "Команда goose: up, down, status, version")
	flag.Parse()

	cfg := config.New()
	log.Println("📦 Используется DSN:", cfg.Postgres.DSN)

	db, err := sql.Open("pgx", cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("❌ Не удалось открыть соединение с БД: %v", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("❌ Не удалось выбрать диалект: %v", err)
	}

	if err := goose.Run(*command, db, "."); err != nil {
		log.Fatalf("❌ Миграция завершилась с ошибкой: %v", err)
	}
	log.Println("✅ Готово")
}

package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDemoData наполняет базу демонстрационным набором: команды, сотрудники,
// оборудование и заявки. Порядок важен, таблицы зависят друг от друга.
func SeedDemoData(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения демонстрационных данных...")

	if err := seedTeams(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Команд (Teams): %v", err)
	}
	if err := seedMembers(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Сотрудников (TeamMembers): %v", err)
	}
	if err := seedEquipments(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Оборудования (Equipment): %v", err)
	}
	if err := seedRequests(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Заявок (Requests): %v", err)
	}

	log.Println("✅ Наполнение демонстрационных данных завершено!")
}

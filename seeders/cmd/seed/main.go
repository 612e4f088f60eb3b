package main

import (
	"flag"
	"log"

	"gearguard/pkg/config"
	"gearguard/pkg/database/postgresql"
	"gearguard/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	runDemo := flag.Bool("demo", false, "Наполнить базу демонстрационными данными (команды, сотрудники, оборудование, заявки)")
	flag.Parse()

	if !*runDemo {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Пример использования:")
		log.Println("  go run ./seeders/cmd/seed -demo")
		log.Println("======================================================")
		return
	}

	cfg := config.New()
	log.Println("📦 Используется DSN:", cfg.Postgres.DSN)
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	log.Println("======================================================")
	seeders.SeedDemoData(dbPool)
	log.Println("======================================================")
}

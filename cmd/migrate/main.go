package main

import (
	"log"

	"mindful-campus-be/internal/config"
	"mindful-campus-be/internal/model"
	"mindful-campus-be/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.Database.Driver, cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Printf("Migrating %s database...", cfg.Database.Driver)
	if err := database.Migrate(db, model.All()...); err != nil {
		log.Fatal("Error: ", err)
	}
	log.Println("Migration complete: session_bookings, mental_test_results, chatbot_messages")
}

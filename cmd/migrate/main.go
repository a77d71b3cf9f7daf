package main

import (
	"log"

	"github.com/armughan418/EPS-MY-SMS/app/config"
	"github.com/armughan418/EPS-MY-SMS/app/database"
)

// Standalone migration runner for deployments where the schema is applied
// before the server starts.
func main() {
	log.Println("Starting manual migration...")

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Manual migration completed successfully!")
}

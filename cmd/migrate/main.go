package main

import (
	"log"

	"github.com/fgagliano/Notas-Bernoulli/app/config"
	"github.com/fgagliano/Notas-Bernoulli/app/database"
)

// Runs the schema migrations without starting the web server, for
// provisioning a fresh database.
func main() {
	config.Load()
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		log.Fatal("Failed to get database instance")
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Println("Migration completed successfully")
}

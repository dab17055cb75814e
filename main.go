package main

import (
	"fmt"
	"log"

	"freight-app/config"
	"freight-app/controllers/idgen"
	"freight-app/database"
	"freight-app/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {

	config.LoadConfig()

	app := fiber.New()

	// Pastikan database ada
	database.EnsureDatabaseExists(config.DBName)

	db, err := database.GetDBConnection(config.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate models
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	// Setup CORS middleware
	config.SetupCORS(app)

	routes.SetupAuthRoutes(app)
	routes.SetupCustomerRoutes(app)
	routes.SetupSenderRoutes(app)
	routes.SetupKapalRoutes(app)
	routes.SetupBarangRoutes(app)
	routes.SetupContainerRoutes(app)
	routes.SetupReportRoutes(app)

	port := config.APP_PORT
	fmt.Println("🚀 Server berjalan di port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}

package routes

import (
	"freight-app/config"
	"freight-app/controllers"
	"freight-app/database"
	"freight-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupBarangRoutes(app *fiber.App) {
	api := app.Group(config.MAIN_ROUTES+"/barangs", middleware.AuthMiddleware)
	barangController := &controllers.BarangController{}
	api.Use(database.InjectDBMiddleware(barangController))

	api.Get("/", barangController.GetAllBarangs)
	api.Post("/", barangController.CreateBarang)
	api.Get("/template", barangController.DownloadTemplate)
	api.Post("/upload-excel", barangController.CreateBarangFromExcel)
	api.Get("/:id", barangController.GetBarangByID)
	api.Put("/:id", barangController.UpdateBarang)
	api.Delete("/:id", barangController.DeleteBarang)
}

package routes

import (
	"freight-app/config"
	"freight-app/controllers"
	"freight-app/database"
	"freight-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupKapalRoutes(app *fiber.App) {
	api := app.Group(config.MAIN_ROUTES+"/kapals", middleware.AuthMiddleware)
	kapalController := &controllers.KapalController{}
	api.Use(database.InjectDBMiddleware(kapalController))

	api.Get("/", kapalController.GetAllKapals)
	api.Post("/", kapalController.CreateKapal)
	api.Get("/:id", kapalController.GetKapalByID)
	api.Put("/:id", kapalController.UpdateKapal)
	api.Delete("/:id", kapalController.DeleteKapal)
}

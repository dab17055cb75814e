package routes

import (
	"freight-app/config"
	"freight-app/controllers"
	"freight-app/database"
	"freight-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupSenderRoutes(app *fiber.App) {
	api := app.Group(config.MAIN_ROUTES+"/senders", middleware.AuthMiddleware)
	senderController := &controllers.SenderController{}
	api.Use(database.InjectDBMiddleware(senderController))

	api.Get("/", senderController.GetAllSenders)
	api.Post("/", senderController.CreateSender)
	api.Get("/:id", senderController.GetSenderByID)
	api.Put("/:id", senderController.UpdateSender)
	api.Delete("/:id", senderController.DeleteSender)
}

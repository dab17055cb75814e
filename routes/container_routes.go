package routes

import (
	"freight-app/config"
	"freight-app/controllers"
	"freight-app/database"
	"freight-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupContainerRoutes(app *fiber.App) {
	api := app.Group(config.MAIN_ROUTES+"/containers", middleware.AuthMiddleware)
	containerController := &controllers.ContainerController{}
	api.Use(database.InjectDBMiddleware(containerController))

	api.Get("/", containerController.GetAllContainers)
	api.Post("/", containerController.CreateContainer)
	api.Get("/top", containerController.GetTopContainers)
	api.Get("/search-by-value", containerController.SearchContainersByValue)
	api.Get("/:id", containerController.GetContainerByID)
	api.Put("/:id", containerController.UpdateContainer)
	api.Post("/:id/assign", containerController.AssignBarang)
	api.Get("/:id/details", containerController.GetContainerDetails)
	api.Post("/:id/costs", containerController.AddDeliveryCost)
	api.Get("/:id/costs", containerController.GetDeliveryCosts)
	api.Get("/:id/summary", containerController.GetContainerSummary)
}

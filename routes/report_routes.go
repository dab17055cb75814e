package routes

import (
	"freight-app/config"
	"freight-app/controllers"
	"freight-app/database"
	"freight-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupReportRoutes(app *fiber.App) {
	api := app.Group(config.MAIN_ROUTES+"/reports", middleware.AuthMiddleware)
	reportController := &controllers.ReportController{}
	api.Use(database.InjectDBMiddleware(reportController))

	api.Get("/joa/:ref", reportController.GetJoaStatement)
	api.Get("/joa/:ref/export", reportController.ExportJoaStatement)
	api.Get("/lifting", reportController.GetLiftingReport)
}

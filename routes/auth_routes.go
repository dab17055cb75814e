package routes

import (
	"freight-app/config"
	"freight-app/controllers"
	"freight-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Post("/login", controllers.Login)

	apiAuth := app.Group(config.MAIN_ROUTES+"/auth", middleware.AuthMiddleware)
	apiAuth.Get("/logout", controllers.Logout)
	apiAuth.Get("/isLoggedIn", controllers.IsLoggedIn)
}

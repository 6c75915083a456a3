package routes

import (
	"github.com/gofiber/fiber/v2"

	"startupfuel.com/controllers"
)

func SetupRoutes(app *fiber.App) {
	controllers.InitAuthRoutes(app)
	controllers.InitPortfolioRoutes(app)
	controllers.InitTransactionRoutes(app)
	controllers.InitReportRoutes(app)
}

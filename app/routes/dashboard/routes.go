package dashboard

import "github.com/gofiber/fiber/v2"

func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/api/dashboard/stats", GetStatsAPI)
}

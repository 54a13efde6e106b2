package attendance

import "github.com/gofiber/fiber/v2"

func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/attendance")
	api.Put("/:class/:date", SaveAttendanceAPI)
	api.Get("/:class/:date", GetAttendanceAPI)
}

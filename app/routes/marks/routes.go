package marks

import "github.com/gofiber/fiber/v2"

// SetupMarksRoutes registers the exam-marks endpoints under the student
// resource.
func SetupMarksRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Put("/:studentId/marks", SaveMarksAPI)
	api.Get("/:studentId/marks", GetMarksAPI)
}

package students

import "github.com/gofiber/fiber/v2"

// SetupStudentsRoutes registers the student registry endpoints.
// /export must be registered before /:id so it is not captured as an id.
func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Get("/", ListStudentsAPI)
	api.Get("/export", ExportStudentsAPI)
	api.Get("/class/:class", ClassRosterAPI)
	api.Post("/", CreateStudentAPI)
	api.Get("/:id", GetStudentAPI)
	api.Put("/:id", UpdateStudentAPI)
	api.Put("/:id/roll", SetRollAPI)
	api.Delete("/:id", DeleteStudentAPI)
}

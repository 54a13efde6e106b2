package teachers

import "github.com/gofiber/fiber/v2"

func SetupTeachersRoutes(app *fiber.App) {
	api := app.Group("/api/teachers")
	api.Get("/", ListTeachersAPI)
	api.Post("/", CreateTeacherAPI)
	api.Get("/:id", GetTeacherAPI)
	api.Put("/:id", UpdateTeacherAPI)
	api.Delete("/:id", DeleteTeacherAPI)
}

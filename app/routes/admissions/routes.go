package admissions

import (
	"github.com/gofiber/fiber/v2"
)

func SetupAdmissionsRoutes(app *fiber.App) {
	api := app.Group("/api/admissions")
	api.Post("/", SubmitAdmissionAPI)          // Public application form
	api.Get("/", ListAdmissionsAPI)            // Staff review queue
	api.Get("/:code", GetAdmissionAPI)         // Public status tracking
	api.Put("/:code/status", SetStatusAPI)     // Approve / reject
}

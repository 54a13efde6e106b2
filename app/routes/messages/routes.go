package messages

import "github.com/gofiber/fiber/v2"

// SetupMessagesRoutes registers the contact inbox, teacher reports and
// notice-board endpoints.
func SetupMessagesRoutes(app *fiber.App) {
	contacts := app.Group("/api/contacts")
	contacts.Post("/", CreateContactAPI)
	contacts.Get("/", ListContactsAPI)
	contacts.Put("/:id/read", MarkContactReadAPI)
	contacts.Delete("/:id", DeleteContactAPI)

	reports := app.Group("/api/reports")
	reports.Post("/", CreateReportAPI)
	reports.Get("/", ListReportsAPI)
	reports.Delete("/:id", DeleteReportAPI)

	notices := app.Group("/api/notifications")
	notices.Post("/", CreateNotificationAPI)
	notices.Get("/", ListNotificationsAPI)
	notices.Delete("/:id", DeleteNotificationAPI)
}

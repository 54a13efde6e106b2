package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/devasathya74/pmsrbl/app/config"
	"github.com/devasathya74/pmsrbl/app/routes/admissions"
	"github.com/devasathya74/pmsrbl/app/routes/attendance"
	"github.com/devasathya74/pmsrbl/app/routes/dashboard"
	"github.com/devasathya74/pmsrbl/app/routes/marks"
	"github.com/devasathya74/pmsrbl/app/routes/messages"
	"github.com/devasathya74/pmsrbl/app/routes/students"
	"github.com/devasathya74/pmsrbl/app/routes/teachers"
)

// customErrorHandler turns unhandled errors into the JSON envelope all the
// API routes use.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Load configuration
	config.Load()

	// Initialize Firebase-backed stores
	if err := config.AppConfig.InitFirebase(context.Background()); err != nil {
		log.Fatal("Failed to initialize Firebase:", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.AppConfig.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Setup admissions routes
	admissions.SetupAdmissionsRoutes(app)

	// Setup students routes
	students.SetupStudentsRoutes(app)

	// Setup teachers routes
	teachers.SetupTeachersRoutes(app)

	// Setup attendance routes
	attendance.SetupAttendanceRoutes(app)

	// Setup exam marks routes
	marks.SetupMarksRoutes(app)

	// Setup contacts, reports and notifications routes
	messages.SetupMessagesRoutes(app)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	log.Println("Server starting on :" + config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

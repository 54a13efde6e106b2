package messages

import (
	"github.com/gofiber/fiber/v2"

	"github.com/devasathya74/pmsrbl/app/config"
	"github.com/devasathya74/pmsrbl/app/database"
	"github.com/devasathya74/pmsrbl/app/models"
	"github.com/devasathya74/pmsrbl/app/routes/helpers"
)

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}

// CreateContactAPI accepts a public enquiry from the contact form.
func CreateContactAPI(c *fiber.Ctx) error {
	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.BadRequest(c, "Invalid request body")
	}
	if err := helpers.Validate.Struct(&req); err != nil {
		return helpers.BadRequest(c, err.Error())
	}

	id, err := database.CreateContact(c.Context(), config.GetStore(), &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		return helpers.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "id": id})
}

// ListContactsAPI returns the inbox newest first. ?read=true or ?read=false
// narrows it.
func ListContactsAPI(c *fiber.Ctx) error {
	msgs, err := database.ListContacts(c.Context(), config.GetStore())
	if err != nil {
		return helpers.Error(c, err)
	}
	switch c.Query("read") {
	case "true":
		msgs = database.FilterContactsByRead(msgs, true)
	case "false":
		msgs = database.FilterContactsByRead(msgs, false)
	}
	return c.JSON(fiber.Map{
		"messages": msgs,
		"count":    len(msgs),
	})
}

func MarkContactReadAPI(c *fiber.Ctx) error {
	if err := database.MarkContactRead(c.Context(), config.GetStore(), c.Params("id")); err != nil {
		return helpers.Error(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func DeleteContactAPI(c *fiber.Ctx) error {
	if err := database.DeleteContact(c.Context(), config.GetStore(), c.Params("id")); err != nil {
		return helpers.Error(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

type reportRequest struct {
	FromName  string `json:"fromName" validate:"required"`
	FromID    string `json:"fromId"`
	FromClass string `json:"fromClass"`
	Subject   string `json:"subject" validate:"required"`
	Message   string `json:"message" validate:"required"`
	Date      string `json:"date"`
}

// CreateReportAPI files a teacher's report to the administration.
func CreateReportAPI(c *fiber.Ctx) error {
	var req reportRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.BadRequest(c, "Invalid request body")
	}
	if err := helpers.Validate.Struct(&req); err != nil {
		return helpers.BadRequest(c, err.Error())
	}

	id, err := database.CreateTeacherReport(c.Context(), config.GetStore(), &models.TeacherReport{
		FromName:  req.FromName,
		FromID:    req.FromID,
		FromClass: req.FromClass,
		Subject:   req.Subject,
		Message:   req.Message,
		Date:      req.Date,
	})
	if err != nil {
		return helpers.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "id": id})
}

func ListReportsAPI(c *fiber.Ctx) error {
	reports, err := database.ListTeacherReports(c.Context(), config.GetStore())
	if err != nil {
		return helpers.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"reports": reports,
		"count":   len(reports),
	})
}

func DeleteReportAPI(c *fiber.Ctx) error {
	if err := database.DeleteTeacherReport(c.Context(), config.GetStore(), c.Params("id")); err != nil {
		return helpers.Error(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

type notificationRequest struct {
	Icon    string `json:"icon"`
	Message string `json:"message" validate:"required"`
}

// CreateNotificationAPI posts a notice to the public notice board.
func CreateNotificationAPI(c *fiber.Ctx) error {
	var req notificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.BadRequest(c, "Invalid request body")
	}
	if err := helpers.Validate.Struct(&req); err != nil {
		return helpers.BadRequest(c, "Message is required")
	}

	id, err := database.CreateNotification(c.Context(), config.GetStore(), &models.Notification{
		Icon:    req.Icon,
		Message: req.Message,
	})
	if err != nil {
		return helpers.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "id": id})
}

// ListNotificationsAPI returns the notice board. ?active=true hides retired
// notices, which is what the public site requests.
func ListNotificationsAPI(c *fiber.Ctx) error {
	notices, err := database.ListNotifications(c.Context(), config.GetStore(), c.Query("active") == "true")
	if err != nil {
		return helpers.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"notifications": notices,
		"count":         len(notices),
	})
}

func DeleteNotificationAPI(c *fiber.Ctx) error {
	if err := database.DeleteNotification(c.Context(), config.GetStore(), c.Params("id")); err != nil {
		return helpers.Error(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

package attendance

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/devasathya74/pmsrbl/app/config"
	"github.com/devasathya74/pmsrbl/app/database"
	"github.com/devasathya74/pmsrbl/app/models"
	"github.com/devasathya74/pmsrbl/app/routes/helpers"
	"github.com/devasathya74/pmsrbl/app/store"
)

type attendanceRequest struct {
	TeacherID   string                           `json:"teacherId"`
	TeacherName string                           `json:"teacherName"`
	Records     map[string]models.PresenceStatus `json:"records" validate:"required"`
}

// SaveAttendanceAPI stores the day's register for a class. Saving the same
// class and date again replaces the earlier register wholesale.
func SaveAttendanceAPI(c *fiber.Ctx) error {
	var req attendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.BadRequest(c, "Invalid request body")
	}

	rec := &models.AttendanceRecord{
		Class:       c.Params("class"),
		Date:        c.Params("date"),
		TeacherID:   req.TeacherID,
		TeacherName: req.TeacherName,
		Records:     req.Records,
	}
	if err := database.SaveAttendance(c.Context(), config.GetStore(), rec); err != nil {
		return helpers.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success":      true,
		"presentCount": rec.PresentCount,
		"total":        rec.TotalStudents,
	})
}

// GetAttendanceAPI loads one register. A day that was never marked is a 404
// with a distinct message so the client can open a blank register.
func GetAttendanceAPI(c *fiber.Ctx) error {
	rec, err := database.LoadAttendance(c.Context(), config.GetStore(), c.Params("class"), c.Params("date"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attendance not marked for this date"})
		}
		return helpers.Error(c, err)
	}
	return c.JSON(rec)
}

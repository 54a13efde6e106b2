package marks

import (
	"github.com/gofiber/fiber/v2"

	"github.com/devasathya74/pmsrbl/app/config"
	"github.com/devasathya74/pmsrbl/app/database"
	"github.com/devasathya74/pmsrbl/app/routes/helpers"
)

type marksRequest struct {
	ExamName string         `json:"examName" validate:"required"`
	Scores   map[string]int `json:"scores" validate:"required"`
}

// SaveMarksAPI records one exam's subject scores for a student. Saving the
// same exam name again replaces that exam only; other exams are untouched.
func SaveMarksAPI(c *fiber.Ctx) error {
	var req marksRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.BadRequest(c, "Invalid request body")
	}
	if err := helpers.Validate.Struct(&req); err != nil {
		return helpers.BadRequest(c, "Exam name and scores are required")
	}

	rec, err := database.SaveExamMarks(c.Context(), config.GetStore(), c.Params("studentId"), req.ExamName, req.Scores)
	if err != nil {
		return helpers.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"examName":   rec.ExamName,
		"percentage": rec.Percentage,
	})
}

func GetMarksAPI(c *fiber.Ctx) error {
	records, err := database.GetExamMarks(c.Context(), config.GetStore(), c.Params("studentId"))
	if err != nil {
		return helpers.Error(c, err)
	}
	return c.JSON(fiber.Map{"examMarks": records})
}

package students

import (
	"io"
	"log"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/devasathya74/pmsrbl/app/config"
	"github.com/devasathya74/pmsrbl/app/database"
	"github.com/devasathya74/pmsrbl/app/models"
	"github.com/devasathya74/pmsrbl/app/routes/helpers"
)

// ListStudentsAPI returns the registry, optionally narrowed by ?class= and
// ?search= (name, roll number or mobile).
func ListStudentsAPI(c *fiber.Ctx) error {
	students, err := database.ListStudents(c.Context(), config.GetStore())
	if err != nil {
		return helpers.Error(c, err)
	}
	students = database.SearchStudents(students, c.Query("search"), c.Query("class"))
	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

// ClassRosterAPI returns one class sorted by numeric roll number.
func ClassRosterAPI(c *fiber.Ctx) error {
	students, err := database.GetStudentsByClass(c.Context(), config.GetStore(), c.Params("class"))
	if err != nil {
		return helpers.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

// ExportStudentsAPI streams the registry as a CSV download. The same class
// and search filters as the list endpoint apply.
func ExportStudentsAPI(c *fiber.Ctx) error {
	students, err := database.ListStudents(c.Context(), config.GetStore())
	if err != nil {
		return helpers.Error(c, err)
	}
	students = database.SearchStudents(students, c.Query("search"), c.Query("class"))

	data, err := database.ExportStudentsCSV(students)
	if err != nil {
		return helpers.Error(c, err)
	}
	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename="students.csv"`)
	return c.Send(data)
}

func GetStudentAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(c.Context(), config.GetStore(), c.Params("id"))
	if err != nil {
		return helpers.Error(c, err)
	}
	return c.JSON(student)
}

type studentRequest struct {
	StudentName string `json:"studentName" form:"studentName" validate:"required"`
	RollNumber  string `json:"rollNumber" form:"rollNumber"`
	Class       string `json:"class" form:"class" validate:"required"`
	DOB         string `json:"dob" form:"dob"`
	Gender      string `json:"gender" form:"gender"`
	FatherName  string `json:"fatherName" form:"fatherName"`
	MotherName  string `json:"motherName" form:"motherName"`
	Mobile      string `json:"mobile" form:"mobile"`
	Email       string `json:"email" form:"email" validate:"omitempty,email"`
	Address     string `json:"address" form:"address"`
}

// CreateStudentAPI registers a student directly, outside the admission flow.
func CreateStudentAPI(c *fiber.Ctx) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.BadRequest(c, "Invalid request body")
	}
	if err := helpers.Validate.Struct(&req); err != nil {
		return helpers.BadRequest(c, err.Error())
	}

	student := &models.Student{
		StudentName: req.StudentName,
		RollNumber:  req.RollNumber,
		Class:       req.Class,
		DOB:         req.DOB,
		Gender:      req.Gender,
		FatherName:  req.FatherName,
		MotherName:  req.MotherName,
		Mobile:      req.Mobile,
		Email:       req.Email,
		Address:     req.Address,
		Status:      models.StatusActive,
	}

	id, err := database.CreateStudent(c.Context(), config.GetStore(), student)
	if err != nil {
		return helpers.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "id": id})
}

// UpdateStudentAPI merges the submitted fields into the record. An attached
// photo replaces the stored one; unlike the application form, a failed photo
// upload here aborts the update so the caller can retry.
func UpdateStudentAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := database.GetStudentByID(c.Context(), config.GetStore(), id); err != nil {
		return helpers.Error(c, err)
	}

	var fields map[string]interface{}
	if err := c.BodyParser(&fields); err != nil {
		if form, ferr := c.MultipartForm(); ferr == nil {
			fields = map[string]interface{}{}
			for key, vals := range form.Value {
				if len(vals) > 0 {
					fields[key] = vals[0]
				}
			}
		} else {
			return helpers.BadRequest(c, "Invalid request body")
		}
	}
	delete(fields, "id")
	delete(fields, "examMarks")

	if fh, err := c.FormFile("photo"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return helpers.Error(c, err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return helpers.Error(c, err)
		}
		url, err := config.GetBlob().Upload(c.Context(), "students/"+id+filepath.Ext(fh.Filename), data, fh.Header.Get("Content-Type"))
		if err != nil {
			log.Printf("Student photo upload failed for %s: %v", id, err)
			return helpers.Error(c, err)
		}
		fields["photo"] = url
	}

	if len(fields) == 0 {
		return helpers.BadRequest(c, "No fields to update")
	}
	if err := database.UpdateStudent(c.Context(), config.GetStore(), id, fields); err != nil {
		return helpers.Error(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

type rollRequest struct {
	RollNumber string `json:"rollNumber" validate:"required"`
}

// SetRollAPI assigns or changes a roll number after enrollment.
func SetRollAPI(c *fiber.Ctx) error {
	var req rollRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.BadRequest(c, "Invalid request body")
	}
	if err := helpers.Validate.Struct(&req); err != nil {
		return helpers.BadRequest(c, "Roll number is required")
	}
	if err := database.SetStudentRoll(c.Context(), config.GetStore(), c.Params("id"), req.RollNumber); err != nil {
		return helpers.Error(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeleteStudentAPI removes the record. Attendance and exam history for the
// student stays behind for audit.
func DeleteStudentAPI(c *fiber.Ctx) error {
	if err := database.DeleteStudent(c.Context(), config.GetStore(), c.Params("id")); err != nil {
		return helpers.Error(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

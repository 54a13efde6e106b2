package teachers

import (
	"errors"
	"io"
	"log"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/devasathya74/pmsrbl/app/config"
	"github.com/devasathya74/pmsrbl/app/database"
	"github.com/devasathya74/pmsrbl/app/models"
	"github.com/devasathya74/pmsrbl/app/routes/helpers"
)

func ListTeachersAPI(c *fiber.Ctx) error {
	teachers, err := database.ListTeachers(c.Context(), config.GetStore())
	if err != nil {
		return helpers.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"teachers": teachers,
		"count":    len(teachers),
	})
}

func GetTeacherAPI(c *fiber.Ctx) error {
	teacher, err := database.GetTeacherByID(c.Context(), config.GetStore(), c.Params("id"))
	if err != nil {
		return helpers.Error(c, err)
	}
	return c.JSON(teacher)
}

type teacherRequest struct {
	Name          string `json:"name" form:"name" validate:"required"`
	Email         string `json:"email" form:"email" validate:"required,email"`
	Password      string `json:"password" form:"password" validate:"required,min=6"`
	Mobile        string `json:"mobile" form:"mobile"`
	Qualification string `json:"qualification" form:"qualification"`
	Subject       string `json:"subject" form:"subject"`
	AssignedClass string `json:"assignedClass" form:"assignedClass"`
	JoiningDate   string `json:"joiningDate" form:"joiningDate"`
}

// CreateTeacherAPI creates the sign-in credential, the role record and the
// staff profile together. If any later step fails the credential is removed
// again so the email stays usable; an orphaned credential is reported so an
// operator can clean it up by hand.
func CreateTeacherAPI(c *fiber.Ctx) error {
	var req teacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.BadRequest(c, "Invalid request body")
	}
	if err := helpers.Validate.Struct(&req); err != nil {
		return helpers.BadRequest(c, err.Error())
	}

	if existing, err := database.GetTeacherByEmail(c.Context(), config.GetStore(), req.Email); err == nil && existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A teacher with this email already exists"})
	}

	teacher := &models.Teacher{
		Name:          req.Name,
		Email:         req.Email,
		Mobile:        req.Mobile,
		Qualification: req.Qualification,
		Subject:       req.Subject,
		AssignedClass: req.AssignedClass,
		JoiningDate:   req.JoiningDate,
		Status:        models.StatusActive,
	}

	if fh, err := c.FormFile("photo"); err == nil && fh != nil {
		f, err := fh.Open()
		if err == nil {
			data, rerr := io.ReadAll(f)
			f.Close()
			if rerr == nil {
				url, uerr := config.GetBlob().Upload(c.Context(), "teachers/"+database.SanitizeApplicantName(req.Name)+filepath.Ext(fh.Filename), data, fh.Header.Get("Content-Type"))
				if uerr != nil {
					log.Printf("Teacher photo upload failed: %v", uerr)
				} else {
					teacher.Photo = url
				}
			}
		}
	}

	id, err := database.CreateTeacher(c.Context(), config.GetStore(), config.GetAccounts(), teacher, req.Password)
	if err != nil {
		if errors.Is(err, database.ErrOrphanedCredential) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return helpers.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "id": id, "uid": teacher.UID})
}

// UpdateTeacherAPI merges the submitted fields into the profile. An attached
// photo replaces the stored one; a failed photo upload aborts the edit so
// the caller can retry.
func UpdateTeacherAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := database.GetTeacherByID(c.Context(), config.GetStore(), id); err != nil {
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
	delete(fields, "uid")
	delete(fields, "password")

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
		url, err := config.GetBlob().Upload(c.Context(), "teachers/"+id+filepath.Ext(fh.Filename), data, fh.Header.Get("Content-Type"))
		if err != nil {
			log.Printf("Teacher photo upload failed for %s: %v", id, err)
			return helpers.Error(c, err)
		}
		fields["photo"] = url
	}

	if len(fields) == 0 {
		return helpers.BadRequest(c, "No fields to update")
	}
	if err := database.UpdateTeacher(c.Context(), config.GetStore(), id, fields); err != nil {
		return helpers.Error(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeleteTeacherAPI removes the staff profile only. The sign-in credential is
// left in place so past submissions keep their author.
func DeleteTeacherAPI(c *fiber.Ctx) error {
	if err := database.DeleteTeacher(c.Context(), config.GetStore(), c.Params("id")); err != nil {
		return helpers.Error(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

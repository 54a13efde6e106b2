package admissions

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/devasathya74/pmsrbl/app/config"
	"github.com/devasathya74/pmsrbl/app/database"
	"github.com/devasathya74/pmsrbl/app/models"
	"github.com/devasathya74/pmsrbl/app/routes/helpers"
)

// documentKinds are the attachment slots the application form offers.
var documentKinds = []string{"photo", "birthCertificate", "aadharCard", "casteCertificate", "domicileCertificate"}

type admissionRequest struct {
	StudentName      string `json:"student_name" form:"student_name" validate:"required"`
	DOB              string `json:"dob" form:"dob" validate:"required"`
	Class            string `json:"class" form:"class" validate:"required"`
	Gender           string `json:"gender" form:"gender"`
	FatherName       string `json:"father_name" form:"father_name" validate:"required"`
	FatherOccupation string `json:"father_occupation" form:"father_occupation"`
	FatherCompany    string `json:"father_company" form:"father_company"`
	FatherPost       string `json:"father_post" form:"father_post"`
	MotherName       string `json:"mother_name" form:"mother_name" validate:"required"`
	MotherOccupation string `json:"mother_occupation" form:"mother_occupation"`
	Mobile           string `json:"mobile" form:"mobile" validate:"required"`
	Email            string `json:"email" form:"email" validate:"omitempty,email"`
	Address          string `json:"address" form:"address" validate:"required"`
	PostalAddress    string `json:"postal_address" form:"postal_address"`
	GuardianName     string `json:"guardian_name" form:"guardian_name"`
	GuardianAddress  string `json:"guardian_address" form:"guardian_address"`
	GuardianRelation string `json:"guardian_relation" form:"guardian_relation"`
	LastSchool       string `json:"last_school" form:"last_school"`
	MotherTongue     string `json:"mother_tongue" form:"mother_tongue"`
	Religion         string `json:"religion" form:"religion"`
	DurationOfStay   string `json:"duration_of_stay" form:"duration_of_stay"`
}

// SubmitAdmissionAPI accepts the multi-step application as a multipart form
// (or plain JSON when there are no attachments) and returns the registration
// code the applicant tracks the application with.
func SubmitAdmissionAPI(c *fiber.Ctx) error {
	var req admissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.BadRequest(c, "Invalid request body")
	}
	if err := helpers.Validate.Struct(&req); err != nil {
		return helpers.BadRequest(c, err.Error())
	}

	var files []database.AdmissionFile
	for _, kind := range documentKinds {
		fh, err := c.FormFile(kind)
		if err != nil || fh == nil {
			continue
		}
		f, err := fh.Open()
		if err != nil {
			continue
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			continue
		}
		files = append(files, database.AdmissionFile{
			Kind:        kind,
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	app := &models.AdmissionApplication{
		StudentName:      req.StudentName,
		DOB:              req.DOB,
		Class:            req.Class,
		Gender:           req.Gender,
		FatherName:       req.FatherName,
		FatherOccupation: req.FatherOccupation,
		FatherCompany:    req.FatherCompany,
		FatherPost:       req.FatherPost,
		MotherName:       req.MotherName,
		MotherOccupation: req.MotherOccupation,
		Mobile:           req.Mobile,
		Email:            req.Email,
		Address:          req.Address,
		PostalAddress:    req.PostalAddress,
		GuardianName:     req.GuardianName,
		GuardianAddress:  req.GuardianAddress,
		GuardianRelation: req.GuardianRelation,
		LastSchool:       req.LastSchool,
		MotherTongue:     req.MotherTongue,
		Religion:         req.Religion,
		DurationOfStay:   req.DurationOfStay,
	}

	code, err := database.SubmitAdmission(c.Context(), config.GetStore(), config.GetBlob(), app, files, c.Query("source"))
	if err != nil {
		return helpers.Error(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":            true,
		"id":                 code,
		"registrationNumber": code,
	})
}

// ListAdmissionsAPI returns the review queue, optionally narrowed by status.
func ListAdmissionsAPI(c *fiber.Ctx) error {
	apps, err := database.ListAdmissions(c.Context(), config.GetStore())
	if err != nil {
		return helpers.Error(c, err)
	}
	if status := c.Query("status"); status != "" && status != "all" {
		apps = database.FilterAdmissionsByStatus(apps, models.AdmissionStatus(status))
	}
	return c.JSON(fiber.Map{
		"admissions": apps,
		"count":      len(apps),
	})
}

// GetAdmissionAPI is the public status lookup by registration code.
func GetAdmissionAPI(c *fiber.Ctx) error {
	app, err := database.GetAdmission(c.Context(), config.GetStore(), c.Params("code"))
	if err != nil {
		return helpers.Error(c, err)
	}
	return c.JSON(app)
}

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// SetStatusAPI applies a review decision. A decision on an application that
// already left pending is rejected with a conflict.
func SetStatusAPI(c *fiber.Ctx) error {
	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.BadRequest(c, "Invalid request body")
	}
	if err := helpers.Validate.Struct(&req); err != nil {
		return helpers.BadRequest(c, "Status must be approved or rejected")
	}

	if err := database.SetAdmissionStatus(c.Context(), config.GetStore(), c.Params("code"), models.AdmissionStatus(req.Status)); err != nil {
		return helpers.Error(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "status": req.Status})
}

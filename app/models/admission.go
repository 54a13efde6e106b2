package models

import (
	"github.com/devasathya74/pmsrbl/app/store"
)

// AdmissionApplication is a pending enrollment request. The document id is
// the generated registration code (PMS-#####); the code is also stored as a
// field so exports carry it. Field names keep the snake_case keys the public
// admission form has always submitted.
type AdmissionApplication struct {
	ID                 string            `json:"id"`
	RegistrationNumber string            `json:"registrationNumber"`
	StudentName        string            `json:"student_name" validate:"required"`
	DOB                string            `json:"dob" validate:"required"`
	Class              string            `json:"class" validate:"required"`
	Gender             string            `json:"gender,omitempty"`
	FatherName         string            `json:"father_name" validate:"required"`
	FatherOccupation   string            `json:"father_occupation,omitempty"`
	FatherCompany      string            `json:"father_company,omitempty"`
	FatherPost         string            `json:"father_post,omitempty"`
	MotherName         string            `json:"mother_name" validate:"required"`
	MotherOccupation   string            `json:"mother_occupation,omitempty"`
	Mobile             string            `json:"mobile" validate:"required"`
	Email              string            `json:"email" validate:"omitempty,email"`
	Address            string            `json:"address" validate:"required"`
	PostalAddress      string            `json:"postal_address,omitempty"`
	GuardianName       string            `json:"guardian_name,omitempty"`
	GuardianAddress    string            `json:"guardian_address,omitempty"`
	GuardianRelation   string            `json:"guardian_relation,omitempty"`
	LastSchool         string            `json:"last_school,omitempty"`
	MotherTongue       string            `json:"mother_tongue,omitempty"`
	Religion           string            `json:"religion,omitempty"`
	DurationOfStay     string            `json:"duration_of_stay,omitempty"`
	Documents          map[string]string `json:"documents"`
	Status             AdmissionStatus   `json:"status"`
	SubmittedAt        string            `json:"submittedAt"`
	UpdatedAt          string            `json:"updatedAt,omitempty"`
}

// AdmissionFromDoc decodes a stored application. Older records spell some
// fields differently (lastInst, tongue, stayUp); they are normalized here so
// the rest of the code never branches on field presence.
func AdmissionFromDoc(doc *store.Document) (*AdmissionApplication, error) {
	normalizeField(doc.Data, "last_school", "lastInst")
	normalizeField(doc.Data, "mother_tongue", "tongue")
	normalizeField(doc.Data, "duration_of_stay", "stayUp")

	var app AdmissionApplication
	if err := FromDoc(doc.Data, &app); err != nil {
		return nil, err
	}
	app.ID = doc.ID
	if app.Documents == nil {
		app.Documents = map[string]string{}
	}
	if app.Status == "" {
		app.Status = AdmissionPending
	}
	return &app, nil
}

func normalizeField(data map[string]interface{}, canonical, legacy string) {
	if _, ok := data[canonical]; ok {
		return
	}
	if v, ok := data[legacy]; ok {
		data[canonical] = v
	}
}

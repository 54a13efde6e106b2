package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/devasathya74/pmsrbl/app/models"
	"github.com/devasathya74/pmsrbl/app/store"
)

// SourceAdmin marks a submission initiated from the admin dashboard rather
// than the public form. Staff-initiated admissions are approved in the same
// operation.
const SourceAdmin = "admin"

// codeAttempts bounds the store-checked registration code draw. Five digits
// give 90000 codes; running out of attempts means the space is effectively
// saturated and the submission fails.
const codeAttempts = 10

// AdmissionFile is one attachment submitted with an application.
type AdmissionFile struct {
	Kind        string // documents-map key, e.g. "birthCertificate"
	Filename    string
	ContentType string
	Data        []byte
}

var (
	nonNameChars = regexp.MustCompile(`[^a-z0-9 ]+`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// SanitizeApplicantName derives the blob-name stem from the applicant's
// name: lowercase, non-alphanumerics stripped, whitespace runs collapsed to
// a single underscore, truncated to 50 characters.
func SanitizeApplicantName(name string) string {
	s := strings.ToLower(name)
	s = nonNameChars.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(strings.TrimSpace(s), "_")
	if len(s) > 50 {
		s = s[:50]
	}
	return s
}

// GenerateRegistrationCode draws PMS-##### codes until one is unused. A
// blind first draw could collide and silently overwrite an earlier
// application, so every draw is checked against the store before use.
func GenerateRegistrationCode(ctx context.Context, s store.Store) (string, error) {
	for i := 0; i < codeAttempts; i++ {
		code := fmt.Sprintf("PMS-%d", 10000+rand.Intn(90000))
		_, err := s.Get(ctx, AdmissionsCollection, code)
		if errors.Is(err, store.ErrNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("could not allocate an unused registration number after %d attempts", codeAttempts)
}

// SubmitAdmission uploads the attachments, allocates a registration code and
// persists the application keyed by that code with status pending. A single
// failed upload is logged and skipped; partial-document admissions are
// allowed. When source marks a staff submission, the application is approved
// (and the student materialized) in the same call; a failure on that path is
// logged and leaves the application pending for manual correction.
func SubmitAdmission(ctx context.Context, s store.Store, blob store.BlobStore, app *models.AdmissionApplication, files []AdmissionFile, source string) (string, error) {
	documents := map[string]string{}
	stem := SanitizeApplicantName(app.StudentName)
	for _, f := range files {
		prefix := "admissions/documents/"
		if f.Kind == "photo" {
			prefix = "admissions/images/"
		}
		path := prefix + stem + "_" + f.Kind + filepath.Ext(f.Filename)
		url, err := blob.Upload(ctx, path, f.Data, f.ContentType)
		if err != nil {
			log.Printf("admission upload skipped (%s): %v", f.Kind, err)
			continue
		}
		documents[f.Kind] = url
	}

	code, err := GenerateRegistrationCode(ctx, s)
	if err != nil {
		return "", err
	}

	app.ID = code
	app.RegistrationNumber = code
	app.Documents = documents
	app.Status = models.AdmissionPending
	app.SubmittedAt = nowStamp()

	data, err := models.ToDoc(app)
	if err != nil {
		return "", err
	}
	if err := s.Set(ctx, AdmissionsCollection, code, data); err != nil {
		return "", err
	}

	if source == SourceAdmin {
		if err := SetAdmissionStatus(ctx, s, code, models.AdmissionApproved); err != nil {
			log.Printf("auto-approval of %s failed, left pending: %v", code, err)
		}
	}
	return code, nil
}

// GetAdmission returns the application stored under a registration code.
func GetAdmission(ctx context.Context, s store.Store, code string) (*models.AdmissionApplication, error) {
	doc, err := s.Get(ctx, AdmissionsCollection, code)
	if err != nil {
		return nil, err
	}
	return models.AdmissionFromDoc(doc)
}

// ListAdmissions returns all applications, newest first.
func ListAdmissions(ctx context.Context, s store.Store) ([]*models.AdmissionApplication, error) {
	docs, err := listAll(ctx, s, AdmissionsCollection, admissionsPageSize)
	if err != nil {
		return nil, err
	}
	apps := make([]*models.AdmissionApplication, 0, len(docs))
	for _, doc := range docs {
		app, err := models.AdmissionFromDoc(doc)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	// newest first for the review queue; submittedAt is RFC3339 so the
	// lexicographic order is chronological
	sort.SliceStable(apps, func(i, j int) bool { return apps[i].SubmittedAt > apps[j].SubmittedAt })
	return apps, nil
}

// FilterAdmissionsByStatus narrows a fetched listing in-process, the way the
// dashboard filter works.
func FilterAdmissionsByStatus(apps []*models.AdmissionApplication, status models.AdmissionStatus) []*models.AdmissionApplication {
	out := make([]*models.AdmissionApplication, 0, len(apps))
	for _, a := range apps {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out
}

// SetAdmissionStatus applies a review decision. Only pending applications
// may transition; approving triggers student materialization after the
// status write (two non-transactional writes, status first).
func SetAdmissionStatus(ctx context.Context, s store.Store, code string, target models.AdmissionStatus) error {
	if target != models.AdmissionApproved && target != models.AdmissionRejected {
		return fmt.Errorf("invalid target status %q", target)
	}

	app, err := GetAdmission(ctx, s, code)
	if err != nil {
		return err
	}
	if app.Status != models.AdmissionPending {
		return fmt.Errorf("%s is %s: %w", code, app.Status, ErrInvalidTransition)
	}

	if err := s.Update(ctx, AdmissionsCollection, code, map[string]interface{}{
		"status":    string(target),
		"updatedAt": nowStamp(),
	}); err != nil {
		return err
	}

	if target == models.AdmissionApproved {
		if _, err := CreateStudentFromAdmission(ctx, s, app); err != nil {
			return fmt.Errorf("application approved but student creation failed: %w", err)
		}
	}
	return nil
}

// CreateStudentFromAdmission materializes a Student from an approved
// application. Copyable fields move over verbatim; the roll number stays
// empty (assignment is a separate administrative step) and the registration
// code is kept as a traceability back-reference. Append-only: it never
// updates an existing student.
func CreateStudentFromAdmission(ctx context.Context, s store.Store, app *models.AdmissionApplication) (string, error) {
	student := &models.Student{
		StudentName:      app.StudentName,
		RollNumber:       "",
		AdmissionID:      app.ID,
		Class:            app.Class,
		DOB:              app.DOB,
		Gender:           app.Gender,
		FatherName:       app.FatherName,
		FatherOccupation: app.FatherOccupation,
		FatherCompany:    app.FatherCompany,
		FatherPost:       app.FatherPost,
		MotherName:       app.MotherName,
		MotherOccupation: app.MotherOccupation,
		Mobile:           app.Mobile,
		Email:            app.Email,
		Address:          app.Address,
		PostalAddress:    app.PostalAddress,
		GuardianName:     app.GuardianName,
		GuardianAddress:  app.GuardianAddress,
		GuardianRelation: app.GuardianRelation,
		LastSchool:       app.LastSchool,
		MotherTongue:     app.MotherTongue,
		Religion:         app.Religion,
		DurationOfStay:   app.DurationOfStay,
		Photo:            app.Documents["photo"],
		BirthCertificate: app.Documents["birthCertificate"],
		AadharCard:       app.Documents["aadharCard"],
		CasteCert:        app.Documents["casteCertificate"],
		DomicileCert:     app.Documents["domicileCertificate"],
		Status:           models.StatusActive,
		CreatedAt:        nowStamp(),
	}
	data, err := models.ToDoc(student)
	if err != nil {
		return "", err
	}
	return s.Add(ctx, StudentsCollection, data)
}

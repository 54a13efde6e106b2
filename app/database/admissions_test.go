package database

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devasathya74/pmsrbl/app/models"
	"github.com/devasathya74/pmsrbl/app/store"
)

var codePattern = regexp.MustCompile(`^PMS-\d{5}$`)

func newApplication() *models.AdmissionApplication {
	return &models.AdmissionApplication{
		StudentName: "Aarav Sharma",
		DOB:         "2015-06-12",
		Class:       "5",
		Gender:      "male",
		FatherName:  "Rajesh Sharma",
		MotherName:  "Priya Sharma",
		Mobile:      "9876543210",
		Email:       "rajesh@example.com",
		Address:     "12 Station Road",
	}
}

func TestSanitizeApplicantName(t *testing.T) {
	assert.Equal(t, "aarav_sharma", SanitizeApplicantName("Aarav Sharma"))
	assert.Equal(t, "oneill_jr", SanitizeApplicantName("  O'Neill   Jr.  "))
	assert.Equal(t, "a2b", SanitizeApplicantName("A2B"))
}

func TestGenerateRegistrationCode(t *testing.T) {
	s := store.NewMemoryStore()
	code, err := GenerateRegistrationCode(context.Background(), s)
	require.NoError(t, err)
	assert.Regexp(t, codePattern, code)
}

func TestSubmitAdmissionPending(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	blob := store.NewMemoryBlobStore()

	code, err := SubmitAdmission(ctx, s, blob, newApplication(), nil, "")
	require.NoError(t, err)
	assert.Regexp(t, codePattern, code)

	app, err := GetAdmission(ctx, s, code)
	require.NoError(t, err)
	assert.Equal(t, models.AdmissionPending, app.Status)
	assert.Equal(t, code, app.RegistrationNumber)
	assert.NotEmpty(t, app.SubmittedAt)
	// no attachments still yields a documents map, not a missing field
	assert.NotNil(t, app.Documents)
	assert.Empty(t, app.Documents)

	// public submission must not create a student
	students, err := ListStudents(ctx, s)
	require.NoError(t, err)
	assert.Empty(t, students)
}

func TestSubmitAdmissionUploads(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	blob := store.NewMemoryBlobStore()

	files := []AdmissionFile{
		{Kind: "photo", Filename: "me.jpg", ContentType: "image/jpeg", Data: []byte("jpg")},
		{Kind: "birthCertificate", Filename: "cert.pdf", ContentType: "application/pdf", Data: []byte("pdf")},
	}
	code, err := SubmitAdmission(ctx, s, blob, newApplication(), files, "")
	require.NoError(t, err)

	app, err := GetAdmission(ctx, s, code)
	require.NoError(t, err)
	assert.Equal(t, "memory://admissions/images/aarav_sharma_photo.jpg", app.Documents["photo"])
	assert.Equal(t, "memory://admissions/documents/aarav_sharma_birthCertificate.pdf", app.Documents["birthCertificate"])
}

func TestSubmitAdmissionSkipsFailedUpload(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	blob := store.NewMemoryBlobStore()
	blob.FailPaths["admissions/documents/aarav_sharma_aadharCard.png"] = true

	files := []AdmissionFile{
		{Kind: "photo", Filename: "me.jpg", ContentType: "image/jpeg", Data: []byte("jpg")},
		{Kind: "aadharCard", Filename: "card.png", ContentType: "image/png", Data: []byte("png")},
	}
	code, err := SubmitAdmission(ctx, s, blob, newApplication(), files, "")
	require.NoError(t, err)

	app, err := GetAdmission(ctx, s, code)
	require.NoError(t, err)
	assert.Contains(t, app.Documents, "photo")
	assert.NotContains(t, app.Documents, "aadharCard")
}

func TestSubmitAdmissionStaffAutoApprove(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	blob := store.NewMemoryBlobStore()

	code, err := SubmitAdmission(ctx, s, blob, newApplication(), nil, SourceAdmin)
	require.NoError(t, err)

	app, err := GetAdmission(ctx, s, code)
	require.NoError(t, err)
	assert.Equal(t, models.AdmissionApproved, app.Status)

	students, err := ListStudents(ctx, s)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, code, students[0].AdmissionID)
}

func TestApproveMaterializesStudent(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	blob := store.NewMemoryBlobStore()

	files := []AdmissionFile{{Kind: "photo", Filename: "me.jpg", ContentType: "image/jpeg", Data: []byte("jpg")}}
	code, err := SubmitAdmission(ctx, s, blob, newApplication(), files, "")
	require.NoError(t, err)

	require.NoError(t, SetAdmissionStatus(ctx, s, code, models.AdmissionApproved))

	students, err := ListStudents(ctx, s)
	require.NoError(t, err)
	require.Len(t, students, 1)

	st := students[0]
	assert.Equal(t, "Aarav Sharma", st.StudentName)
	assert.Equal(t, "5", st.Class)
	assert.Equal(t, "Rajesh Sharma", st.FatherName)
	assert.Equal(t, code, st.AdmissionID)
	assert.Equal(t, "", st.RollNumber)
	assert.Equal(t, models.StatusActive, st.Status)
	assert.Equal(t, "memory://admissions/images/aarav_sharma_photo.jpg", st.Photo)
}

func TestStatusTransitionsAreOneWay(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	blob := store.NewMemoryBlobStore()

	code, err := SubmitAdmission(ctx, s, blob, newApplication(), nil, "")
	require.NoError(t, err)

	require.NoError(t, SetAdmissionStatus(ctx, s, code, models.AdmissionApproved))

	// approving twice must not mint a second student
	err = SetAdmissionStatus(ctx, s, code, models.AdmissionApproved)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	err = SetAdmissionStatus(ctx, s, code, models.AdmissionRejected)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	students, err := ListStudents(ctx, s)
	require.NoError(t, err)
	assert.Len(t, students, 1)
}

func TestRejectCreatesNoStudent(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	blob := store.NewMemoryBlobStore()

	code, err := SubmitAdmission(ctx, s, blob, newApplication(), nil, "")
	require.NoError(t, err)
	require.NoError(t, SetAdmissionStatus(ctx, s, code, models.AdmissionRejected))

	app, err := GetAdmission(ctx, s, code)
	require.NoError(t, err)
	assert.Equal(t, models.AdmissionRejected, app.Status)

	students, err := ListStudents(ctx, s)
	require.NoError(t, err)
	assert.Empty(t, students)
}

func TestSetAdmissionStatusRejectsBadTarget(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	blob := store.NewMemoryBlobStore()

	code, err := SubmitAdmission(ctx, s, blob, newApplication(), nil, "")
	require.NoError(t, err)

	assert.Error(t, SetAdmissionStatus(ctx, s, code, "pending"))
	assert.Error(t, SetAdmissionStatus(ctx, s, code, "banana"))
	assert.ErrorIs(t, SetAdmissionStatus(ctx, s, "PMS-00000", models.AdmissionApproved), store.ErrNotFound)
}

func TestListAdmissionsNewestFirstAcrossPages(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	// more than one page, with distinct submission times
	total := admissionsPageSize*2 + 3
	for i := 0; i < total; i++ {
		code := fmt.Sprintf("PMS-%05d", 10000+i)
		err := s.Set(ctx, AdmissionsCollection, code, map[string]interface{}{
			"student_name": fmt.Sprintf("Student %d", i),
			"status":       "pending",
			"submittedAt":  fmt.Sprintf("2026-01-01T00:00:%02dZ", i),
		})
		require.NoError(t, err)
	}

	apps, err := ListAdmissions(ctx, s)
	require.NoError(t, err)
	require.Len(t, apps, total)
	assert.Equal(t, fmt.Sprintf("Student %d", total-1), apps[0].StudentName)
	assert.Equal(t, "Student 0", apps[total-1].StudentName)
}

func TestAdmissionLegacyFieldNames(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	require.NoError(t, s.Set(ctx, AdmissionsCollection, "PMS-12345", map[string]interface{}{
		"student_name": "Old Record",
		"lastInst":     "Govt Primary",
		"tongue":       "Hindi",
		"stayUp":       "4 years",
	}))

	app, err := GetAdmission(ctx, s, "PMS-12345")
	require.NoError(t, err)
	assert.Equal(t, "Govt Primary", app.LastSchool)
	assert.Equal(t, "Hindi", app.MotherTongue)
	assert.Equal(t, "4 years", app.DurationOfStay)
	assert.Equal(t, models.AdmissionPending, app.Status)
}

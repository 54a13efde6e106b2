package models

import (
	"strconv"

	"github.com/devasathya74/pmsrbl/app/store"
)

// ExamRecord is one exam's marks, embedded in Student.ExamMarks under a
// normalized exam-name key. An overwrite replaces the whole record; partial
// updates to a single subject re-require all subjects for that exam.
type ExamRecord struct {
	ExamName   string         `json:"examName"`
	Results    map[string]int `json:"results"`
	Percentage float64        `json:"percentage"`
	UpdatedAt  string         `json:"updatedAt"`
}

// Student is the authoritative record of an enrolled student. AdmissionID is
// a weak back-reference to the originating application's registration code;
// it is empty for students added manually.
type Student struct {
	ID               string                `json:"id,omitempty"`
	StudentName      string                `json:"studentName" validate:"required"`
	RollNumber       string                `json:"rollNumber"`
	AdmissionID      string                `json:"admissionId,omitempty"`
	Class            string                `json:"class" validate:"required"`
	DOB              string                `json:"dob,omitempty"`
	Gender           string                `json:"gender,omitempty"`
	FatherName       string                `json:"fatherName,omitempty"`
	FatherOccupation string                `json:"fatherOccupation,omitempty"`
	FatherCompany    string                `json:"fatherCompany,omitempty"`
	FatherPost       string                `json:"fatherPost,omitempty"`
	MotherName       string                `json:"motherName,omitempty"`
	MotherOccupation string                `json:"motherOccupation,omitempty"`
	Mobile           string                `json:"mobile,omitempty"`
	Email            string                `json:"email,omitempty"`
	Address          string                `json:"address,omitempty"`
	PostalAddress    string                `json:"postalAddress,omitempty"`
	GuardianName     string                `json:"guardianName,omitempty"`
	GuardianAddress  string                `json:"guardianAddress,omitempty"`
	GuardianRelation string                `json:"guardianRelation,omitempty"`
	LastSchool       string                `json:"lastSchool,omitempty"`
	MotherTongue     string                `json:"motherTongue,omitempty"`
	Religion         string                `json:"religion,omitempty"`
	DurationOfStay   string                `json:"durationOfStay,omitempty"`
	Photo            string                `json:"photo,omitempty"`
	BirthCertificate string                `json:"birthCertificate,omitempty"`
	AadharCard       string                `json:"aadharCard,omitempty"`
	CasteCert        string                `json:"casteCert,omitempty"`
	DomicileCert     string                `json:"domicileCert,omitempty"`
	Status           RecordStatus          `json:"status"`
	ExamMarks        map[string]ExamRecord `json:"examMarks,omitempty"`
	LastExamMarks    string                `json:"lastExamMarks,omitempty"`
	CreatedAt        string                `json:"createdAt,omitempty"`
	UpdatedAt        string                `json:"updatedAt,omitempty"`
}

// StudentFromDoc decodes a stored student. Records created before the schema
// settled may carry "name" instead of "studentName".
func StudentFromDoc(doc *store.Document) (*Student, error) {
	normalizeField(doc.Data, "studentName", "name")

	var s Student
	if err := FromDoc(doc.Data, &s); err != nil {
		return nil, err
	}
	s.ID = doc.ID
	if s.Status == "" {
		s.Status = StatusActive
	}
	return &s, nil
}

// RollSortKey orders students by numeric roll number; students without an
// assigned roll sort last.
func (s *Student) RollSortKey() int {
	n, err := strconv.Atoi(s.RollNumber)
	if err != nil {
		return 999999
	}
	return n
}

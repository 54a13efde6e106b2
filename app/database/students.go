package database

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strings"

	"github.com/devasathya74/pmsrbl/app/models"
	"github.com/devasathya74/pmsrbl/app/store"
)

// ListStudents returns every student, assembled from fixed-size pages and
// sorted oldest first. Records without a creation stamp sort first.
func ListStudents(ctx context.Context, s store.Store) ([]*models.Student, error) {
	docs, err := listAll(ctx, s, StudentsCollection, studentsPageSize)
	if err != nil {
		return nil, err
	}
	students := make([]*models.Student, 0, len(docs))
	for _, doc := range docs {
		st, err := models.StudentFromDoc(doc)
		if err != nil {
			return nil, err
		}
		students = append(students, st)
	}
	sort.SliceStable(students, func(i, j int) bool { return students[i].CreatedAt < students[j].CreatedAt })
	return students, nil
}

// GetStudentByID returns a single student or store.ErrNotFound.
func GetStudentByID(ctx context.Context, s store.Store, id string) (*models.Student, error) {
	doc, err := s.Get(ctx, StudentsCollection, id)
	if err != nil {
		return nil, err
	}
	return models.StudentFromDoc(doc)
}

// GetStudentsByClass returns the roster of a class sorted by numeric roll
// number; students without a roll sort last.
func GetStudentsByClass(ctx context.Context, s store.Store, class string) ([]*models.Student, error) {
	docs, err := s.List(ctx, StudentsCollection, store.Query{
		Filters: []store.Filter{{Field: "class", Value: class}},
	})
	if err != nil {
		return nil, err
	}
	students := make([]*models.Student, 0, len(docs))
	for _, doc := range docs {
		st, err := models.StudentFromDoc(doc)
		if err != nil {
			return nil, err
		}
		students = append(students, st)
	}
	sort.SliceStable(students, func(i, j int) bool {
		return students[i].RollSortKey() < students[j].RollSortKey()
	})
	return students, nil
}

// CreateStudent adds a manually entered student record.
func CreateStudent(ctx context.Context, s store.Store, student *models.Student) (string, error) {
	if student.Status == "" {
		student.Status = models.StatusActive
	}
	student.CreatedAt = nowStamp()
	data, err := models.ToDoc(student)
	if err != nil {
		return "", err
	}
	return s.Add(ctx, StudentsCollection, data)
}

// UpdateStudent merges only the provided fields into an existing record and
// stamps the update time. Callers resolve photo uploads before calling; an
// upload failure must abort the edit with no partial write.
func UpdateStudent(ctx context.Context, s store.Store, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return fmt.Errorf("no fields to update")
	}
	fields["updatedAt"] = nowStamp()
	return s.Update(ctx, StudentsCollection, id, fields)
}

// SetStudentRoll assigns a roll number, touching nothing else.
func SetStudentRoll(ctx context.Context, s store.Store, id, rollNumber string) error {
	return s.Update(ctx, StudentsCollection, id, map[string]interface{}{
		"rollNumber": rollNumber,
		"updatedAt":  nowStamp(),
	})
}

// DeleteStudent hard-deletes the record. Attendance history and the source
// admission application are left untouched; they are kept for audit.
func DeleteStudent(ctx context.Context, s store.Store, id string) error {
	return s.Delete(ctx, StudentsCollection, id)
}

// SearchStudents narrows a fetched listing union-style over name, roll
// number and mobile, with an optional class filter. Matching runs in-process
// over the full set, as the dashboard always has.
func SearchStudents(students []*models.Student, query, class string) []*models.Student {
	q := strings.ToLower(query)
	out := make([]*models.Student, 0, len(students))
	for _, st := range students {
		if class != "" && class != "all" && st.Class != class {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(st.StudentName), q) &&
			!strings.Contains(strings.ToLower(st.RollNumber), q) &&
			!strings.Contains(st.Mobile, q) {
			continue
		}
		out = append(out, st)
	}
	return out
}

// ExportStudentsCSV renders the registry in the export layout the office
// staff import into their spreadsheets.
func ExportStudentsCSV(students []*models.Student) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Roll No", "Name", "Class", "DOB", "Gender", "Father Name", "Mother Name", "Mobile", "Email", "Address", "Status"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, st := range students {
		row := []string{
			st.RollNumber,
			st.StudentName,
			st.Class,
			st.DOB,
			st.Gender,
			st.FatherName,
			st.MotherName,
			st.Mobile,
			st.Email,
			st.Address,
			string(st.Status),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package database

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/devasathya74/pmsrbl/app/models"
	"github.com/devasathya74/pmsrbl/app/store"
)

var examKeyWhitespace = regexp.MustCompile(`\s+`)

// ExamKey normalizes an exam name into a map key: whitespace runs become a
// single underscore ("Unit Test 1" -> "Unit_Test_1"). Dots become
// underscores too; a dot in the key would be read as an extra nesting level
// by the dotted update path.
func ExamKey(examName string) string {
	key := examKeyWhitespace.ReplaceAllString(examName, "_")
	return strings.ReplaceAll(key, ".", "_")
}

// SaveExamMarks writes one exam's scores for a student as a nested partial
// update: only examMarks.{key}, the legacy lastExamMarks summary and the
// top-level update stamp change; sibling exams and every other student field
// stay untouched. The percentage assumes every subject is out of 100.
func SaveExamMarks(ctx context.Context, s store.Store, studentID, examName string, scores map[string]int) (*models.ExamRecord, error) {
	if len(scores) == 0 {
		return nil, ErrNoSubjects
	}
	if examName == "" {
		return nil, fmt.Errorf("exam name is required")
	}

	// The student must exist; marks attach to enrolled students only.
	if _, err := s.Get(ctx, StudentsCollection, studentID); err != nil {
		return nil, err
	}

	total := 0
	for _, v := range scores {
		total += v
	}
	percentage := math.Round(float64(total)/(float64(len(scores))*100)*100*100) / 100

	rec := &models.ExamRecord{
		ExamName:   examName,
		Results:    scores,
		Percentage: percentage,
		UpdatedAt:  nowStamp(),
	}
	recDoc, err := models.ToDoc(rec)
	if err != nil {
		return nil, err
	}

	key := ExamKey(examName)
	err = s.Update(ctx, StudentsCollection, studentID, map[string]interface{}{
		"examMarks." + key: recDoc,
		"lastExamMarks":    fmt.Sprintf("%.2f%% (%s)", percentage, examName),
		"updatedAt":        nowStamp(),
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// GetExamMarks returns the full exam map of a student.
func GetExamMarks(ctx context.Context, s store.Store, studentID string) (map[string]models.ExamRecord, error) {
	student, err := GetStudentByID(ctx, s, studentID)
	if err != nil {
		return nil, err
	}
	if student.ExamMarks == nil {
		return map[string]models.ExamRecord{}, nil
	}
	return student.ExamMarks, nil
}

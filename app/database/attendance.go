package database

import (
	"context"
	"fmt"

	"github.com/devasathya74/pmsrbl/app/models"
	"github.com/devasathya74/pmsrbl/app/store"
)

// SaveAttendance overwrites the single record keyed {class}_{date}. Every
// student in the submitted roster must carry an explicit present or absent
// mark; presentCount and totalStudents are computed here, not trusted from
// the caller. Last writer wins: a resave replaces the record wholesale.
func SaveAttendance(ctx context.Context, s store.Store, rec *models.AttendanceRecord) error {
	if rec.Class == "" || rec.Date == "" {
		return fmt.Errorf("class and date are required")
	}
	if len(rec.Records) == 0 {
		return fmt.Errorf("attendance roster is empty")
	}

	present := 0
	for studentID, status := range rec.Records {
		switch status {
		case models.Present:
			present++
		case models.Absent:
		default:
			return fmt.Errorf("student %s has invalid mark %q", studentID, status)
		}
	}
	rec.PresentCount = present
	rec.TotalStudents = len(rec.Records)
	rec.Timestamp = nowStamp()
	rec.ID = models.AttendanceDocID(rec.Class, rec.Date)

	data, err := models.ToDoc(rec)
	if err != nil {
		return err
	}
	return s.Set(ctx, AttendanceCollection, rec.ID, data)
}

// LoadAttendance returns the record for a class and date, or
// store.ErrNotFound when the day has not been marked. Callers show "not
// marked" for a missing record, which is a different state from explicit
// absence.
func LoadAttendance(ctx context.Context, s store.Store, class, date string) (*models.AttendanceRecord, error) {
	doc, err := s.Get(ctx, AttendanceCollection, models.AttendanceDocID(class, date))
	if err != nil {
		return nil, err
	}
	return models.AttendanceFromDoc(doc)
}

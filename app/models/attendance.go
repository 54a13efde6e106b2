package models

import (
	"github.com/devasathya74/pmsrbl/app/store"
)

// AttendanceRecord is one class's roster of marks for one calendar date.
// The document id is "{class}_{date}", which makes repeated saves for the
// same class and date overwrite rather than duplicate. A save replaces the
// whole record; there is no merge with an earlier save.
type AttendanceRecord struct {
	ID            string                    `json:"id,omitempty"`
	Class         string                    `json:"class" validate:"required"`
	Date          string                    `json:"date" validate:"required"`
	TeacherID     string                    `json:"teacherId,omitempty"`
	TeacherName   string                    `json:"teacherName,omitempty"`
	TotalStudents int                       `json:"totalStudents"`
	PresentCount  int                       `json:"presentCount"`
	Records       map[string]PresenceStatus `json:"records" validate:"required"`
	Timestamp     string                    `json:"timestamp"`
}

// AttendanceDocID is the natural key of an attendance record.
func AttendanceDocID(class, date string) string {
	return class + "_" + date
}

func AttendanceFromDoc(doc *store.Document) (*AttendanceRecord, error) {
	var rec AttendanceRecord
	if err := FromDoc(doc.Data, &rec); err != nil {
		return nil, err
	}
	rec.ID = doc.ID
	if rec.Records == nil {
		rec.Records = map[string]PresenceStatus{}
	}
	return &rec, nil
}

package models

import (
	"github.com/devasathya74/pmsrbl/app/store"
)

// ContactMessage is an inbound message from the public contact form. The
// read flag is its only state beyond create/delete.
type ContactMessage struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message" validate:"required"`
	Status    string `json:"status,omitempty"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt,omitempty"`
}

func ContactFromDoc(doc *store.Document) (*ContactMessage, error) {
	var m ContactMessage
	if err := FromDoc(doc.Data, &m); err != nil {
		return nil, err
	}
	m.ID = doc.ID
	return &m, nil
}

// TeacherReport is a note a teacher sends to the principal. Reports live in
// the shared messages collection, tagged with type "teacher_report".
type TeacherReport struct {
	ID        string `json:"id,omitempty"`
	Type      string `json:"type"`
	FromName  string `json:"fromName"`
	FromID    string `json:"fromId,omitempty"`
	FromClass string `json:"fromClass,omitempty"`
	Subject   string `json:"subject" validate:"required"`
	Message   string `json:"message" validate:"required"`
	Date      string `json:"date"`
	Read      bool   `json:"read"`
}

func ReportFromDoc(doc *store.Document) (*TeacherReport, error) {
	var r TeacherReport
	if err := FromDoc(doc.Data, &r); err != nil {
		return nil, err
	}
	r.ID = doc.ID
	return &r, nil
}

// Notification is a site-wide announcement shown on the public pages.
type Notification struct {
	ID        string `json:"id,omitempty"`
	Icon      string `json:"icon,omitempty"`
	Message   string `json:"message" validate:"required"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"createdAt,omitempty"`
}

func NotificationFromDoc(doc *store.Document) (*Notification, error) {
	var n Notification
	if err := FromDoc(doc.Data, &n); err != nil {
		return nil, err
	}
	n.ID = doc.ID
	return &n, nil
}

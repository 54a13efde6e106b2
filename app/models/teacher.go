package models

import (
	"github.com/devasathya74/pmsrbl/app/store"
)

// Teacher is a staff record. UID links the record to the login credential
// created alongside it; deleting the record does not revoke the credential.
type Teacher struct {
	ID            string        `json:"id,omitempty"`
	UID           string        `json:"uid,omitempty"`
	Name          string        `json:"name" validate:"required"`
	Email         string        `json:"email" validate:"required,email"`
	Mobile        string        `json:"mobile,omitempty"`
	Qualification string        `json:"qualification,omitempty"`
	Subject       string        `json:"subject,omitempty"`
	AssignedClass string        `json:"assignedClass,omitempty"`
	JoiningDate   string        `json:"joiningDate,omitempty"`
	Photo         string        `json:"photo,omitempty"`
	Status        RecordStatus  `json:"status"`
	CreatedAt     string        `json:"createdAt,omitempty"`
	UpdatedAt     string        `json:"updatedAt,omitempty"`
}

func TeacherFromDoc(doc *store.Document) (*Teacher, error) {
	var t Teacher
	if err := FromDoc(doc.Data, &t); err != nil {
		return nil, err
	}
	t.ID = doc.ID
	if t.Status == "" {
		t.Status = StatusActive
	}
	return &t, nil
}

// Identity is the role-tagged record keyed by a credential uid. It is what a
// login consults to decide which dashboard a user may see.
type Identity struct {
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	Role      Role   `json:"role"`
	CreatedAt string `json:"createdAt,omitempty"`
}

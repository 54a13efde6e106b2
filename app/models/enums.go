package models

// AdmissionStatus defines the one-way lifecycle of an admission application.
// The only legal transitions are pending -> approved and pending -> rejected;
// approved and rejected are terminal.
type AdmissionStatus string

const (
	AdmissionPending  AdmissionStatus = "pending"
	AdmissionApproved AdmissionStatus = "approved"
	AdmissionRejected AdmissionStatus = "rejected"
)

// RecordStatus defines the possible status values for student and teacher
// records.
type RecordStatus string

const (
	StatusActive   RecordStatus = "active"
	StatusInactive RecordStatus = "inactive"
)

// PresenceStatus defines the two attendance marks. A saved attendance record
// never holds a third "unmarked" state; an unmarked day is a missing record.
type PresenceStatus string

const (
	Present PresenceStatus = "present"
	Absent  PresenceStatus = "absent"
)

// Role defines the role tags on identity records.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
)

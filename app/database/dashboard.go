package database

import (
	"context"

	"github.com/devasathya74/pmsrbl/app/models"
	"github.com/devasathya74/pmsrbl/app/store"
)

// DashboardStats are the headline counters on the admin dashboard.
type DashboardStats struct {
	TotalAdmissions   int `json:"totalAdmissions"`
	PendingAdmissions int `json:"pendingAdmissions"`
	TotalStudents     int `json:"totalStudents"`
	TotalTeachers     int `json:"totalTeachers"`
	UnreadMessages    int `json:"unreadMessages"`
}

// GetDashboardStats counts over fresh listings; nothing is cached between
// requests.
func GetDashboardStats(ctx context.Context, s store.Store) (*DashboardStats, error) {
	stats := &DashboardStats{}

	admissions, err := ListAdmissions(ctx, s)
	if err != nil {
		return nil, err
	}
	stats.TotalAdmissions = len(admissions)
	stats.PendingAdmissions = len(FilterAdmissionsByStatus(admissions, models.AdmissionPending))

	students, err := ListStudents(ctx, s)
	if err != nil {
		return nil, err
	}
	stats.TotalStudents = len(students)

	teachers, err := ListTeachers(ctx, s)
	if err != nil {
		return nil, err
	}
	stats.TotalTeachers = len(teachers)

	contacts, err := ListContacts(ctx, s)
	if err != nil {
		return nil, err
	}
	stats.UnreadMessages = len(FilterContactsByRead(contacts, false))

	return stats, nil
}

// Package database implements the admission-to-enrollment lifecycle and the
// registry, ledger and messaging operations over the document store. Every
// function takes the store as its first argument and holds no state of its
// own.
package database

import (
	"context"
	"errors"
	"time"

	"github.com/devasathya74/pmsrbl/app/store"
)

// Collection names in the document store.
const (
	AdmissionsCollection    = "admissions"
	StudentsCollection      = "students"
	TeachersCollection      = "teachers"
	UsersCollection         = "users"
	AttendanceCollection    = "attendance"
	ContactsCollection      = "contacts"
	MessagesCollection      = "messages"
	NotificationsCollection = "notifications"
)

// Page sizes for the cursor loops that assemble full listings.
const (
	studentsPageSize   = 20
	teachersPageSize   = 15
	admissionsPageSize = 25
)

var (
	// ErrInvalidTransition is returned when a status change is attempted on
	// an application that already left the pending state. Transitions are
	// one-way and terminal.
	ErrInvalidTransition = errors.New("application is no longer pending")

	// ErrNoSubjects is returned when an exam save carries no subject scores.
	ErrNoSubjects = errors.New("at least one subject score is required")

	// ErrOrphanedCredential is returned when a teacher's login account was
	// created but the profile write failed and the compensating credential
	// delete failed too. The operator has to reconcile by hand.
	ErrOrphanedCredential = errors.New("account created but profile save failed")
)

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// listAll assembles a full collection listing from fixed-size pages in
// document-id order, using the last document of each page as the cursor. The
// id cursor is unique and present on every document, so records that share a
// timestamp or predate the timestamp fields are never skipped; callers sort
// chronologically in-process. A page shorter than the requested size signals
// exhaustion.
func listAll(ctx context.Context, s store.Store, collection string, pageSize int) ([]*store.Document, error) {
	var out []*store.Document
	var cursor string
	for {
		page, err := s.List(ctx, collection, store.Query{
			Limit:        pageSize,
			StartAfterID: cursor,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, page...)
		if len(page) < pageSize {
			return out, nil
		}
		cursor = page[len(page)-1].ID
	}
}

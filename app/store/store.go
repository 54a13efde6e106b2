// Package store holds the contracts for the external collaborators the
// application depends on: a document store, a blob store for file
// attachments, and a login-credential provider. Production implementations
// back onto Firestore, Supabase storage and Firebase Auth; in-memory
// implementations back the test suite.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no document exists under the given id.
// Callers rely on distinguishing "not found" from a transport failure, e.g.
// the attendance ledger treats a missing record as "not yet marked".
var ErrNotFound = errors.New("document not found")

// Document is a single record in a collection. Data is the raw field map as
// stored; decoding into a typed model happens at the boundary in app/models.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// Filter is a field-equality condition for List queries.
type Filter struct {
	Field string
	Value interface{}
}

// Query describes a List request. The cursor is the last document of the
// previous page: StartAfterID alone when ordering by document id, or the
// (StartAfter, StartAfterID) pair when OrderBy is set, so that documents
// tying on the order field are never skipped. The cursor is active only when
// StartAfterID is non-empty.
type Query struct {
	Filters      []Filter
	OrderBy      string // "" orders by document id
	Desc         bool
	Limit        int
	StartAfter   interface{} // order-field value of the cursor document
	StartAfterID string      // document id of the cursor document
}

// Store is the document-store contract: key-unique collections of JSON-like
// records. All calls are remote and may fail with a transport or permission
// error; there are no transactions spanning keys.
type Store interface {
	// Add creates a document with a store-generated id and returns the id.
	Add(ctx context.Context, collection string, data map[string]interface{}) (string, error)
	// Set creates or fully replaces the document with the given id.
	Set(ctx context.Context, collection, id string, data map[string]interface{}) error
	// Get returns the document or ErrNotFound.
	Get(ctx context.Context, collection, id string) (*Document, error)
	// Update merges only the given fields into an existing document. Keys may
	// use dotted paths ("examMarks.Unit_Test_1") to address nested fields.
	Update(ctx context.Context, collection, id string, fields map[string]interface{}) error
	// Delete removes the document. Deleting a missing document is not an error.
	Delete(ctx context.Context, collection, id string) error
	// List runs a filtered, ordered, paginated query.
	List(ctx context.Context, collection string, q Query) ([]*Document, error)
}

// BlobStore uploads file attachments and returns a public URL. No listing or
// delete contract is used by this system.
type BlobStore interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
}

// Accounts provisions login credentials for staff accounts. Account creation
// happens through a secondary instance so the caller's own session is not
// disturbed; DeleteAccount exists only as the compensation step when a
// profile write fails after the credential was already created.
type Accounts interface {
	CreateAccount(ctx context.Context, email, password string) (uid string, err error)
	DeleteAccount(ctx context.Context, uid string) error
}

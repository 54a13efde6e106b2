package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devasathya74/pmsrbl/app/models"
	"github.com/devasathya74/pmsrbl/app/store"
)

// failingStore passes everything through except Set on one collection, to
// exercise the compensation path in teacher provisioning.
type failingStore struct {
	store.Store
	failCollection string
}

func (f *failingStore) Set(ctx context.Context, collection, id string, data map[string]interface{}) error {
	if collection == f.failCollection {
		return fmt.Errorf("set %s/%s: simulated failure", collection, id)
	}
	return f.Store.Set(ctx, collection, id, data)
}

// failAllDeletes makes every credential delete fail, to exercise the
// orphaned-credential report.
type failAllDeletes struct {
	*store.MemoryAccounts
}

func (a *failAllDeletes) DeleteAccount(ctx context.Context, uid string) error {
	return fmt.Errorf("delete account %s: simulated failure", uid)
}

func newTeacher(name, email string) *models.Teacher {
	return &models.Teacher{
		Name:    name,
		Email:   email,
		Subject: "Mathematics",
	}
}

func TestCreateTeacherProvisionsAllThree(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	accounts := store.NewMemoryAccounts()

	teacher := newTeacher("Kavita Rao", "kavita@school.example")
	id, err := CreateTeacher(ctx, s, accounts, teacher, "s3cret99")
	require.NoError(t, err)
	require.NotEmpty(t, teacher.UID)

	// credential
	assert.Equal(t, "kavita@school.example", accounts.Users[teacher.UID])

	// role record under the uid
	doc, err := s.Get(ctx, UsersCollection, teacher.UID)
	require.NoError(t, err)
	assert.Equal(t, "teacher", doc.Data["role"])
	assert.Equal(t, "kavita@school.example", doc.Data["email"])

	// profile embedding the uid
	got, err := GetTeacherByID(ctx, s, id)
	require.NoError(t, err)
	assert.Equal(t, teacher.UID, got.UID)
	assert.Equal(t, models.StatusActive, got.Status)
}

func TestCreateTeacherRequiresPassword(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	accounts := store.NewMemoryAccounts()

	_, err := CreateTeacher(ctx, s, accounts, newTeacher("Kavita Rao", "kavita@school.example"), "")
	assert.Error(t, err)
	assert.Empty(t, accounts.Users)
}

func TestCreateTeacherCredentialFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	accounts := store.NewMemoryAccounts()
	accounts.FailNext = true

	_, err := CreateTeacher(ctx, s, accounts, newTeacher("Kavita Rao", "kavita@school.example"), "s3cret99")
	assert.Error(t, err)

	teachers, err := ListTeachers(ctx, s)
	require.NoError(t, err)
	assert.Empty(t, teachers)
}

func TestCreateTeacherCompensatesCredential(t *testing.T) {
	ctx := context.Background()
	s := &failingStore{Store: store.NewMemoryStore(), failCollection: UsersCollection}
	accounts := store.NewMemoryAccounts()

	_, err := CreateTeacher(ctx, s, accounts, newTeacher("Kavita Rao", "kavita@school.example"), "s3cret99")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrOrphanedCredential)
	// the just-created credential was rolled back, the email stays usable
	assert.Empty(t, accounts.Users)
}

func TestCreateTeacherReportsOrphanedCredential(t *testing.T) {
	ctx := context.Background()
	s := &failingStore{Store: store.NewMemoryStore(), failCollection: UsersCollection}
	accounts := &failAllDeletes{MemoryAccounts: store.NewMemoryAccounts()}

	_, err := CreateTeacher(ctx, s, accounts, newTeacher("Kavita Rao", "kavita@school.example"), "s3cret99")
	assert.ErrorIs(t, err, ErrOrphanedCredential)
	// the stuck credential is still there for the operator to reconcile
	assert.Len(t, accounts.Users, 1)
}

func TestGetTeacherByEmail(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	accounts := store.NewMemoryAccounts()

	_, err := CreateTeacher(ctx, s, accounts, newTeacher("Kavita Rao", "kavita@school.example"), "s3cret99")
	require.NoError(t, err)

	got, err := GetTeacherByEmail(ctx, s, "kavita@school.example")
	require.NoError(t, err)
	assert.Equal(t, "Kavita Rao", got.Name)

	_, err = GetTeacherByEmail(ctx, s, "nobody@school.example")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteTeacherKeepsCredential(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	accounts := store.NewMemoryAccounts()

	teacher := newTeacher("Kavita Rao", "kavita@school.example")
	id, err := CreateTeacher(ctx, s, accounts, teacher, "s3cret99")
	require.NoError(t, err)

	require.NoError(t, DeleteTeacher(ctx, s, id))
	_, err = GetTeacherByID(ctx, s, id)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Contains(t, accounts.Users, teacher.UID)
}

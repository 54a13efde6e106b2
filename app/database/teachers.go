package database

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/devasathya74/pmsrbl/app/models"
	"github.com/devasathya74/pmsrbl/app/store"
)

// ListTeachers returns every teacher, assembled from fixed-size pages and
// sorted oldest first.
func ListTeachers(ctx context.Context, s store.Store) ([]*models.Teacher, error) {
	docs, err := listAll(ctx, s, TeachersCollection, teachersPageSize)
	if err != nil {
		return nil, err
	}
	teachers := make([]*models.Teacher, 0, len(docs))
	for _, doc := range docs {
		t, err := models.TeacherFromDoc(doc)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	sort.SliceStable(teachers, func(i, j int) bool { return teachers[i].CreatedAt < teachers[j].CreatedAt })
	return teachers, nil
}

// GetTeacherByID returns a single teacher or store.ErrNotFound.
func GetTeacherByID(ctx context.Context, s store.Store, id string) (*models.Teacher, error) {
	doc, err := s.Get(ctx, TeachersCollection, id)
	if err != nil {
		return nil, err
	}
	return models.TeacherFromDoc(doc)
}

// GetTeacherByEmail finds the teacher profile bound to a login email, which
// is how the teacher dashboard resolves who just signed in.
func GetTeacherByEmail(ctx context.Context, s store.Store, email string) (*models.Teacher, error) {
	docs, err := s.List(ctx, TeachersCollection, store.Query{
		Filters: []store.Filter{{Field: "email", Value: email}},
		Limit:   1,
	})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, store.ErrNotFound
	}
	return models.TeacherFromDoc(docs[0])
}

// CreateTeacher provisions a login credential, writes the role-tagged
// identity record under the new uid and then the teacher profile embedding
// that uid. The three writes are not atomic: if the credential step fails
// nothing is written; if a later step fails the just-created credential is
// deleted as compensation, and when that delete fails too the operator gets
// ErrOrphanedCredential and must reconcile by hand.
func CreateTeacher(ctx context.Context, s store.Store, accounts store.Accounts, t *models.Teacher, password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password is required for new teachers")
	}

	uid, err := accounts.CreateAccount(ctx, t.Email, password)
	if err != nil {
		return "", err
	}

	compensate := func(cause error) error {
		if delErr := accounts.DeleteAccount(ctx, uid); delErr != nil {
			log.Printf("credential cleanup for %s failed: %v", t.Email, delErr)
			return fmt.Errorf("%w: %v", ErrOrphanedCredential, cause)
		}
		return cause
	}

	identity, err := models.ToDoc(&models.Identity{
		Email:     t.Email,
		Name:      t.Name,
		Role:      models.RoleTeacher,
		CreatedAt: nowStamp(),
	})
	if err != nil {
		return "", compensate(err)
	}
	if err := s.Set(ctx, UsersCollection, uid, identity); err != nil {
		return "", compensate(err)
	}

	t.UID = uid
	if t.Status == "" {
		t.Status = models.StatusActive
	}
	t.CreatedAt = nowStamp()
	data, err := models.ToDoc(t)
	if err != nil {
		return "", compensate(err)
	}
	id, err := s.Add(ctx, TeachersCollection, data)
	if err != nil {
		return "", compensate(err)
	}
	return id, nil
}

// UpdateTeacher merges only the provided fields and stamps the update time.
func UpdateTeacher(ctx context.Context, s store.Store, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return fmt.Errorf("no fields to update")
	}
	fields["updatedAt"] = nowStamp()
	return s.Update(ctx, TeachersCollection, id, fields)
}

// DeleteTeacher removes the profile document only. The paired login
// credential stays valid until revoked out of band.
func DeleteTeacher(ctx context.Context, s store.Store, id string) error {
	return s.Delete(ctx, TeachersCollection, id)
}

package store

import (
	"context"
	"fmt"
	"sync"

	"firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
)

// FirebaseAccounts implements Accounts on top of Firebase Auth. Creating a
// user through the admin client does not touch the operator's own session,
// which is the behaviour the dashboard needs when an admin provisions a
// teacher login.
type FirebaseAccounts struct {
	client *auth.Client
}

func NewFirebaseAccounts(client *auth.Client) *FirebaseAccounts {
	return &FirebaseAccounts{client: client}
}

func (a *FirebaseAccounts) CreateAccount(ctx context.Context, email, password string) (string, error) {
	params := (&auth.UserToCreate{}).Email(email).Password(password)
	user, err := a.client.CreateUser(ctx, params)
	if err != nil {
		return "", fmt.Errorf("create account for %s: %w", email, err)
	}
	return user.UID, nil
}

func (a *FirebaseAccounts) DeleteAccount(ctx context.Context, uid string) error {
	if err := a.client.DeleteUser(ctx, uid); err != nil {
		return fmt.Errorf("delete account %s: %w", uid, err)
	}
	return nil
}

// MemoryAccounts is the test double for the credential provider.
type MemoryAccounts struct {
	mu       sync.Mutex
	Users    map[string]string // uid -> email
	FailNext bool              // next CreateAccount fails
	FailUID  string            // DeleteAccount on this uid fails
}

func NewMemoryAccounts() *MemoryAccounts {
	return &MemoryAccounts{Users: make(map[string]string)}
}

func (a *MemoryAccounts) CreateAccount(ctx context.Context, email, password string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.FailNext {
		a.FailNext = false
		return "", fmt.Errorf("create account for %s: simulated failure", email)
	}
	if password == "" {
		return "", fmt.Errorf("create account for %s: password required", email)
	}
	uid := uuid.New().String()
	a.Users[uid] = email
	return uid, nil
}

func (a *MemoryAccounts) DeleteAccount(ctx context.Context, uid string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.FailUID == uid {
		return fmt.Errorf("delete account %s: simulated failure", uid)
	}
	delete(a.Users, uid)
	return nil
}

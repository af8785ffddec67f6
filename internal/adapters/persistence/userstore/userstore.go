package userstore

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"thoth-hr/internal/core/domain"
)

// Repository defines the registered-user registry interface. Users live
// outside the domain snapshot: they are the accounts that can sign in to
// the dashboard, persisted as one JSON document with hashed passwords.
type Repository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *domain.User) error
}

// fileRepository implements Repository over a flat users.json file
type fileRepository struct {
	mu   sync.Mutex
	path string
}

// NewFileRepository creates a user repository backed by users.json under dir
func NewFileRepository(dir string) Repository {
	return &fileRepository{path: filepath.Join(dir, "users.json")}
}

// load reads the whole user document. A missing file is an empty registry.
func (r *fileRepository) load() ([]domain.User, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.User{}, nil
		}
		return nil, err
	}

	var users []domain.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// save writes the whole user document back
func (r *fileRepository) save(users []domain.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0o600)
}

// List returns all registered users
func (r *fileRepository) List(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// GetByEmail returns the user with the given email
func (r *fileRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// ExistsByEmail checks if a user with the given email is registered
func (r *fileRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Create appends a user. Registration either completes wholly or leaves
// no record behind: the document is only rewritten after the duplicate
// check passes.
func (r *fileRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, user.Email) {
			return domain.ErrUserAlreadyExists
		}
	}
	users = append(users, *user)
	return r.save(users)
}

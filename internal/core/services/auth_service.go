package services

import (
	"context"
	"errors"
	"strings"

	"thoth-hr/internal/adapters/persistence/userstore"
	"thoth-hr/internal/config"
	"thoth-hr/internal/core/domain"
	"thoth-hr/internal/pkg/jwt"
	"thoth-hr/internal/pkg/logger"
	"thoth-hr/internal/pkg/password"

	"github.com/google/uuid"
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

// AuthService handles registration and authentication against the
// file-backed user registry. Each call is a single request/response unit
// of work: it either completes or fails with no side effects left behind.
type AuthService struct {
	users userstore.Repository
	cfg   *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(users userstore.Repository, cfg *config.Config) *AuthService {
	return &AuthService{users: users, cfg: cfg}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is a user record with the password hash stripped
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User        *UserResponse `json:"user"`
	AccessToken string        `json:"access_token"`
}

func toResponse(u *domain.User) *UserResponse {
	return &UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

// Register registers a new user with a bcrypt-hashed password.
// Duplicate emails are rejected without creating a second record.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*UserResponse, error) {
	if !password.ValidatePassword(input.Password) {
		return nil, ErrWeakPassword
	}

	exists, err := s.users.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:       uuid.New().String(),
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.TrimSpace(input.Email),
		Password: hashed,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	logger.Info(ctx, "user registered: %s", user.Email)
	return toResponse(user), nil
}

// Login authenticates a user and issues an access token. A missing email
// and a wrong password return the same error so callers cannot tell which
// part of the credential failed.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateAccessToken(
		user.ID,
		user.Name,
		user.Email,
		s.cfg.JWT.Secret,
		s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "user logged in: %s", user.Email)
	return &AuthResponse{User: toResponse(user), AccessToken: token}, nil
}

// ValidateAccessToken validates an access token
func (s *AuthService) ValidateAccessToken(accessToken string) (*jwt.Claims, error) {
	return jwt.ValidateAccessToken(accessToken, s.cfg.JWT.Secret)
}

// SeedDemoUsers creates the demo accounts when the registry is empty.
// Development convenience only; passwords are hashed like any other.
func (s *AuthService) SeedDemoUsers(ctx context.Context) error {
	existing, err := s.users.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	demo := []struct {
		name, email, pass string
	}{
		{"Admin", "admin@example.com", "admin123"},
		{"Demo User", "user@example.com", "user123"},
	}
	for _, d := range demo {
		hashed, err := password.Hash(d.pass)
		if err != nil {
			return err
		}
		user := &domain.User{
			ID:       uuid.New().String(),
			Name:     d.name,
			Email:    d.email,
			Password: hashed,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return err
		}
	}

	logger.Info(ctx, "seeded %d demo users", len(demo))
	return nil
}

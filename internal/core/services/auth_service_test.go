package services

import (
	"context"
	"testing"

	"thoth-hr/internal/adapters/persistence/userstore"
	"thoth-hr/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	cfg := &config.Config{
		AppMode: "dev",
		JWT:     config.JWTConfig{Secret: "test-secret", AccessTokenMins: 5},
	}
	return NewAuthService(userstore.NewFileRepository(t.TempDir()), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)

	resp, err := svc.Login(ctx, &LoginInput{Email: "alice@example.com", Password: "secret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, user.ID, resp.User.ID)

	claims, err := svc.ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Register(context.Background(), &RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "short",
	})
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret-pass"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterInput{Name: "Imposter", Email: "alice@example.com", Password: "other-pass"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	// Case-insensitive duplicate check
	_, err = svc.Register(ctx, &RegisterInput{Name: "Imposter", Email: "ALICE@example.com", Password: "other-pass"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginErrorsAreIndistinguishable(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret-pass"})
	require.NoError(t, err)

	_, missingErr := svc.Login(ctx, &LoginInput{Email: "nobody@example.com", Password: "secret-pass"})
	_, wrongErr := svc.Login(ctx, &LoginInput{Email: "alice@example.com", Password: "wrong-pass"})

	assert.ErrorIs(t, missingErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	assert.Equal(t, missingErr, wrongErr, "a missing email and a wrong password must look the same")
}

func TestSeedDemoUsersOnlyOnEmptyRegistry(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.SeedDemoUsers(ctx))

	resp, err := svc.Login(ctx, &LoginInput{Email: "admin@example.com", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "Admin", resp.User.Name)

	// A second seed run must not duplicate accounts
	require.NoError(t, svc.SeedDemoUsers(ctx))
	_, err = svc.Register(ctx, &RegisterInput{Name: "X", Email: "admin@example.com", Password: "whatever1"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

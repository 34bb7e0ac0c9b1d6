package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gunnargantzel/NMS-sub000/internal/auth"
	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/repository"
	"github.com/gunnargantzel/NMS-sub000/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T, store *repository.Store) (*service.AuthService, *auth.TokenManager) {
	t.Helper()
	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)
	return service.NewAuthService(store.Users, tokens, nopLogger), tokens
}

func TestAuthService_BootstrapLoginVerify(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	svc, _ := newAuthService(t, store)

	admin, err := svc.EnsureAdmin(ctx, "admin", "s3cret!")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)

	_, err = svc.EnsureAdmin(ctx, "admin2", "x")
	assert.ErrorIs(t, err, service.ErrBootstrapSkipped)

	login, err := svc.Login(ctx, &domain.LoginRequest{Username: "admin", Password: "s3cret!"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, "admin", login.User.Username)
	assert.NotEmpty(t, login.ExpiresAt)

	user, err := store.Users.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.NotNil(t, user.LastLoginAt)

	verify, err := svc.Verify(ctx, login.Token)
	require.NoError(t, err)
	assert.True(t, verify.Valid)
	assert.Equal(t, admin.ID, verify.User.ID)
}

func TestAuthService_LoginRejected(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	svc, _ := newAuthService(t, store)

	_, err := svc.EnsureAdmin(ctx, "admin", "s3cret!")
	require.NoError(t, err)

	hash, err := auth.HashPassword("pw")
	require.NoError(t, err)
	require.NoError(t, store.Users.Create(ctx, &domain.User{Username: "gone", PasswordHash: hash, Role: domain.RoleSurveyor, IsActive: false}))

	tests := []struct {
		name string
		req  domain.LoginRequest
	}{
		{"wrong password", domain.LoginRequest{Username: "admin", Password: "nope"}},
		{"unknown user", domain.LoginRequest{Username: "ghost", Password: "s3cret!"}},
		{"inactive user", domain.LoginRequest{Username: "gone", Password: "pw"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, &tt.req)
			assert.ErrorIs(t, err, service.ErrUnauthorized)
		})
	}
}

func TestAuthService_VerifyRejectsBadTokens(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	svc, tokens := newAuthService(t, store)

	_, err := svc.Verify(ctx, "not-a-token")
	assert.ErrorIs(t, err, service.ErrUnauthorized)

	// token for a user that does not exist
	token, _, err := tokens.Issue(&domain.User{BaseModel: domain.BaseModel{ID: 77}, Username: "ghost", Role: domain.RoleSurveyor})
	require.NoError(t, err)
	_, err = svc.Verify(ctx, token)
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}

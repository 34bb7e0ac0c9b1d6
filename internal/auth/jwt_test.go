package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gunnargantzel/NMS-sub000/internal/auth"
	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *domain.User {
	u := &domain.User{Username: "kari", FullName: "Kari Nordmann", Role: domain.RoleSurveyor}
	u.ID = 42
	return u
}

func TestTokenManager_IssueAndValidate(t *testing.T) {
	tm, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)

	token, expiresAt, err := tm.Issue(testUser())
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	userCtx, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userCtx.UserID)
	assert.Equal(t, "kari", userCtx.Username)
	assert.Equal(t, "Kari Nordmann", userCtx.DisplayName)
	assert.Equal(t, domain.RoleSurveyor, userCtx.Role)
	assert.False(t, userCtx.IsAdmin())
}

func TestTokenManager_Expired(t *testing.T) {
	issued := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	tm, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)
	tm.WithClock(func() time.Time { return issued })

	token, _, err := tm.Issue(testUser())
	require.NoError(t, err)

	tm.WithClock(func() time.Time { return issued.Add(2 * time.Hour) })
	_, err = tm.Validate(token)
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuer, _ := auth.NewTokenManager("secret-a", time.Hour)
	verifier, _ := auth.NewTokenManager("secret-b", time.Hour)

	token, _, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenManager_RejectsOtherAlgorithms(t *testing.T) {
	tm, _ := auth.NewTokenManager("test-secret", time.Hour)

	claims := jwt.MapClaims{"sub": "1", "iss": "nms-api", "exp": time.Now().Add(time.Hour).Unix()}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tm.Validate(unsigned)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestNewTokenManager_EmptySecret(t *testing.T) {
	_, err := auth.NewTokenManager("", time.Hour)
	assert.Error(t, err)
}

func TestPassword(t *testing.T) {
	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.NoError(t, auth.CheckPassword(hash, "hunter2"))
	assert.ErrorIs(t, auth.CheckPassword(hash, "wrong"), auth.ErrPasswordMismatch)
}

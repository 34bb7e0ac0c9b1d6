package config

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecrets map[string]string

func (f fakeSecrets) GetSecretOrEnv(_ context.Context, secretName, _ string) (string, error) {
	if v, ok := f[secretName]; ok {
		return v, nil
	}
	return "", errors.New("secret not found")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, 24, cfg.Auth.TokenTTLHours)
	assert.Equal(t, "local", cfg.Storage.Mode)
	assert.Equal(t, "0 0 * * * *", cfg.Jobs.DriftCheckCron)
	assert.False(t, cfg.Mail.Enabled)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
}

func TestApplySecrets(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Password = "file-password"

	err := applySecrets(context.Background(), cfg, fakeSecrets{
		"jwt-secret":    "vault-jwt",
		"smtp-password": "vault-smtp",
	})
	require.NoError(t, err)

	assert.Equal(t, "vault-jwt", cfg.Auth.JWTSecret)
	assert.Equal(t, "vault-smtp", cfg.Mail.Password)
	assert.Equal(t, "file-password", cfg.Database.Password, "missing secret keeps loaded value")
}

func TestApplySecrets_RequiresJWTSecret(t *testing.T) {
	err := applySecrets(context.Background(), &Config{}, fakeSecrets{})
	assert.Error(t, err)
}

func TestDurations(t *testing.T) {
	s := ServerConfig{ReadTimeout: 5, WriteTimeout: 7}
	assert.Equal(t, int64(5), int64(s.ReadTimeoutDuration().Seconds()))
	assert.Equal(t, int64(7), int64(s.WriteTimeoutDuration().Seconds()))

	a := AuthConfig{TokenTTLHours: 2}
	assert.Equal(t, float64(2), a.TokenTTL().Hours())
}

package secrets_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gunnargantzel/NMS-sub000/internal/secrets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mapFetcher map[string]string

func (m mapFetcher) GetSecret(_ context.Context, name string) (string, error) {
	if v, ok := m[name]; ok {
		return v, nil
	}
	return "", errors.New("not found")
}

func TestResolveSource(t *testing.T) {
	tests := []struct {
		source secrets.Source
		env    string
		want   secrets.Source
	}{
		{secrets.SourceAuto, "development", secrets.SourceEnvironment},
		{secrets.SourceAuto, "", secrets.SourceEnvironment},
		{secrets.SourceAuto, "production", secrets.SourceVault},
		{secrets.SourceAuto, "staging", secrets.SourceVault},
		{secrets.SourceEnvironment, "production", secrets.SourceEnvironment},
	}
	for _, tt := range tests {
		t.Run(string(tt.source)+"/"+tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, secrets.ResolveSource(tt.source, tt.env))
		})
	}
}

func TestProvider_GetSecretOrEnv(t *testing.T) {
	p := secrets.NewProviderWithFetcher(secrets.SourceVault, mapFetcher{"jwt-secret": "from-vault"}, zap.NewNop())
	ctx := context.Background()

	t.Run("vault value", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		v, err := p.GetSecretOrEnv(ctx, "jwt-secret", "JWT_SECRET")
		require.NoError(t, err)
		assert.Equal(t, "from-vault", v)
	})

	t.Run("environment override", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "from-env")
		v, err := p.GetSecretOrEnv(ctx, "jwt-secret", "JWT_SECRET")
		require.NoError(t, err)
		assert.Equal(t, "from-env", v)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := p.GetSecret(ctx, "smtp-password")
		assert.Error(t, err)
	})
}

func TestProvider_EnvironmentSource(t *testing.T) {
	p := secrets.NewProviderWithFetcher(secrets.SourceEnvironment, nil, zap.NewNop())
	t.Setenv("MAIL_PASSWORD", "pw")

	v, err := p.GetSecret(context.Background(), "MAIL_PASSWORD")
	require.NoError(t, err)
	assert.Equal(t, "pw", v)
}

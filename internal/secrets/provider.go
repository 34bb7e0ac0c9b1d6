package secrets

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

// Source says where secret values come from
type Source string

const (
	SourceEnvironment Source = "environment"
	SourceVault       Source = "vault"
	// SourceAuto picks environment for development and vault elsewhere
	SourceAuto Source = "auto"
)

// Fetcher retrieves a named secret from a backing store
type Fetcher interface {
	GetSecret(ctx context.Context, name string) (string, error)
}

// Provider resolves secrets from the environment or a vault
type Provider struct {
	source  Source
	fetcher Fetcher
	logger  *zap.Logger
}

// ProviderConfig holds configuration for the secrets provider
type ProviderConfig struct {
	Source       Source
	VaultName    string
	Environment  string
	CacheEnabled bool
	CacheTTL     time.Duration
}

// ResolveSource maps SourceAuto onto a concrete source for the environment.
func ResolveSource(source Source, environment string) Source {
	if source != SourceAuto {
		return source
	}
	switch environment {
	case "development", "local", "test", "":
		return SourceEnvironment
	default:
		return SourceVault
	}
}

// NewProvider creates a new secrets provider
func NewProvider(cfg *ProviderConfig, logger *zap.Logger) (*Provider, error) {
	source := ResolveSource(cfg.Source, cfg.Environment)

	var fetcher Fetcher
	if source == SourceVault {
		if cfg.VaultName == "" {
			return nil, fmt.Errorf("vault name required when using vault secret source")
		}
		vc, err := NewVaultClient(&VaultConfig{
			VaultName:    cfg.VaultName,
			CacheEnabled: cfg.CacheEnabled,
			CacheTTL:     cfg.CacheTTL,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize vault client: %w", err)
		}
		fetcher = vc
	}

	logger.Info("Secrets provider initialized",
		zap.String("source", string(source)),
		zap.String("environment", cfg.Environment),
	)
	return NewProviderWithFetcher(source, fetcher, logger), nil
}

// NewProviderWithFetcher builds a provider around an existing fetcher.
func NewProviderWithFetcher(source Source, fetcher Fetcher, logger *zap.Logger) *Provider {
	return &Provider{source: source, fetcher: fetcher, logger: logger}
}

// GetSecret retrieves a secret by name. For the environment source the
// name is an environment variable.
func (p *Provider) GetSecret(ctx context.Context, name string) (string, error) {
	switch p.source {
	case SourceEnvironment:
		value := os.Getenv(name)
		if value == "" {
			return "", fmt.Errorf("environment variable '%s' not set", name)
		}
		return value, nil
	case SourceVault:
		if p.fetcher == nil {
			return "", fmt.Errorf("vault client not initialized")
		}
		return p.fetcher.GetSecret(ctx, name)
	default:
		return "", fmt.Errorf("unknown secret source: %s", p.source)
	}
}

// GetSecretOrEnv returns envName from the environment when set, and
// otherwise asks the configured source for secretName.
func (p *Provider) GetSecretOrEnv(ctx context.Context, secretName, envName string) (string, error) {
	if v := os.Getenv(envName); v != "" {
		p.logger.Debug("Using environment variable override", zap.String("env_name", envName))
		return v, nil
	}
	return p.GetSecret(ctx, secretName)
}

// Source returns the resolved secret source
func (p *Provider) Source() Source {
	return p.source
}

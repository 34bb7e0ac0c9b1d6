package secrets

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azsecrets"
	"go.uber.org/zap"
)

const defaultCacheTTL = 5 * time.Minute

// VaultClient reads secrets from Azure Key Vault with an optional TTL cache
type VaultClient struct {
	client *azsecrets.Client
	logger *zap.Logger
	cache  *ttlCache
}

// VaultConfig holds configuration for the vault client
type VaultConfig struct {
	VaultName    string
	CacheEnabled bool
	CacheTTL     time.Duration
}

// NewVaultClient authenticates with DefaultAzureCredential, which covers
// environment credentials, managed identity and the Azure CLI.
func NewVaultClient(cfg *VaultConfig, logger *zap.Logger) (*VaultClient, error) {
	if cfg.VaultName == "" {
		return nil, fmt.Errorf("vault name is required")
	}

	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure credential: %w", err)
	}

	vaultURL := fmt.Sprintf("https://%s.vault.azure.net/", cfg.VaultName)
	client, err := azsecrets.NewClient(vaultURL, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Key Vault client: %w", err)
	}

	vc := &VaultClient{client: client, logger: logger}
	if cfg.CacheEnabled {
		ttl := cfg.CacheTTL
		if ttl == 0 {
			ttl = defaultCacheTTL
		}
		vc.cache = newTTLCache(ttl, time.Now)
	}

	logger.Info("Azure Key Vault client initialized",
		zap.String("vault_url", vaultURL),
		zap.Bool("cache_enabled", cfg.CacheEnabled),
	)
	return vc, nil
}

// GetSecret retrieves the latest version of a secret
func (v *VaultClient) GetSecret(ctx context.Context, name string) (string, error) {
	if v.cache != nil {
		if value, ok := v.cache.get(name); ok {
			return value, nil
		}
	}

	resp, err := v.client.GetSecret(ctx, name, "", nil)
	if err != nil {
		v.logger.Error("Failed to get secret from Key Vault",
			zap.String("secret_name", name),
			zap.Error(err),
		)
		return "", fmt.Errorf("failed to get secret '%s': %w", name, err)
	}
	if resp.Value == nil {
		return "", fmt.Errorf("secret '%s' has no value", name)
	}

	if v.cache != nil {
		v.cache.put(name, *resp.Value)
	}
	return *resp.Value, nil
}

type cachedSecret struct {
	value     string
	expiresAt time.Time
}

// ttlCache is safe for concurrent use
type ttlCache struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items map[string]cachedSecret
}

func newTTLCache(ttl time.Duration, now func() time.Time) *ttlCache {
	return &ttlCache{ttl: ttl, now: now, items: make(map[string]cachedSecret)}
}

func (c *ttlCache) get(name string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[name]
	if !ok {
		return "", false
	}
	if !c.now().Before(item.expiresAt) {
		delete(c.items, name)
		return "", false
	}
	return item.value, true
}

func (c *ttlCache) put(name, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[name] = cachedSecret{value: value, expiresAt: c.now().Add(c.ttl)}
}

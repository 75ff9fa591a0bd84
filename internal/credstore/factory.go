package credstore

import (
	"context"
	"fmt"

	"github.com/intelligrievance/grievance-client/internal/core/ports"
	"github.com/intelligrievance/grievance-client/internal/pkg/config"
)

// Backend names accepted by FromConfig.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// FromConfig selects the credential store backend from configuration.
// The file backend is the default; redis serves environments where the
// process filesystem does not survive restarts.
func FromConfig(ctx context.Context, cfg *config.Config) (ports.CredentialStore, error) {
	switch cfg.CredentialsBackend {
	case "", BackendFile:
		return NewFileStore(cfg.CredentialsFile), nil
	case BackendRedis:
		client, err := Connect(ctx, RedisConfig{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, fmt.Errorf("credentials backend redis: %w", err)
		}
		return NewRedisStore(client), nil
	default:
		return nil, fmt.Errorf("unknown credentials backend %q", cfg.CredentialsBackend)
	}
}

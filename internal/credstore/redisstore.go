package credstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/intelligrievance/grievance-client/internal/core/domain"
)

const (
	// sessionKey is the fixed record name holding the serialized session.
	sessionKey     = "intelligrievance:session"
	defaultTimeout = 5 * time.Second
)

// RedisConfig captures the settings for establishing a Redis connection.
type RedisConfig struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect initialises a Redis client and validates connectivity with a
// ping. A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// RedisStore persists the session under a fixed key, for environments
// where the process filesystem does not survive restarts.
type RedisStore struct {
	client  *redis.Client
	timeout time.Duration
}

// NewRedisStore wraps an established Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, timeout: defaultTimeout}
}

// Save writes the session under the fixed record name with no expiry;
// token lifetime is the service's concern, not the store's.
func (s *RedisStore) Save(session domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	return s.client.Set(ctx, sessionKey, data, 0).Err()
}

// Load returns the persisted session; any miss or decode failure
// reports ok == false.
func (s *RedisStore) Load() (domain.Session, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	data, err := s.client.Get(ctx, sessionKey).Bytes()
	if err != nil {
		return domain.Session{}, false
	}
	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return domain.Session{}, false
	}
	if !session.Valid() {
		return domain.Session{}, false
	}
	return session, true
}

// Clear removes the persisted session. A missing key is a no-op.
func (s *RedisStore) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	return s.client.Del(ctx, sessionKey).Err()
}

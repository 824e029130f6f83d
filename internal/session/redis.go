package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Belphemur/ShowBrowser/v2/internal/config"
	"github.com/Belphemur/ShowBrowser/v2/internal/models"
)

const (
	// defaultKeyPrefix namespaces session keys in Redis to avoid collisions.
	defaultKeyPrefix = "showbrowser:session:"

	opTimeout  = 2 * time.Second
	scanBatch  = 100
	pingWindow = 5 * time.Second
)

func init() {
	Register("redis", newRedisStore)
}

// redisStore implements Store using Redis/Valkey.
//
// Each session is one string key "{prefix}{sessionID}" holding the JSON encoded
// PanelVisibility, written with SET ... EX so expiry is handled server-side.
// Size is not enforced; Redis maxmemory policies and the TTL bound growth.
//
// Redis failures never reach the caller: they are logged and a failed Load
// reads as a miss, i.e. both panels closed.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

func newRedisStore(cfg ProviderConfig) (Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Verify connectivity.
	ctx, cancel := context.WithTimeout(context.Background(), pingWindow)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &redisStore{
		client: client,
		ttl:    cfg.TTL,
		prefix: prefix,
	}, nil
}

func (r *redisStore) key(sessionID string) string {
	return r.prefix + sessionID
}

func (r *redisStore) logError(msg string, sessionID string, err error) {
	logger := config.GetLogger()
	logger.Error().Err(err).Str("session", sessionID).Msg(msg)
}

func (r *redisStore) Load(ctx context.Context, sessionID string) (models.PanelVisibility, bool) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var v models.PanelVisibility
	data, err := r.client.Get(ctx, r.key(sessionID)).Bytes()
	if err != nil {
		// redis.Nil means the key doesn't exist, a normal miss.
		if !errors.Is(err, redis.Nil) {
			r.logError("redis session Load failed", sessionID, err)
		}
		return v, false
	}

	if err := json.Unmarshal(data, &v); err != nil {
		r.logError("redis session decode failed", sessionID, err)
		return models.PanelVisibility{}, false
	}
	return v, true
}

func (r *redisStore) Save(ctx context.Context, sessionID string, v models.PanelVisibility) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	data, err := json.Marshal(v)
	if err != nil {
		r.logError("redis session encode failed", sessionID, err)
		return
	}

	if err := r.client.Set(ctx, r.key(sessionID), data, r.ttl).Err(); err != nil {
		r.logError("redis session Save failed", sessionID, err)
	}
}

func (r *redisStore) Delete(ctx context.Context, sessionID string) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := r.client.Del(ctx, r.key(sessionID)).Err(); err != nil {
		r.logError("redis session Delete failed", sessionID, err)
	}
}

// Len counts session keys with SCAN so it never blocks the server like KEYS would.
func (r *redisStore) Len() int {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	n := 0
	iter := r.client.Scan(ctx, 0, r.prefix+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		n++
	}
	if err := iter.Err(); err != nil {
		r.logError("redis session Len failed", "", err)
		return 0
	}
	return n
}

func (r *redisStore) Close() error {
	return r.client.Close()
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ld-screen/screening-service/internal/models"
)

// CachedSession is the hot copy of an active screening kept in Redis so
// turn-by-turn requests avoid a database replay. The database remains the
// source of truth; a cache miss is always recoverable.
type CachedSession struct {
	Session models.ScreeningSession `json:"session"`
	Events  []models.QuestionEvent  `json:"events"`
}

// SessionCache stores active session envelopes keyed by session id.
type SessionCache interface {
	Get(ctx context.Context, id uuid.UUID) (*CachedSession, error)
	Set(ctx context.Context, cached *CachedSession) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}

const sessionTTL = 30 * time.Minute

type RedisSessionCache struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisSessionCache(client *redis.Client, logger *slog.Logger) *RedisSessionCache {
	return &RedisSessionCache{client: client, logger: logger}
}

func sessionKey(id uuid.UUID) string {
	return fmt.Sprintf("screening:session:%s", id)
}

// Get returns the cached envelope, or (nil, nil) on a miss.
func (c *RedisSessionCache) Get(ctx context.Context, id uuid.UUID) (*CachedSession, error) {
	raw, err := c.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session cache get: %w", err)
	}

	var cached CachedSession
	if err := json.Unmarshal(raw, &cached); err != nil {
		// A corrupt entry is treated as a miss so the caller replays
		// from the database.
		c.logger.Warn("dropping corrupt session cache entry", "session_id", id, "error", err)
		_ = c.client.Del(ctx, sessionKey(id)).Err()
		return nil, nil
	}
	return &cached, nil
}

func (c *RedisSessionCache) Set(ctx context.Context, cached *CachedSession) error {
	raw, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("session cache marshal: %w", err)
	}
	if err := c.client.Set(ctx, sessionKey(cached.Session.ID), raw, sessionTTL).Err(); err != nil {
		return fmt.Errorf("session cache set: %w", err)
	}
	return nil
}

func (c *RedisSessionCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("session cache invalidate: %w", err)
	}
	return nil
}

// NoopSessionCache satisfies SessionCache when Redis is not configured.
// Every read is a miss.
type NoopSessionCache struct{}

func (NoopSessionCache) Get(context.Context, uuid.UUID) (*CachedSession, error) { return nil, nil }
func (NoopSessionCache) Set(context.Context, *CachedSession) error              { return nil }
func (NoopSessionCache) Invalidate(context.Context, uuid.UUID) error            { return nil }

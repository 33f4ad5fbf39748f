package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/popdriving/sessionbook/internal/models"
	"github.com/redis/go-redis/v9"
)

// sessionsKey holds the entire session collection as one JSON document.
// The store contract is whole-document read-modify-write, so the
// collection deliberately lives under a single key instead of per-session
// keys.
const sessionsKey = "sessionbook:sessions"

// RedisConfig holds configuration for the Redis session repository
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *RedisConfig) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// LoadSessions retrieves the whole session collection from Redis
func (r *redisRepository) LoadSessions(ctx context.Context, input *LoadSessionsInput) (*LoadSessionsOutput, error) {
	doc, err := r.client.Get(ctx, sessionsKey).Result()
	if err != nil {
		if err == redis.Nil {
			// No document yet means no sessions booked
			return &LoadSessionsOutput{
				Sessions: map[string]*models.Session{},
			}, nil
		}
		return nil, fmt.Errorf("%w: failed to load sessions: %v", ErrStorage, err)
	}

	var sessions map[string]*models.Session
	if err := json.Unmarshal([]byte(doc), &sessions); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal sessions: %v", ErrStorage, err)
	}

	if sessions == nil {
		sessions = map[string]*models.Session{}
	}

	return &LoadSessionsOutput{
		Sessions: sessions,
	}, nil
}

// SaveSessions replaces the whole session collection in Redis
func (r *redisRepository) SaveSessions(ctx context.Context, input *SaveSessionsInput) error {
	if input == nil || input.Sessions == nil {
		return errors.New("input and sessions cannot be nil")
	}

	doc, err := json.Marshal(input.Sessions)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal sessions: %v", ErrStorage, err)
	}

	if err := r.client.Set(ctx, sessionsKey, doc, 0).Err(); err != nil {
		return fmt.Errorf("%w: failed to save sessions: %v", ErrStorage, err)
	}

	return nil
}

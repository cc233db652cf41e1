package draft

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/forgelight/creator-api/internal/entities"
	"github.com/forgelight/creator-api/internal/errors"
	"github.com/forgelight/creator-api/internal/pkg/clock"
	redisclient "github.com/forgelight/creator-api/internal/redis"
)

const (
	draftKeyPrefix = "draft:"

	// StalenessWindow is how long a cached draft stays usable. A draft
	// older than this is discarded on read and the creator resets to
	// defaults.
	StalenessWindow = 30 * 24 * time.Hour

	// Error messages
	errDraftNil     = "draft entity cannot be nil"
	errOwnerIDEmpty = "owner ID cannot be empty"
	errKindEmpty    = "entity kind cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis draft repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed draft repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func draftKey(ownerID string, kind entities.Kind) string {
	return draftKeyPrefix + ownerID + ":" + string(kind)
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Entity == nil {
		return nil, errors.InvalidArgument(errDraftNil)
	}
	if input.Entity.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}
	if input.Entity.Kind == "" {
		return nil, errors.InvalidArgument(errKindEmpty)
	}

	d := &Draft{
		Entity:  input.Entity,
		SavedAt: r.clock.Now().Unix(),
	}

	data, err := json.Marshal(d)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal draft")
	}

	key := draftKey(input.Entity.OwnerID, input.Entity.Kind)
	if err := r.client.Set(ctx, key, data, StalenessWindow).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store draft")
	}

	return &PutOutput{Draft: d}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}
	if input.Kind == "" {
		return nil, errors.InvalidArgument(errKindEmpty)
	}

	key := draftKey(input.OwnerID, input.Kind)
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no draft for owner %s", input.OwnerID)
		}
		return nil, errors.Wrapf(err, "failed to get draft")
	}

	// A corrupt record is as unusable as a stale one: discard it so the
	// creator resets to defaults instead of failing every read.
	var d Draft
	if err := json.Unmarshal([]byte(result), &d); err != nil {
		slog.WarnContext(ctx, "discarding corrupt draft record",
			"owner_id", input.OwnerID,
			"kind", input.Kind,
			"error", err)
		r.client.Del(ctx, key)
		return nil, errors.NotFoundf("no draft for owner %s", input.OwnerID)
	}

	// The key TTL normally handles expiry; the timestamp check also covers
	// stores restored from a dump without TTLs.
	savedAt := time.Unix(d.SavedAt, 0)
	if r.clock.Now().Sub(savedAt) > StalenessWindow {
		r.client.Del(ctx, key)
		return nil, errors.NotFoundf("draft for owner %s is stale", input.OwnerID)
	}

	return &GetOutput{Draft: &d}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}
	if input.Kind == "" {
		return nil, errors.InvalidArgument(errKindEmpty)
	}

	if err := r.client.Del(ctx, draftKey(input.OwnerID, input.Kind)).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete draft")
	}

	return &DeleteOutput{}, nil
}

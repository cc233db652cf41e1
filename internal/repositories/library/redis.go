package library

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/forgelight/creator-api/internal/entities"
	"github.com/forgelight/creator-api/internal/errors"
	"github.com/forgelight/creator-api/internal/pkg/clock"
	redisclient "github.com/forgelight/creator-api/internal/redis"
)

const (
	entityKeyPrefix  = "library:"
	ownerIndexPrefix = "library:owner:"
	publicIndexKey   = "library:public"

	// Error messages
	errEntityNil     = "entity cannot be nil"
	errEntityIDEmpty = "entity ID cannot be empty"
	errOwnerIDEmpty  = "owner ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis library repository.
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

// NewRedis creates a new Redis-backed library repository
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

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Entity == nil {
		return nil, errors.InvalidArgument(errEntityNil)
	}
	if input.Entity.ID == "" {
		return nil, errors.InvalidArgument(errEntityIDEmpty)
	}
	if input.Entity.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	key := entityKeyPrefix + input.Entity.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("entity with ID %s already exists", input.Entity.ID)
	}

	entity := *input.Entity
	now := r.clock.Now().Unix()
	entity.CreatedAt = now
	entity.UpdatedAt = now

	data, err := json.Marshal(&entity)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal entity")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // library entries never expire
	pipe.SAdd(ctx, ownerIndexPrefix+entity.OwnerID, entity.ID)
	if entity.Public {
		pipe.SAdd(ctx, publicIndexKey, entity.ID)
	}

	if _, err = pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create entity")
	}

	return &CreateOutput{Entity: &entity}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errEntityIDEmpty)
	}

	key := entityKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("entity with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get entity")
	}

	var entity entities.Entity
	if err := json.Unmarshal([]byte(result), &entity); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal entity")
	}

	return &GetOutput{Entity: &entity}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Entity == nil {
		return nil, errors.InvalidArgument(errEntityNil)
	}
	if input.Entity.ID == "" {
		return nil, errors.InvalidArgument(errEntityIDEmpty)
	}

	existingOut, err := r.Get(ctx, GetInput{ID: input.Entity.ID})
	if err != nil {
		return nil, err
	}
	existing := existingOut.Entity

	entity := *input.Entity
	entity.CreatedAt = existing.CreatedAt
	entity.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(&entity)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal entity")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, entityKeyPrefix+entity.ID, data, 0)

	if existing.OwnerID != entity.OwnerID {
		if existing.OwnerID != "" {
			pipe.SRem(ctx, ownerIndexPrefix+existing.OwnerID, entity.ID)
		}
		if entity.OwnerID != "" {
			pipe.SAdd(ctx, ownerIndexPrefix+entity.OwnerID, entity.ID)
		}
	}
	if existing.Public != entity.Public {
		if entity.Public {
			pipe.SAdd(ctx, publicIndexKey, entity.ID)
		} else {
			pipe.SRem(ctx, publicIndexKey, entity.ID)
		}
	}

	if _, err = pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update entity")
	}

	return &UpdateOutput{Entity: &entity}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errEntityIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}
	entity := getOutput.Entity

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, entityKeyPrefix+input.ID)
	if entity.OwnerID != "" {
		pipe.SRem(ctx, ownerIndexPrefix+entity.OwnerID, input.ID)
	}
	pipe.SRem(ctx, publicIndexKey, input.ID)

	if _, err = pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete entity")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByOwnerID(
	ctx context.Context,
	input ListByOwnerIDInput,
) (*ListByOwnerIDOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	indexKey := ownerIndexPrefix + input.OwnerID
	found, err := r.listByIndex(ctx, indexKey)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list entities by owner index",
			"owner_id", input.OwnerID,
			"index_key", indexKey,
			"error", err.Error())
		return nil, err
	}

	slog.DebugContext(ctx, "listed entities by owner",
		"owner_id", input.OwnerID,
		"count", len(found))

	return &ListByOwnerIDOutput{Entities: found}, nil
}

func (r *redisRepository) ListPublic(ctx context.Context, _ ListPublicInput) (*ListPublicOutput, error) {
	found, err := r.listByIndex(ctx, publicIndexKey)
	if err != nil {
		return nil, err
	}
	return &ListPublicOutput{Entities: found}, nil
}

// listByIndex is a helper to list entities by any index set. Index members
// whose entity no longer exists are pruned as they are discovered.
func (r *redisRepository) listByIndex(ctx context.Context, indexKey string) ([]*entities.Entity, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get entities from index %s", indexKey)
	}

	found := make([]*entities.Entity, 0, len(ids))
	for _, id := range ids {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "entity not found, cleaning up index",
					"entity_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get entity %s", id)
		}
		found = append(found, getOutput.Entity)
	}

	return found, nil
}

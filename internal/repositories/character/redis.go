package character

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/ie-chargen/internal/entities/ie"
	"github.com/KirkDiggler/ie-chargen/internal/errors"
	"github.com/KirkDiggler/ie-chargen/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/ie-chargen/internal/redis"
)

const (
	blockKeyPrefix = "character:stats:"
	indexKey       = "character:ids"

	// Error messages
	errBlockNil     = "stat block cannot be nil"
	errBlockIDEmpty = "character ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis stat block repository.
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

// NewRedis creates a new Redis-backed stat block repository
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

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Block == nil {
		return nil, errors.InvalidArgument(errBlockNil)
	}
	if input.Block.ID == "" {
		return nil, errors.InvalidArgument(errBlockIDEmpty)
	}

	key := blockKeyPrefix + input.Block.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("stat block for %s already exists", input.Block.ID)
	}

	now := r.clock.Now().Unix()
	input.Block.CreatedAt = now
	input.Block.UpdatedAt = now

	data, err := json.Marshal(input.Block)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal stat block")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, indexKey, input.Block.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create stat block")
	}

	return &CreateOutput{Block: input.Block}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBlockIDEmpty)
	}

	block, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Block: block}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Block == nil {
		return nil, errors.InvalidArgument(errBlockNil)
	}
	if input.Block.ID == "" {
		return nil, errors.InvalidArgument(errBlockIDEmpty)
	}

	existing, err := r.load(ctx, input.Block.ID)
	if err != nil {
		return nil, err
	}

	input.Block.CreatedAt = existing.CreatedAt
	input.Block.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(input.Block)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal stat block")
	}

	if err := r.client.Set(ctx, blockKeyPrefix+input.Block.ID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update stat block")
	}

	return &UpdateOutput{Block: input.Block}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBlockIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, blockKeyPrefix+input.ID)
	pipe.SRem(ctx, indexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete stat block")
	}
	if del.Val() == 0 {
		return nil, errors.NotFoundf("stat block for %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list stat blocks")
	}
	sort.Strings(ids)

	return &ListOutput{IDs: ids}, nil
}

func (r *redisRepository) load(ctx context.Context, id string) (*ie.StatBlock, error) {
	result, err := r.client.Get(ctx, blockKeyPrefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("stat block for %s not found", id).
				WithMeta("character_id", id)
		}
		return nil, errors.Wrapf(err, "failed to get stat block")
	}

	var block ie.StatBlock
	if err := json.Unmarshal([]byte(result), &block); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal stat block")
	}
	if block.Values == nil {
		block.Values = make(map[ie.Stat]int)
	}

	return &block, nil
}

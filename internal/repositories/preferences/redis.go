package preferences

import (
	"context"
	"fmt"

	"susie.mx/gokemon-client/internal/errors"
	redisclient "susie.mx/gokemon-client/internal/redis"
)

const prefsKeyPrefix = "catalog_prefs:"

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for filter preferences
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Get loads every stored filter preference for an account
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.AccountID == 0 {
		return nil, errors.InvalidArgument("account ID is required")
	}

	values, err := r.client.HGetAll(ctx, r.buildKey(input.AccountID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "loading preferences for account %d", input.AccountID)
	}

	return &GetOutput{Values: values}, nil
}

// Set stores a single filter preference
func (r *redisRepository) Set(ctx context.Context, input SetInput) (*SetOutput, error) {
	if input.AccountID == 0 {
		return nil, errors.InvalidArgument("account ID is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("filter name is required")
	}

	err := r.client.HSet(ctx, r.buildKey(input.AccountID), input.Name, input.Value).Err()
	if err != nil {
		return nil, errors.Wrapf(err, "storing preference %q for account %d", input.Name, input.AccountID)
	}

	return &SetOutput{}, nil
}

// Clear drops all stored preferences for an account
func (r *redisRepository) Clear(ctx context.Context, input ClearInput) (*ClearOutput, error) {
	if input.AccountID == 0 {
		return nil, errors.InvalidArgument("account ID is required")
	}

	deleted, err := r.client.Del(ctx, r.buildKey(input.AccountID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "clearing preferences for account %d", input.AccountID)
	}

	return &ClearOutput{Deleted: deleted}, nil
}

// buildKey creates the Redis key for an account's preferences
func (r *redisRepository) buildKey(accountID int64) string {
	return fmt.Sprintf("%s%d", prefsKeyPrefix, accountID)
}

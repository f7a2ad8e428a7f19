package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"appliancefit/internal/model"
)

// KeyPrefix namespaces catalog entries in Redis.
const KeyPrefix = "appliancefit:spec:"

// kv is the part of *redis.Client used here.
type kv interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Redis serves specs stored as JSON values, one key per model. Entries
// never expire; the importer overwrites them.
type Redis struct {
	client kv
}

// NewRedis wraps a Redis client.
func NewRedis(client kv) *Redis {
	return &Redis{client: client}
}

// NewRedisFromURL parses a redis:// URL and returns a catalog plus the client
// so the caller can close it.
func NewRedisFromURL(url string) (*Redis, *redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	return NewRedis(client), client, nil
}

func (r *Redis) Name() string { return "redis" }

// redisKey keys by the normalized model number, matching how the scraper
// names the specs it stores ("JT5000SF-SS" and "jt5000sfss" share a key).
func redisKey(modelNumber string) string {
	return KeyPrefix + model.NormalizeModel(modelNumber)
}

func (r *Redis) Lookup(ctx context.Context, modelNumber string) (model.Spec, bool, error) {
	if model.NormalizeModel(modelNumber) == "" {
		return model.Spec{}, false, nil
	}
	raw, err := r.client.Get(ctx, redisKey(modelNumber)).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.Spec{}, false, nil
	}
	if err != nil {
		return model.Spec{}, false, fmt.Errorf("redis get: %w", err)
	}

	var s model.Spec
	if err := json.Unmarshal(raw, &s); err != nil {
		return model.Spec{}, false, fmt.Errorf("decode spec %s: %w", modelNumber, err)
	}
	return s, true, nil
}

// Save stores s under its model number.
func (r *Redis) Save(ctx context.Context, s model.Spec) error {
	if !s.ModelNumber.Known {
		return errors.New("redis save: model number is unknown")
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode spec: %w", err)
	}
	if err := r.client.Set(ctx, redisKey(s.ModelNumber.Value), raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

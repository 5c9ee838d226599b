package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ErrNoValue is returned when a key has never been written.
var ErrNoValue = errors.New("kv: no value for key")

// KVRepository is the namespaced key-value store backing client state that
// survives app restarts: mission sets, preferences, cached profiles. Values
// are JSON; there is no transactionality across keys.
type KVRepository struct {
	client    *redis.Client
	namespace string
}

func NewKVRepository(client *redis.Client, namespace string) *KVRepository {
	return &KVRepository{client: client, namespace: namespace}
}

func (r *KVRepository) key(key string) string {
	return r.namespace + ":" + key
}

func (r *KVRepository) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error encoding value for %q: %w", key, err)
	}
	if err := r.client.Set(ctx, r.key(key), data, 0).Err(); err != nil {
		return fmt.Errorf("error writing %q: %w", key, err)
	}
	return nil
}

func (r *KVRepository) Get(ctx context.Context, key string, value any) error {
	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err == redis.Nil {
		return ErrNoValue
	}
	if err != nil {
		return fmt.Errorf("error reading %q: %w", key, err)
	}
	return json.Unmarshal(data, value)
}

func (r *KVRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("error deleting %q: %w", key, err)
	}
	return nil
}

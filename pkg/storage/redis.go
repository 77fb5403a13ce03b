package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/alicebob/miniredis"
	"github.com/go-redis/redis/v8"
)

type RedisKV struct {
	client *redis.Client
	mr     *miniredis.Miniredis
}

func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

// DialRedis connects to a redis server and checks it answers.
func DialRedis(ctx context.Context, addr string) (*RedisKV, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cannot connect to redis at %s: %w", addr, err)
	}
	return NewRedisKV(client), nil
}

// NewMemoryKV starts a temporary in-process redis server. Everything stored
// is gone once it is closed.
func NewMemoryKV(ctx context.Context) (*RedisKV, error) {
	mr, err := miniredis.Run()
	if err != nil {
		return nil, fmt.Errorf("error creating in-memory redis: %w", err)
	}
	kv, err := DialRedis(ctx, mr.Addr())
	if err != nil {
		mr.Close()
		return nil, err
	}
	kv.mr = mr
	return kv, nil
}

func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %q: %w", key, err)
	}
	return value, nil
}

func (r *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

func (r *RedisKV) Close() error {
	err := r.client.Close()
	if r.mr != nil {
		r.mr.Close()
	}
	return err
}

package store

import (
	"context"
	"errors"
	"strings"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "quiz:"

// RedisStore keeps each document as a plain string value without expiry.
type RedisStore struct {
	client *redis.Client
}

// NewRedis connects to addr ("host:port", an optional redis:// prefix is
// stripped) and pings the server.
func NewRedis(ctx context.Context, addr string) (*RedisStore, error) {
	addr = strings.TrimPrefix(addr, "redis://")

	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	doc, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	return doc, err
}

func (s *RedisStore) Put(ctx context.Context, key string, doc []byte) error {
	return s.client.Set(ctx, redisKeyPrefix+key, doc, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	n, err := s.client.Del(ctx, redisKeyPrefix+key).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

package kvstore

import (
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	storage *fiberredis.Storage
}

// NewRedis wraps an existing Redis connection as a Store.
func NewRedis(rdb *redis.Client) Store {
	return &redisStore{storage: fiberredis.NewFromConnection(rdb)}
}

func (s *redisStore) Get(key string) ([]byte, error) {
	return s.storage.Get(key)
}

func (s *redisStore) Set(key string, value []byte) error {
	// no expiration: collections live until overwritten
	return s.storage.Set(key, value, 0)
}

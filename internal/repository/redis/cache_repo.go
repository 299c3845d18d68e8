package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// operationTimeout ограничивает одну операцию с Redis
const operationTimeout = 2 * time.Second

// CacheRepo реализует repository.CacheRepository
type CacheRepo struct {
	client redis.UniversalClient
}

// NewCacheRepo создает новый репозиторий кеша и возвращает ошибку при проблемах
func NewCacheRepo(client redis.UniversalClient) (*CacheRepo, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil for CacheRepo")
	}
	return &CacheRepo{client: client}, nil
}

// AddToSet выполняет SADD и EXPIRE в одной транзакции (MULTI/EXEC)
func (r *CacheRepo) AddToSet(key string, expiration time.Duration, members ...string) error {
	if len(members) == 0 {
		return nil
	}
	values := make([]interface{}, len(members))
	for i, m := range members {
		values[i] = m
	}

	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, key, values...)
		pipe.Expire(ctx, key, expiration)
		return nil
	})
	return err
}

// SetMembers выполняет SMEMBERS. Отсутствующий ключ Redis отдает как пустое множество.
func (r *CacheRepo) SetMembers(key string) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	members, err := r.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	return members, nil
}

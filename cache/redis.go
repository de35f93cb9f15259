package cache

import (
	"time"

	log "github.com/Emacore17/adottaungatto-it-sub001/pkg/logger"
	"github.com/go-redis/redis"
	"go.uber.org/zap"
)

// RedisRepository stores rendered responses. A repository created without
// an address is disabled: every read misses and every write is dropped.
type RedisRepository struct {
	client *redis.Client
}

func NewRedisRepository(addr, password string) *RedisRepository {
	if addr == "" {
		log.Logger().Info("redis address not set, response cache disabled")
		return &RedisRepository{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &RedisRepository{client: client}
}

func (repository *RedisRepository) Enabled() bool {
	return repository != nil && repository.client != nil
}

func (repository *RedisRepository) SetKey(key string, value []byte, ttl time.Duration) {
	if !repository.Enabled() {
		return
	}
	if err := repository.client.Set(key, value, ttl).Err(); err != nil {
		log.Logger().Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (repository *RedisRepository) Get(key string) ([]byte, bool) {
	if !repository.Enabled() {
		return nil, false
	}

	data, err := repository.client.Get(key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Logger().Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	return data, len(data) > 0
}

func (repository *RedisRepository) Delete(key string) error {
	if !repository.Enabled() {
		return nil
	}
	return repository.client.Del(key).Err()
}

func (repository *RedisRepository) Prune() error {
	if !repository.Enabled() {
		return nil
	}
	return repository.client.FlushDB().Err()
}

func (repository *RedisRepository) Ping() error {
	if !repository.Enabled() {
		return nil
	}
	return repository.client.Ping().Err()
}

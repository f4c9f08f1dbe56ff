package infra

import (
	"github.com/redis/go-redis/v9"

	"github.com/vignesh-ravichandran/Crimson/internal/config"
)

// InitRedis builds the client used for the single-use OAuth state store.
func InitRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

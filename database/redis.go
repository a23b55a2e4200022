package database

import (
	"context"
	"log"

	"movieflix/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis opens the cache client. The catalog works without it, reads
// just skip the cache, so a failed ping is logged and not fatal.
func ConnectRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     config.ConfigOr("REDIS_ADDR", "localhost:6379"),
		Password: config.Config("REDIS_PASSWORD"),
	})

	if err := Redis.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis not reachable, catalog cache disabled: %v", err)
		Redis = nil
	}
}

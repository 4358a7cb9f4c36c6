package database

import (
	"context"
	"log"

	"api/config"

	"github.com/redis/go-redis/v9"
)

var REDIS *redis.Client

// InitRedis initializes the Redis client used as a read-through cache for
// site configuration lookups. The API works without Redis; cache reads are
// skipped when the client is nil.
func InitRedis() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress,
		Password: config.RedisPassword,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Println("Redis unavailable, running without cache: ", err)
		return
	}

	REDIS = client
}

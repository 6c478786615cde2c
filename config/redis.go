package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// InitRedis connects when REDIS_URL or REDIS_ADDR is set. On any failure the
// client stays nil and admin sessions are kept in memory.
func InitRedis() {
	var opt *redis.Options
	switch {
	case AppConfig.RedisURL != "":
		parsedOpt, err := redis.ParseURL(AppConfig.RedisURL)
		if err != nil {
			log.Println("Failed to parse Redis URL:", err)
			log.Println("Running without Redis")
			return
		}
		opt = parsedOpt
	case AppConfig.RedisAddr != "":
		opt = &redis.Options{
			Addr:     AppConfig.RedisAddr,
			Password: AppConfig.RedisPassword,
			DB:       0,
		}
	default:
		log.Println("No Redis configured, running with in-memory admin sessions")
		return
	}

	RedisClient = redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := RedisClient.Ping(ctx).Result(); err != nil {
		log.Println("Redis connection failed:", err)
		log.Println("Running without Redis")
		RedisClient.Close()
		RedisClient = nil
		return
	}

	log.Println("Redis connected")
}

func CloseRedis() {
	if RedisClient != nil {
		RedisClient.Close()
	}
}

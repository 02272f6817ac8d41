package utils

import (
	"context"
	"log"
	"time"

	"fitsched/config"

	"github.com/go-redis/redis/v8"
)

// ReviewCacheClient is the dedicated client for review-session caching.
var ReviewCacheClient *redis.Client

// InitReviewCache initializes the Redis client for review sessions.
func InitReviewCache() {
	ReviewCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReviewDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := ReviewCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Review Cache): %v", err)
	}
}

// GetReviewCacheClient returns the Redis client for review sessions.
func GetReviewCacheClient() *redis.Client {
	if ReviewCacheClient == nil {
		InitReviewCache()
	}
	return ReviewCacheClient
}

// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"carebridge/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for auth record caching.
	AuthCacheClient *redis.Client
	// OTPCacheClient is the dedicated client for one-time codes.
	OTPCacheClient *redis.Client
	// FlowCacheClient is the dedicated client for flow session state.
	FlowCacheClient *redis.Client
	// AdvisorCacheClient is the dedicated client for advisor conversation context.
	AdvisorCacheClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (DB %d): %v", db, err)
	}
	return client
}

// InitRedis initializes every Redis client used by the server.
func InitRedis() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	OTPCacheClient = newRedisClient(config.AppConfig.RedisOTPDB)
	FlowCacheClient = newRedisClient(config.AppConfig.RedisFlowDB)
	AdvisorCacheClient = newRedisClient(config.AppConfig.RedisAdvisorDB)
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	}
	return CacheClient
}

// GetAuthCacheClient returns the Redis client for auth record caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	}
	return AuthCacheClient
}

// GetOTPCacheClient returns the Redis client for one-time codes.
func GetOTPCacheClient() *redis.Client {
	if OTPCacheClient == nil {
		OTPCacheClient = newRedisClient(config.AppConfig.RedisOTPDB)
	}
	return OTPCacheClient
}

// GetFlowCacheClient returns the Redis client holding flow session state.
func GetFlowCacheClient() *redis.Client {
	if FlowCacheClient == nil {
		FlowCacheClient = newRedisClient(config.AppConfig.RedisFlowDB)
	}
	return FlowCacheClient
}

// GetAdvisorCacheClient returns the Redis client for advisor context.
func GetAdvisorCacheClient() *redis.Client {
	if AdvisorCacheClient == nil {
		AdvisorCacheClient = newRedisClient(config.AppConfig.RedisAdvisorDB)
	}
	return AdvisorCacheClient
}

package utils

import (
	"context"
	"log"
	"time"

	"washly/config"

	"github.com/go-redis/redis/v8"
)

var (
	// OrderCacheClient holds in-flight order sessions.
	OrderCacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
)

// InitOrderCache initializes the Redis client backing order sessions.
func InitOrderCache() {
	OrderCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisOrderDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := OrderCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Order Cache): %v", err)
	}
}

// GetOrderCacheClient returns the order-session cache client.
func GetOrderCacheClient() *redis.Client {
	if OrderCacheClient == nil {
		InitOrderCache()
	}
	return OrderCacheClient
}

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// RevokedTokenPrefix keys hashes of tokens revoked before their expiry.
const RevokedTokenPrefix = "auth:revoked:"

// RevokeToken marks a token as revoked for the remainder of its lifetime.
// Keys expire with the token itself, so the cache never outlives the claim.
func RevokeToken(ctx context.Context, tokenString string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return GetAuthCacheClient().Set(ctx, RevokedTokenPrefix+HashToken(tokenString), "1", ttl).Err()
}

// IsTokenRevoked reports whether a token hash is in the revocation cache.
// A missing client or a cache error counts as not revoked, so authorization
// does not hard-depend on Redis being up.
func IsTokenRevoked(ctx context.Context, tokenString string) bool {
	if AuthCacheClient == nil {
		return false
	}
	n, err := AuthCacheClient.Exists(ctx, RevokedTokenPrefix+HashToken(tokenString)).Result()
	if err != nil {
		log.Printf("WARNING: Error checking token revocation: %v. Treating as not revoked.", err)
		return false
	}
	return n > 0
}

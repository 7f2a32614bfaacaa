package utils

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of the backing stores and the
// upstream catalog, pricing and order gateways.
type HealthStatus struct {
	Mongo     bool            `json:"mongo"`
	Redis     []bool          `json:"redis"`
	Gateways  map[string]bool `json:"gateways"`
	CheckedAt time.Time       `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// CheckGateway reports whether an upstream base URL is answering. Anything
// short of a server error counts as up; the check only asks for liveness.
func CheckGateway(client *http.Client, baseURL string) bool {
	resp, err := client.Get(baseURL)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode < http.StatusInternalServerError
}

// StartHealthMonitor performs periodic health checks and updates in-memory
// state. gatewayURLs maps a gateway name to its base URL.
func StartHealthMonitor(redisClients []*redis.Client, mongoClient *mongo.Client, gatewayURLs map[string]string) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()
		httpClient := &http.Client{Timeout: 5 * time.Second}

		for range ticker.C {
			var redisHealth []bool

			for _, client := range redisClients {
				err := client.Ping(ctx).Err()
				redisHealth = append(redisHealth, err == nil)
			}

			mongoHealthy := mongoClient.Ping(ctx, nil) == nil

			gatewayHealth := make(map[string]bool, len(gatewayURLs))
			for name, url := range gatewayURLs {
				gatewayHealth[name] = CheckGateway(httpClient, url)
			}

			mu.Lock()
			currentHealth = HealthStatus{
				Mongo:     mongoHealthy,
				Redis:     redisHealth,
				Gateways:  gatewayHealth,
				CheckedAt: time.Now(),
			}
			mu.Unlock()
		}
	}()
}

package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Redis     bool      `json:"redis"`
	Mongo     bool      `json:"mongo"`
	Mail      bool      `json:"mail"`
	AI        bool      `json:"ai"`
	CheckedAt time.Time `json:"checkedAt"`
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

// StartHealthMonitor performs periodic health checks and updates in-memory state.
// Mail and AI availability are config-derived and fixed for the process lifetime;
// Redis and Mongo are probed every minute. A nil mongoClient reports unhealthy
// (the lead log is optional, the snapshot still shows it).
func StartHealthMonitor(redisClient *redis.Client, mongoClient *mongo.Client, mailAvailable, aiAvailable bool) {
	mu.Lock()
	currentHealth = HealthStatus{
		Redis:     true,
		Mongo:     mongoClient != nil,
		Mail:      mailAvailable,
		AI:        aiAvailable,
		CheckedAt: time.Now(),
	}
	mu.Unlock()

	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			redisHealthy := redisClient.Ping(ctx).Err() == nil
			mongoHealthy := mongoClient != nil && mongoClient.Ping(ctx, nil) == nil

			mu.Lock()
			currentHealth = HealthStatus{
				Redis:     redisHealthy,
				Mongo:     mongoHealthy,
				Mail:      mailAvailable,
				AI:        aiAvailable,
				CheckedAt: time.Now(),
			}
			mu.Unlock()
		}
	}()
}

package db

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"adcap/internal/config/configs"
)

// NewRedisClient connects to the frequency counter store and verifies
// connectivity with a 5 second ping timeout. On ping failure the client is
// closed and an error is returned. The caller must close the returned
// client when it is no longer needed.
func NewRedisClient(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctxPing).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

package idempotency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/almonzeir/sudannnnn/internal/config"
)

const keyPrefix = "chat_event:"

// ValkeyChecker implements Checker on a Valkey/Redis instance using SET NX
// with a TTL, so the dedup window ages out on its own.
type ValkeyChecker struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewValkeyChecker connects to Valkey and verifies the connection.
func NewValkeyChecker(ctx context.Context, cfg config.Valkey, log *zap.Logger) (*ValkeyChecker, error) {
	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping valkey: %w", err)
	}

	log.Info("Valkey connection established",
		zap.String("host", cfg.Host),
		zap.String("port", cfg.Port))

	return &ValkeyChecker{
		client: client,
		ttl:    time.Duration(cfg.IdempotencyTTLSec) * time.Second,
		log:    log,
	}, nil
}

// FirstSeen implements Checker.
func (c *ValkeyChecker) FirstSeen(ctx context.Context, eventID string) (bool, error) {
	ok, err := c.client.SetNX(ctx, keyPrefix+eventID, 1, c.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark event id: %w", err)
	}
	return ok, nil
}

// Close implements Checker.
func (c *ValkeyChecker) Close() error {
	return c.client.Close()
}

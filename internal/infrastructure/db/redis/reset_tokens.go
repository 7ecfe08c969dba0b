package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const minConsumptionTTL = time.Minute

// ResetTokenStore records spent password-reset tokens in Redis so a token
// is honoured at most once. Key format: reset_token:<jti>
type ResetTokenStore struct {
	client *redis.Client
}

// NewResetTokenStore creates a ResetTokenStore wrapping the given Redis client.
func NewResetTokenStore(client *redis.Client) *ResetTokenStore {
	return &ResetTokenStore{client: client}
}

// Consume marks the jti as spent and reports whether this was its first
// use. SETNX makes the check-and-mark atomic under concurrent submits of
// the same token. The record expires with the token itself; ttl is clamped
// to a small floor so a token on the edge of expiry still cannot replay.
func (s *ResetTokenStore) Consume(ctx context.Context, jti string, ttl time.Duration) (bool, error) {
	if ttl < minConsumptionTTL {
		ttl = minConsumptionTTL
	}

	firstUse, err := s.client.SetNX(ctx, s.key(jti), "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("consume reset token: %w", err)
	}
	return firstUse, nil
}

func (s *ResetTokenStore) key(jti string) string {
	return "reset_token:" + jti
}

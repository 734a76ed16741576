package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const minRevokeTTL = time.Minute

// TokenDenylist stores revoked session tokens in Redis.
// Key format: revoked:<token signature segment>
//
// Each entry carries a TTL equal to the token's remaining lifetime, so the
// denylist prunes itself and stays shared across service instances.
type TokenDenylist struct {
	client *redis.Client
}

// NewTokenDenylist creates a TokenDenylist wrapping the given Redis client.
func NewTokenDenylist(client *redis.Client) *TokenDenylist {
	return &TokenDenylist{client: client}
}

// Revoke records the token as logged out. Revoking an already-revoked token
// simply refreshes the entry.
func (d *TokenDenylist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl < minRevokeTTL {
		ttl = minRevokeTTL
	}
	if err := d.client.Set(ctx, d.key(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token has been logged out.
func (d *TokenDenylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("denylist check: %w", err)
	}
	return n > 0, nil
}

// key uses the JWT signature segment: it uniquely identifies the token and
// keeps key size bounded without storing the full credential.
func (d *TokenDenylist) key(token string) string {
	parts := strings.Split(token, ".")
	sig := parts[len(parts)-1]
	return "revoked:" + sig
}

package auth

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const denylistPrefix = "denylist:"

// Denylist tracks revoked token ids in redis until their natural expiry.
// A nil *Denylist is valid and treats every token as live, so the API
// works without redis configured.
type Denylist struct {
	client *redis.Client
}

func NewDenylist(client *redis.Client) *Denylist {
	if client == nil {
		return nil
	}
	return &Denylist{client: client}
}

func (d *Denylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if d == nil {
		return nil
	}
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, denylistPrefix+jti, "1", ttl).Err()
}

func (d *Denylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if d == nil {
		return false, nil
	}

	_, err := d.client.Get(ctx, denylistPrefix+jti).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Client wraps redis.UniversalClient so tests can pass a miniredis-backed client
type Client interface {
	redis.UniversalClient
}

// Check pings the server so a bad address fails before any sheet command
func Check(ctx context.Context, client Client) error {
	if client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable")
	}
	return nil
}

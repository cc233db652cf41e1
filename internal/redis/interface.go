package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the connection surface the repositories depend on. Tests
// satisfy it with a client pointed at miniredis.
type Client interface {
	redis.UniversalClient
}

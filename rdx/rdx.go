package rdx

import (
	"context"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

// Init connects the shared Redis client used for response caching.
func Init(ctx context.Context, url string) error {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return err
	}
	Conn = redis.NewClient(opts)
	return Conn.Ping(ctx).Err()
}

func Close() error {
	if Conn == nil {
		return nil
	}
	return Conn.Close()
}

package config

import (
	"os"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// NewRedisClient returns nil when REDIS_URL is unset; callers treat a nil
// client as "caching disabled".
func NewRedisClient() *redis.Client {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		return nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		logrus.WithError(err).Warn("Invalid REDIS_URL, stats caching disabled")
		return nil
	}

	return redis.NewClient(opts)
}

package config

import (
	"log"

	"github.com/redis/rueidis"
)

// NewRedisClient connects to the Redis used for cross-replica rate
// limiting. Callers only construct one when an address is configured.
func NewRedisClient(addr string) rueidis.Client {
	redisClient, err := rueidis.NewClient(
		rueidis.ClientOption{
			InitAddress: []string{addr},
		},
	)
	if err != nil {
		log.Fatalf("failed to create redis client: %v", err)
	}

	return redisClient
}

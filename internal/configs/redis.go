package config

import (
	"log"

	"github.com/redis/rueidis"
)

// NewRedisClient connects to the session backend with client-side caching off.
func NewRedisClient(addr string) rueidis.Client {
	redisClient, err := rueidis.NewClient(
		rueidis.ClientOption{
			InitAddress:  []string{addr},
			ClientName:   "taskforge",
			DisableCache: true,
		},
	)
	if err != nil {
		log.Fatalf("failed to create redis client: %v", err)
	}

	return redisClient
}

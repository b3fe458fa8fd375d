package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// APIHostKey is read by the OAuth2 redirect/login flow to build callback URLs.
const APIHostKey = "api_host"

// APIHostPublisher stores the externally visible API host in the shared cache.
// The value never expires; the last writer wins.
type APIHostPublisher struct {
	client *redis.Client
}

func NewAPIHostPublisher(client *redis.Client) *APIHostPublisher {
	return &APIHostPublisher{client: client}
}

func (p *APIHostPublisher) PublishAPIHost(ctx context.Context, host string) error {
	return p.client.Set(ctx, APIHostKey, host, 0).Err()
}

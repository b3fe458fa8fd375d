package cache

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPublisher(t *testing.T) (*APIHostPublisher, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewAPIHostPublisher(rdb), mr
}

func TestAPIHostPublisherLastWriterWins(t *testing.T) {
	p, mr := newTestPublisher(t)
	ctx := context.Background()

	assert.False(t, mr.Exists(APIHostKey))

	require.NoError(t, p.PublishAPIHost(ctx, "https://a.example.com/"))
	require.NoError(t, p.PublishAPIHost(ctx, "https://b.example.com/"))

	raw, err := mr.Get(APIHostKey)
	require.NoError(t, err)
	assert.Equal(t, "https://b.example.com/", raw)
	assert.Zero(t, mr.TTL(APIHostKey))
}

func TestAPIHostPublisherUnavailable(t *testing.T) {
	p, mr := newTestPublisher(t)
	mr.Close()

	assert.Error(t, p.PublishAPIHost(context.Background(), "https://a.example.com/"))
}

// Package testutils provides shared test helpers, including an in-memory
// Redis for repository tests.
package testutils

import (
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"susie.mx/gokemon-client/internal/redis"
)

// TestingT is the subset of *testing.T these helpers need.
type TestingT interface {
	require.TestingT
	Helper()
	Cleanup(func())
}

// CreateTestRedisClient creates an in-memory Redis client for testing. The
// backing miniredis instance is closed automatically on test cleanup.
func CreateTestRedisClient(t TestingT) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")
	t.Cleanup(mr.Close)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	return client, mr
}

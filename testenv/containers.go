//go:build integration

// Package testenv starts the backing services integration tests run against.
package testenv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func start(t *testing.T, image, port string, waitFor wait.Strategy) string {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{port},
			WaitingFor:   waitFor,
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)
	return endpoint
}

// StartRedis returns the host:port of a fresh Redis server.
func StartRedis(t *testing.T) string {
	return start(t, "redis:7-alpine", "6379/tcp", wait.ForLog("Ready to accept connections"))
}

// StartMongo returns a connection URI for a fresh MongoDB server.
func StartMongo(t *testing.T) string {
	return "mongodb://" + start(t, "mongo:6", "27017/tcp", wait.ForListeningPort("27017/tcp"))
}

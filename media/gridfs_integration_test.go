//go:build integration

package media_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"venue-webapp/database"
	"venue-webapp/media"
	"venue-webapp/testenv"
)

func TestGridFSStorage(t *testing.T) {
	ctx := context.Background()
	client, err := database.ConnectMongo(ctx, testenv.StartMongo(t))
	require.NoError(t, err)
	defer client.Disconnect(ctx)

	s, err := media.NewGridFSStorage(client.Database("venue-test"))
	require.NoError(t, err)
	testStorage(t, s)
}

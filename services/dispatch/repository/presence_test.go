package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sewaroda/sewaroda/internal/pkg/database"
	"github.com/sewaroda/sewaroda/internal/pkg/models"
)

func newPresenceRepo(t *testing.T) (*PresenceRepo, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	redisClient := &database.RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
	t.Cleanup(func() { redisClient.Close() })

	cfg := &models.Config{
		Dispatch: models.DispatchConfig{PresenceTTL: 300},
	}

	return NewPresenceRepo(cfg, redisClient), mr
}

func TestPresenceRepo_PutAndGet(t *testing.T) {
	repo, mr := newPresenceRepo(t)
	ctx := context.Background()

	location := models.Location{Latitude: -6.2088, Longitude: 106.8456}
	require.NoError(t, repo.Put(ctx, "driver-a", location))

	got, found, err := repo.Get(ctx, "driver-a")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, location, got)

	// Entry carries the freshness TTL
	assert.Greater(t, mr.TTL("driver:presence:driver-a").Seconds(), 0.0)
}

func TestPresenceRepo_GetMissingIsNotAnError(t *testing.T) {
	repo, _ := newPresenceRepo(t)

	got, found, err := repo.Get(context.Background(), "driver-unknown")

	assert.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, models.Location{}, got)
}

func TestPresenceRepo_PutOverwritesPrevious(t *testing.T) {
	repo, _ := newPresenceRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "driver-a", models.Location{Latitude: -6.1, Longitude: 106.8}))
	updated := models.Location{Latitude: -6.3, Longitude: 106.9}
	require.NoError(t, repo.Put(ctx, "driver-a", updated))

	got, found, err := repo.Get(ctx, "driver-a")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, updated, got)
}

func TestPresenceRepo_ListActive(t *testing.T) {
	repo, _ := newPresenceRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "driver-a", models.Location{Latitude: -6.2, Longitude: 106.8}))
	require.NoError(t, repo.Put(ctx, "driver-b", models.Location{Latitude: -6.3, Longitude: 106.9}))

	presences, err := repo.ListActive(ctx)
	assert.NoError(t, err)
	assert.Len(t, presences, 2)

	byDriver := make(map[string]models.Location, len(presences))
	for _, p := range presences {
		byDriver[p.DriverID] = p.Location
	}
	assert.Equal(t, models.Location{Latitude: -6.2, Longitude: 106.8}, byDriver["driver-a"])
	assert.Equal(t, models.Location{Latitude: -6.3, Longitude: 106.9}, byDriver["driver-b"])
}

func TestPresenceRepo_ListActiveSkipsMalformedEntries(t *testing.T) {
	repo, mr := newPresenceRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "driver-a", models.Location{Latitude: -6.2, Longitude: 106.8}))
	require.NoError(t, mr.Set("driver:presence:driver-corrupt", "not-a-location"))

	presences, err := repo.ListActive(ctx)
	assert.NoError(t, err)
	assert.Len(t, presences, 1)
	assert.Equal(t, "driver-a", presences[0].DriverID)
}

func TestPresenceRepo_ListActiveEmpty(t *testing.T) {
	repo, _ := newPresenceRepo(t)

	presences, err := repo.ListActive(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, presences)
	assert.NotNil(t, presences)
}

func TestPresenceRepo_ExpiredEntryDropsOut(t *testing.T) {
	repo, mr := newPresenceRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "driver-a", models.Location{Latitude: -6.2, Longitude: 106.8}))
	mr.FastForward(301 * time.Second) // past the freshness window

	_, found, err := repo.Get(ctx, "driver-a")
	assert.NoError(t, err)
	assert.False(t, found)

	presences, err := repo.ListActive(ctx)
	assert.NoError(t, err)
	assert.Empty(t, presences)
}

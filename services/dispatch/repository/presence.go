package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/sewaroda/sewaroda/internal/pkg/constants"
	"github.com/sewaroda/sewaroda/internal/pkg/database"
	"github.com/sewaroda/sewaroda/internal/pkg/logger"
	"github.com/sewaroda/sewaroda/internal/pkg/models"
	"github.com/sewaroda/sewaroda/internal/utils"
)

// PresenceRepo stores driver presence in Redis. Each driver holds one key
// with a "lat,lon" payload and a TTL; expiry is how drivers drop out of
// dispatch when they stop reporting.
type PresenceRepo struct {
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewPresenceRepo creates a new presence repository
func NewPresenceRepo(cfg *models.Config, redisClient *database.RedisClient) *PresenceRepo {
	return &PresenceRepo{
		cfg:         cfg,
		redisClient: redisClient,
	}
}

// Put creates or overwrites the driver's presence entry and restarts its
// freshness window
func (r *PresenceRepo) Put(ctx context.Context, driverID string, location models.Location) error {
	key := fmt.Sprintf(constants.KeyDriverPresence, driverID)
	ttl := time.Duration(r.cfg.Dispatch.PresenceTTL) * time.Second

	if err := r.redisClient.Set(ctx, key, utils.FormatLatLon(location), ttl); err != nil {
		return fmt.Errorf("failed to store driver presence: %w", err)
	}
	return nil
}

// ListActive enumerates every live presence entry. Keys are collected with
// SCAN, then all values are fetched in a single MGET so the snapshot costs
// two round trips regardless of how many drivers are online. Entries that
// expire between the scan and the read, or that hold a malformed payload,
// are skipped.
func (r *PresenceRepo) ListActive(ctx context.Context) ([]models.DriverPresence, error) {
	keys, err := r.redisClient.ScanKeys(ctx, constants.PatternDriverPresence)
	if err != nil {
		return nil, fmt.Errorf("failed to scan driver presence keys: %w", err)
	}
	if len(keys) == 0 {
		return []models.DriverPresence{}, nil
	}

	values, err := r.redisClient.MGet(ctx, keys...)
	if err != nil {
		return nil, fmt.Errorf("failed to read driver presence entries: %w", err)
	}

	prefix := strings.TrimSuffix(constants.PatternDriverPresence, "*")
	presences := make([]models.DriverPresence, 0, len(keys))
	for i, key := range keys {
		if values[i] == nil {
			continue
		}
		raw, ok := values[i].(string)
		if !ok {
			continue
		}

		location, err := utils.ParseLatLon(raw)
		if err != nil {
			logger.Warn("Skipping malformed driver presence entry",
				logger.String("key", key),
				logger.Err(err))
			continue
		}

		presences = append(presences, models.DriverPresence{
			DriverID: strings.TrimPrefix(key, prefix),
			Location: location,
		})
	}

	return presences, nil
}

// Get returns the driver's last reported location. A missing or expired
// entry returns found=false with a nil error.
func (r *PresenceRepo) Get(ctx context.Context, driverID string) (models.Location, bool, error) {
	key := fmt.Sprintf(constants.KeyDriverPresence, driverID)

	raw, err := r.redisClient.Get(ctx, key)
	if err == redis.Nil {
		return models.Location{}, false, nil
	}
	if err != nil {
		return models.Location{}, false, fmt.Errorf("failed to read driver presence: %w", err)
	}

	location, err := utils.ParseLatLon(raw)
	if err != nil {
		return models.Location{}, false, fmt.Errorf("corrupt driver presence entry: %w", err)
	}

	return location, true, nil
}

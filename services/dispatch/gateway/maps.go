package gateway

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"googlemaps.github.io/maps"

	"github.com/sewaroda/sewaroda/internal/pkg/constants"
	"github.com/sewaroda/sewaroda/internal/pkg/database"
	"github.com/sewaroda/sewaroda/internal/pkg/logger"
	"github.com/sewaroda/sewaroda/internal/pkg/models"
	"github.com/sewaroda/sewaroda/internal/utils"
)

// MapsGW resolves road distances through the Google Distance Matrix API.
// Resolved pairs are cached in Redis under geohash-truncated keys, so two
// drivers parked on the same block reuse one lookup instead of burning quota.
type MapsGW struct {
	cfg         *models.Config
	client      *maps.Client
	redisClient *database.RedisClient
}

// NewMapsGW creates a new distance gateway backed by the Google Maps client
func NewMapsGW(cfg *models.Config, redisClient *database.RedisClient) (*MapsGW, error) {
	client, err := maps.NewClient(maps.WithAPIKey(cfg.Maps.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}

	return &MapsGW{
		cfg:         cfg,
		client:      client,
		redisClient: redisClient,
	}, nil
}

// ResolveDistances returns the driving distance from origin to every
// candidate, preserving the candidates' order and length. Cache hits are
// served from Redis; the remaining pairs go to the API in a single request.
// A candidate the API cannot route to is returned unresolved in its slot.
func (g *MapsGW) ResolveDistances(ctx context.Context, origin models.Location, candidates []models.DriverPresence) ([]models.DistanceResult, error) {
	results := make([]models.DistanceResult, len(candidates))
	if len(candidates) == 0 {
		return results, nil
	}

	precision := uint(g.cfg.Maps.CachePrecision)
	originCell := utils.CellID(origin, precision)

	cacheKeys := make([]string, len(candidates))
	for i, candidate := range candidates {
		results[i].DriverID = candidate.DriverID
		cacheKeys[i] = fmt.Sprintf(constants.KeyDistanceCache, originCell, utils.CellID(candidate.Location, precision))
	}

	misses := g.fillFromCache(ctx, cacheKeys, results)
	if len(misses) == 0 {
		return results, nil
	}

	destinations := make([]string, len(misses))
	for i, idx := range misses {
		destinations[i] = utils.FormatLatLon(candidates[idx].Location)
	}

	timeout := time.Duration(g.cfg.Maps.RequestTimeout) * time.Second
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := g.client.DistanceMatrix(reqCtx, &maps.DistanceMatrixRequest{
		Origins:      []string{utils.FormatLatLon(origin)},
		Destinations: destinations,
		Mode:         maps.TravelModeDriving,
		Units:        maps.UnitsMetric,
	})
	if err != nil {
		return nil, fmt.Errorf("distance matrix request failed: %w", err)
	}
	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) != len(destinations) {
		return nil, fmt.Errorf("distance matrix returned %d rows for %d destinations", len(resp.Rows), len(destinations))
	}

	cacheTTL := time.Duration(g.cfg.Maps.CacheTTL) * time.Second
	for i, element := range resp.Rows[0].Elements {
		idx := misses[i]
		if element.Status != "OK" {
			logger.Debug("Distance matrix element unresolved",
				logger.String("driver_id", candidates[idx].DriverID),
				logger.String("status", element.Status))
			continue
		}

		results[idx].Meters = element.Distance.Meters
		results[idx].Resolved = true

		if err := g.redisClient.Set(ctx, cacheKeys[idx], strconv.Itoa(element.Distance.Meters), cacheTTL); err != nil {
			logger.Warn("Failed to cache resolved distance",
				logger.String("key", cacheKeys[idx]),
				logger.Err(err))
		}
	}

	return results, nil
}

// fillFromCache resolves what it can from Redis and returns the indexes of
// the pairs that still need an API call. A cache read failure is treated as
// a full miss.
func (g *MapsGW) fillFromCache(ctx context.Context, cacheKeys []string, results []models.DistanceResult) []int {
	misses := make([]int, 0, len(cacheKeys))

	values, err := g.redisClient.MGet(ctx, cacheKeys...)
	if err != nil {
		logger.Warn("Distance cache read failed, resolving all pairs",
			logger.Int("pairs", len(cacheKeys)),
			logger.Err(err))
		for i := range cacheKeys {
			misses = append(misses, i)
		}
		return misses
	}

	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			misses = append(misses, i)
			continue
		}
		meters, err := strconv.Atoi(raw)
		if err != nil {
			misses = append(misses, i)
			continue
		}
		results[i].Meters = meters
		results[i].Resolved = true
	}

	return misses
}

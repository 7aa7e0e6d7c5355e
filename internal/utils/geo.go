package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mmcloughlin/geohash"
	"github.com/sewaroda/sewaroda/internal/pkg/models"
)

// FormatLatLon renders a location as the "lat,lon" text payload used by the
// presence cache and the distance resolver.
func FormatLatLon(location models.Location) string {
	return fmt.Sprintf("%s,%s",
		strconv.FormatFloat(location.Latitude, 'f', -1, 64),
		strconv.FormatFloat(location.Longitude, 'f', -1, 64))
}

// ParseLatLon parses a "lat,lon" text payload into a location
func ParseLatLon(value string) (models.Location, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return models.Location{}, fmt.Errorf("invalid location payload: %q", value)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("invalid latitude: %w", err)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("invalid longitude: %w", err)
	}

	return models.Location{Latitude: lat, Longitude: lon}, nil
}

// CellID truncates a location to a geohash cell of the given precision.
// Nearby points share a cell, which makes the result usable as a cache key
// for resolved distances.
func CellID(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sewaroda/sewaroda/internal/pkg/models"
)

func TestFilterWithinRadius_StrictBoundary(t *testing.T) {
	results := []models.DistanceResult{
		{DriverID: "driver-under", Meters: 9999, Resolved: true},
		{DriverID: "driver-exact", Meters: 10000, Resolved: true},
		{DriverID: "driver-over", Meters: 10001, Resolved: true},
	}

	matched := FilterWithinRadius(results, 10000)

	assert.Equal(t, []string{"driver-under"}, matched)
}

func TestFilterWithinRadius_SkipsUnresolved(t *testing.T) {
	results := []models.DistanceResult{
		{DriverID: "driver-a", Meters: 500, Resolved: true},
		{DriverID: "driver-b", Meters: 0, Resolved: false},
		{DriverID: "driver-c", Meters: 1200, Resolved: true},
	}

	matched := FilterWithinRadius(results, 10000)

	assert.Equal(t, []string{"driver-a", "driver-c"}, matched)
}

func TestFilterWithinRadius_EmptyInput(t *testing.T) {
	matched := FilterWithinRadius(nil, 10000)

	assert.Empty(t, matched)
	assert.NotNil(t, matched)
}

func TestFilterWithinRadius_ZeroDistanceMatches(t *testing.T) {
	results := []models.DistanceResult{
		{DriverID: "driver-at-pickup", Meters: 0, Resolved: true},
	}

	matched := FilterWithinRadius(results, 10000)

	assert.Equal(t, []string{"driver-at-pickup"}, matched)
}

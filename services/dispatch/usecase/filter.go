package usecase

import "github.com/sewaroda/sewaroda/internal/pkg/models"

// FilterWithinRadius returns the drivers whose resolved distance is strictly
// below radiusMeters. A distance exactly equal to the radius does not match,
// and neither does an unresolved candidate. Every driver under the radius is
// included; there is no ranking and no cap.
func FilterWithinRadius(results []models.DistanceResult, radiusMeters int) []string {
	matched := make([]string, 0, len(results))
	for _, result := range results {
		if !result.Resolved {
			continue
		}
		if result.Meters < radiusMeters {
			matched = append(matched, result.DriverID)
		}
	}
	return matched
}

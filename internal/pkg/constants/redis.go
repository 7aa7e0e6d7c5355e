package constants

// Redis key formats
const (
	// Presence cache
	KeyDriverPresence     = "driver:presence:%s" // Format: driver:presence:{driver_id}
	PatternDriverPresence = "driver:presence:*"  // SCAN pattern for active drivers

	// Distance resolver cache
	KeyDistanceCache = "distance:%s:%s" // Format: distance:{origin_cell}:{candidate_cell}
)

package models

// Location represents a geographical coordinate pair
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DriverPresence is a driver's most recently reported availability and
// location. Entries live in the presence cache and age out with its TTL;
// there is no explicit delete path.
type DriverPresence struct {
	DriverID string   `json:"driver_id"`
	Location Location `json:"location"`
}

// DistanceResult is the resolved travel distance for one candidate driver.
// Resolved is false when the resolver could not route to that candidate;
// an unresolved candidate never matches.
type DistanceResult struct {
	DriverID string `json:"driver_id"`
	Meters   int    `json:"meters"`
	Resolved bool   `json:"resolved"`
}

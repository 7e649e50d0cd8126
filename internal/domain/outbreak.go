package domain

import "time"

// Identity is an opaque caller id supplied by the execution environment.
type Identity string

type InfectionRecord struct {
	Identity   Identity `json:"identity"`
	Location   string   `json:"location"`
	Positive   bool     `json:"positive"`
	RecordedAt int64    `json:"recorded_at"`
}

// OutbreakEntry is keyed by the exact location text.
type OutbreakEntry struct {
	Location      string `json:"location"`
	InfectedCount uint64 `json:"infected_count"`
	LastUpdatedAt int64  `json:"last_updated_at"`
}

// RegistryState is the whole durable state.
type RegistryState struct {
	Administrator        Identity          `json:"administrator"`
	OutbreakRadiusMeters uint64            `json:"outbreak_radius_m"`
	Entries              []OutbreakEntry   `json:"entries"`
	Ledger               []InfectionRecord `json:"ledger"`
}

type ProximityResult struct {
	Found          bool   `json:"found"`
	Location       string `json:"location"`
	InfectedCount  uint64 `json:"infected_count"`
	DistanceMeters uint64 `json:"distance_m"`
}

type ExposureResult struct {
	Exposed       bool   `json:"exposed"`
	ExposureCount uint64 `json:"exposure_count"`
}

// OutbreakLocations holds parallel slices in insertion order.
type OutbreakLocations struct {
	Locations []string `json:"locations"`
	Counts    []uint64 `json:"counts"`
}

type NearbyOutbreak struct {
	OutbreakEntry
	DistanceMeters uint64 `json:"distance_m"`
}

// OutbreakSnapshot is the read model published for external map renderers.
type OutbreakSnapshot struct {
	Version       uint64            `json:"version"`
	RadiusMeters  uint64            `json:"radius_m"`
	InfectedCount uint64            `json:"infected_count"`
	Outbreaks     OutbreakLocations `json:"outbreaks"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

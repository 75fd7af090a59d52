package models

import (
	"fmt"
	"time"
)

// Snapshot sources.
const (
	SNAPSHOT_SOURCE_LIVE      = "live"
	SNAPSHOT_SOURCE_SEED      = "seed"
	SNAPSHOT_SOURCE_ESTIMATED = "estimated"
)

// KnownSnapshotSource reports whether source is one of the accepted
// snapshot sources.
func KnownSnapshotSource(source string) bool {
	switch source {
	case SNAPSHOT_SOURCE_LIVE, SNAPSHOT_SOURCE_SEED, SNAPSHOT_SOURCE_ESTIMATED:
		return true
	}
	return false
}

// OccupancySnapshot is a single immutable occupancy observation for a venue.
// Snapshots are created by the ingestion path and never mutated afterwards.
type OccupancySnapshot struct {
	VenueID             string    `json:"venue_id"`
	Timestamp           time.Time `json:"timestamp"`
	OccupancyCount      int       `json:"occupancy_count"`
	OccupancyPercentage int       `json:"occupancy_percentage"`
	Status              Status    `json:"status"`
	Source              string    `json:"source"`
}

func (s *OccupancySnapshot) ToString() string {
	return fmt.Sprintf("OccupancySnapshot(venue=%s, ts=%s, count=%d, pct=%d, source=%s)",
		s.VenueID, s.Timestamp.Format(time.RFC3339), s.OccupancyCount, s.OccupancyPercentage, s.Source)
}

package services

import (
	"log"
	"time"

	"buzz-server/busyness"
	"buzz-server/config"
	"buzz-server/dao/redis"
	"buzz-server/metrics"
	"buzz-server/models"
)

// CurveRefresherService periodically re-warms the live-estimate cache and
// seeds synthetic snapshots for venues with no recent observations, so
// windowed aggregation has data before any live ingestion exists.
type CurveRefresherService struct {
	venueDao        *redis.RedisVenueDAO
	snapshotDao     *redis.RedisSnapshotDAO
	busynessService *BusynessService

	// now is swappable for tests.
	now func() time.Time
}

// NewCurveRefresherService constructs a new refresher with dependencies.
func NewCurveRefresherService(
	venueDao *redis.RedisVenueDAO,
	snapshotDao *redis.RedisSnapshotDAO,
	busynessService *BusynessService,
) *CurveRefresherService {
	return &CurveRefresherService{
		venueDao:        venueDao,
		snapshotDao:     snapshotDao,
		busynessService: busynessService,
		now:             time.Now,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (cr *CurveRefresherService) StartPeriodicJob(interval time.Duration) {
	go cr.startPeriodicJob(interval)
}

func (cr *CurveRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[CurveRefresherService] Running periodic curve refresh job.")
		if err := cr.RefreshAll(); err != nil {
			log.Printf("[CurveRefresherService] RefreshAll returned error: %v", err)
		} else {
			log.Println("[CurveRefresherService] RefreshAll completed successfully.")
		}
	}
}

// RefreshAll walks the venue catalog, recomputes each venue's live estimate
// and seeds sparse snapshot logs.
func (cr *CurveRefresherService) RefreshAll() error {
	ids, err := cr.venueDao.ListAllVenueIDs()
	if err != nil {
		log.Printf("[CurveRefresherService] Error listing venue ids: %v", err)
		return err
	}
	log.Printf("[CurveRefresherService] Refreshing %d venues", len(ids))

	for _, id := range ids {
		if _, err := cr.busynessService.RefreshLiveBusyness(id); err != nil {
			log.Printf("[CurveRefresherService] Failed to refresh live estimate for %s: %v", id, err)
			continue
		}
		if err := cr.SeedIfSparse(id); err != nil {
			log.Printf("[CurveRefresherService] Failed to seed snapshots for %s: %v", id, err)
		}
	}
	return nil
}

// SeedIfSparse writes one synthetic seed snapshot per elapsed hour of the
// lookback window when the venue has no observations in it. Venues with any
// data are left untouched.
func (cr *CurveRefresherService) SeedIfSparse(venueID string) error {
	lookback := time.Duration(config.SEED_LOOKBACK_HOURS) * time.Hour
	since := cr.now().Add(-lookback)

	existing, err := cr.snapshotDao.FetchSnapshotsSince(venueID, since)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	v, err := cr.venueDao.GetVenue(venueID)
	if err != nil {
		return err
	}

	category := busyness.ClassifyCategory(v.VenueType)
	seeded := 0
	for ts := since.Truncate(time.Hour); ts.Before(cr.now()); ts = ts.Add(time.Hour) {
		day := int(ts.Weekday())
		pct := busyness.BaseCurvePercentage(category, ts.Hour(), busyness.IsWeekend(day), busyness.IsFriday(day))

		snapshot := models.OccupancySnapshot{
			VenueID:             venueID,
			Timestamp:           ts,
			OccupancyCount:      pct / 2,
			OccupancyPercentage: pct,
			Status:              busyness.ClassifyStatus(pct, true),
			Source:              models.SNAPSHOT_SOURCE_SEED,
		}
		if err := cr.snapshotDao.AppendSnapshot(snapshot); err != nil {
			return err
		}
		seeded++
	}

	metrics.SeededSnapshots.Add(float64(seeded))
	log.Printf("[CurveRefresherService] Seeded %d snapshots for venue %s (category=%s)", seeded, venueID, category)
	return nil
}

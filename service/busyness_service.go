package services

import (
	"log"
	"time"

	"buzz-server/busyness"
	"buzz-server/cache"
	"buzz-server/config"
	"buzz-server/dao/redis"
	"buzz-server/metrics"
	"buzz-server/models"
	"buzz-server/models/venue"
)

// BusynessService orchestrates the occupancy pipeline: snapshot store ->
// aggregator for historical summaries, synthetic generator -> TTL cache for
// live estimates.
type BusynessService struct {
	venueDao    *redis.RedisVenueDAO
	snapshotDao *redis.RedisSnapshotDAO
	generator   *busyness.Generator
	liveCache   *cache.TTLCache

	// now is swappable for tests.
	now func() time.Time
}

// NewBusynessService constructs a BusynessService with its dependencies.
func NewBusynessService(
	venueDao *redis.RedisVenueDAO,
	snapshotDao *redis.RedisSnapshotDAO,
	generator *busyness.Generator,
	liveCache *cache.TTLCache,
) *BusynessService {
	return &BusynessService{
		venueDao:    venueDao,
		snapshotDao: snapshotDao,
		generator:   generator,
		liveCache:   liveCache,
		now:         time.Now,
	}
}

// RecordSnapshot is the ingestion path: it classifies and appends one
// immutable occupancy observation.
func (bs *BusynessService) RecordSnapshot(s models.OccupancySnapshot) error {
	if _, err := bs.venueDao.GetVenue(s.VenueID); err != nil {
		return err
	}
	s.Status = busyness.ClassifyStatus(s.OccupancyPercentage, true)
	if s.Timestamp.IsZero() {
		s.Timestamp = bs.now()
	}
	return bs.snapshotDao.AppendSnapshot(s)
}

// DeleteSnapshots drops a venue's whole snapshot log and invalidates its
// cached live estimate. Unknown venues yield redis.ErrVenueNotFound.
func (bs *BusynessService) DeleteSnapshots(venueID string) error {
	if _, err := bs.venueDao.GetVenue(venueID); err != nil {
		return err
	}
	if err := bs.snapshotDao.DeleteSnapshots(venueID); err != nil {
		return err
	}
	bs.liveCache.Invalidate(venueID)
	return nil
}

// GetBusynessSummary aggregates the venue's snapshots over the trailing
// window of windowDays days. Unknown venues yield redis.ErrVenueNotFound.
func (bs *BusynessService) GetBusynessSummary(venueID string, windowDays int) (*models.BusynessSummary, error) {
	if _, err := bs.venueDao.GetVenue(venueID); err != nil {
		return nil, err
	}

	if windowDays <= 0 {
		windowDays = config.AGGREGATION_WINDOW_DAYS_DEFAULT
	}
	if windowDays > config.AGGREGATION_WINDOW_DAYS_MAX {
		windowDays = config.AGGREGATION_WINDOW_DAYS_MAX
	}

	since := bs.now().AddDate(0, 0, -windowDays)
	snapshots, err := bs.snapshotDao.FetchSnapshotsSince(venueID, since)
	if err != nil {
		return nil, err
	}
	metrics.SnapshotsAggregated.Add(float64(len(snapshots)))

	summary := busyness.Aggregate(snapshots)
	summary.VenueID = venueID
	return &summary, nil
}

// GetBusynessSummaryRange aggregates the venue's snapshots over an explicit
// [from, to] window. Inverted windows yield redis.ErrInvalidWindow.
func (bs *BusynessService) GetBusynessSummaryRange(venueID string, from, to time.Time) (*models.BusynessSummary, error) {
	if _, err := bs.venueDao.GetVenue(venueID); err != nil {
		return nil, err
	}

	snapshots, err := bs.snapshotDao.FetchSnapshotsRange(venueID, from, to)
	if err != nil {
		return nil, err
	}
	metrics.SnapshotsAggregated.Add(float64(len(snapshots)))

	summary := busyness.Aggregate(snapshots)
	summary.VenueID = venueID
	return &summary, nil
}

// GetLiveBusyness returns the cached-or-computed live estimate for a venue.
// Unknown venues yield redis.ErrVenueNotFound.
func (bs *BusynessService) GetLiveBusyness(venueID string) (*models.LiveBusyness, error) {
	if value, ok := bs.liveCache.Get(venueID); ok {
		metrics.CacheHits.Inc()
		return value.(*models.LiveBusyness), nil
	}

	value, err := bs.liveCache.GetOrCompute(venueID, bs.computeLiveBusyness)
	if err != nil {
		return nil, err
	}
	return value.(*models.LiveBusyness), nil
}

// GetLiveBusynessBatch resolves live estimates for a set of venue ids.
// Unknown ids are silently omitted from the result.
func (bs *BusynessService) GetLiveBusynessBatch(venueIDs []string) map[string]*models.LiveBusyness {
	raw := bs.liveCache.GetOrComputeBatch(venueIDs, bs.computeLiveBusyness)

	results := make(map[string]*models.LiveBusyness, len(raw))
	for id, value := range raw {
		results[id] = value.(*models.LiveBusyness)
	}
	return results
}

// RefreshLiveBusyness drops the cached estimate and recomputes it.
func (bs *BusynessService) RefreshLiveBusyness(venueID string) (*models.LiveBusyness, error) {
	bs.liveCache.Invalidate(venueID)
	return bs.GetLiveBusyness(venueID)
}

// GetVenue returns a single catalog record.
func (bs *BusynessService) GetVenue(venueID string) (*venue.Venue, error) {
	return bs.venueDao.GetVenue(venueID)
}

// GetVenuesNearby returns catalog venues within radius km of (lat, lon).
func (bs *BusynessService) GetVenuesNearby(lat, lon, radius float64) ([]venue.Venue, error) {
	return bs.venueDao.GetNearbyVenues(lat, lon, radius)
}

// computeLiveBusyness builds the live estimate for one venue. Venues with a
// recent live snapshot report it as the current reading; everything else is
// a synthetic prediction.
func (bs *BusynessService) computeLiveBusyness(venueID string) (interface{}, error) {
	metrics.CacheMisses.Inc()

	v, err := bs.venueDao.GetVenue(venueID)
	if err != nil {
		return nil, err
	}

	now := bs.now()
	curve := bs.generator.GenerateCurve(v.VenueType, int(now.Weekday()))

	live := &models.LiveBusyness{
		VenueID:          v.VenueID,
		VenueName:        v.VenueName,
		CurrentOccupancy: curve[now.Hour()].Percentage,
		CurrentStatus:    busyness.ClassifyStatus(curve[now.Hour()].Percentage, true),
		IsPredicted:      true,
		BusyTimes:        curve,
	}

	if v.HasLiveData {
		snapshots, err := bs.snapshotDao.FetchSnapshotsSince(venueID, now.Add(-time.Hour))
		if err != nil {
			log.Printf("[BusynessService] Failed to fetch recent snapshots for %s: %v", venueID, err)
		} else if latest := latestLiveSnapshot(snapshots); latest != nil {
			live.CurrentOccupancy = latest.OccupancyPercentage
			live.CurrentStatus = busyness.ClassifyStatus(latest.OccupancyPercentage, true)
			live.IsPredicted = false
		}
	}

	return live, nil
}

func latestLiveSnapshot(snapshots []models.OccupancySnapshot) *models.OccupancySnapshot {
	var latest *models.OccupancySnapshot
	for i := range snapshots {
		s := &snapshots[i]
		if s.Source != models.SNAPSHOT_SOURCE_LIVE {
			continue
		}
		if latest == nil || s.Timestamp.After(latest.Timestamp) {
			latest = s
		}
	}
	return latest
}

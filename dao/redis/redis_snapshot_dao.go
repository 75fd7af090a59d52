package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"buzz-server/db"
	"buzz-server/models"
)

const OCCUPANCY_SNAPSHOTS_KEY_FORMAT_V1 = "occ_snapshots_v1:%s"

// ErrInvalidWindow is returned when a requested time window is inverted.
var ErrInvalidWindow = errors.New("invalid time window")

// RedisSnapshotDAO persists the append-only occupancy snapshot log per venue,
// stored as a sorted set scored by unix timestamp.
type RedisSnapshotDAO struct {
	client db.RedisClient
}

// NewRedisSnapshotDAO initializes a RedisSnapshotDAO with the Redis client.
func NewRedisSnapshotDAO(client db.RedisClient) *RedisSnapshotDAO {
	return &RedisSnapshotDAO{client: client}
}

// AppendSnapshot records one occupancy observation. Snapshots are immutable;
// there is no update path.
func (dao *RedisSnapshotDAO) AppendSnapshot(s models.OccupancySnapshot) error {
	ctx := dao.client.GetContext()
	key := fmt.Sprintf(OCCUPANCY_SNAPSHOTS_KEY_FORMAT_V1, s.VenueID)
	score := float64(s.Timestamp.Unix())
	if err := dao.client.AddTimeSeriesEntry(ctx, key, score, s); err != nil {
		return fmt.Errorf("failed to append snapshot for venue %s: %w", s.VenueID, err)
	}
	return nil
}

// FetchSnapshotsSince returns all snapshots for a venue observed at or after
// the given instant, in timestamp order.
func (dao *RedisSnapshotDAO) FetchSnapshotsSince(venueID string, since time.Time) ([]models.OccupancySnapshot, error) {
	return dao.fetchRange(venueID, float64(since.Unix()), math.Inf(1))
}

// FetchSnapshotsRange returns all snapshots for a venue within [from, to].
// An inverted window yields ErrInvalidWindow.
func (dao *RedisSnapshotDAO) FetchSnapshotsRange(venueID string, from, to time.Time) ([]models.OccupancySnapshot, error) {
	if from.After(to) {
		return nil, fmt.Errorf("%w: from %s is after to %s", ErrInvalidWindow,
			from.Format(time.RFC3339), to.Format(time.RFC3339))
	}
	return dao.fetchRange(venueID, float64(from.Unix()), float64(to.Unix()))
}

func (dao *RedisSnapshotDAO) fetchRange(venueID string, min, max float64) ([]models.OccupancySnapshot, error) {
	key := fmt.Sprintf(OCCUPANCY_SNAPSHOTS_KEY_FORMAT_V1, venueID)
	entries, err := dao.client.GetTimeSeriesRange(key, min, max)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch snapshots for venue %s: %w", venueID, err)
	}

	snapshots := make([]models.OccupancySnapshot, len(entries))
	for i, entry := range entries {
		if err := json.Unmarshal([]byte(entry), &snapshots[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal snapshot JSON: %v", err)
		}
	}
	return snapshots, nil
}

// DeleteSnapshots drops the whole snapshot log for a venue.
func (dao *RedisSnapshotDAO) DeleteSnapshots(venueID string) error {
	key := fmt.Sprintf(OCCUPANCY_SNAPSHOTS_KEY_FORMAT_V1, venueID)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete snapshot log %s: %w", key, err)
	}
	return nil
}

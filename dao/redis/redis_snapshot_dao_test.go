package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"buzz-server/db"
	"buzz-server/models"
)

func testSnapshot(venueID string, ts time.Time, pct int) models.OccupancySnapshot {
	return models.OccupancySnapshot{
		VenueID:             venueID,
		Timestamp:           ts,
		OccupancyCount:      pct / 2,
		OccupancyPercentage: pct,
		Source:              models.SNAPSHOT_SOURCE_LIVE,
	}
}

func TestRedisSnapshotDAO_AppendAndFetchSince(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisSnapshotDAO(mockClient)

	base := time.Date(2025, 1, 6, 18, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		s := testSnapshot("venue123", base.Add(time.Duration(i)*time.Hour), 20*i)
		if err := dao.AppendSnapshot(s); err != nil {
			t.Fatalf("AppendSnapshot failed: %v", err)
		}
	}

	// Act: fetch from the midpoint onwards
	snapshots, err := dao.FetchSnapshotsSince("venue123", base.Add(2*time.Hour))

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(snapshots) != 2 {
		t.Fatalf("Expected 2 snapshots, got %d", len(snapshots))
	}
	if snapshots[0].OccupancyPercentage != 40 || snapshots[1].OccupancyPercentage != 60 {
		t.Errorf("Unexpected snapshot percentages: %d, %d",
			snapshots[0].OccupancyPercentage, snapshots[1].OccupancyPercentage)
	}
}

func TestRedisSnapshotDAO_FetchRange(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisSnapshotDAO(mockClient)

	base := time.Date(2025, 1, 6, 18, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_ = dao.AppendSnapshot(testSnapshot("venue123", base.Add(time.Duration(i)*time.Hour), 10*i))
	}

	snapshots, err := dao.FetchSnapshotsRange("venue123", base.Add(time.Hour), base.Add(3*time.Hour))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(snapshots) != 3 {
		t.Errorf("Expected 3 snapshots, got %d", len(snapshots))
	}
}

func TestRedisSnapshotDAO_InvertedWindowRejected(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisSnapshotDAO(mockClient)

	now := time.Now()
	_, err := dao.FetchSnapshotsRange("venue123", now, now.Add(-time.Hour))
	if !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("Expected ErrInvalidWindow, got %v", err)
	}
}

func TestRedisSnapshotDAO_EmptyLog(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisSnapshotDAO(mockClient)

	snapshots, err := dao.FetchSnapshotsSince("no-such-venue", time.Unix(0, 0))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(snapshots) != 0 {
		t.Errorf("Expected empty result, got %d snapshots", len(snapshots))
	}
}

package util

import (
	"encoding/json"
	"fmt"
	"os"

	"buzz-server/models"
	"buzz-server/models/venue"
)

// ReadVenuesFromJSON loads the static venue catalog fixture from disk.
func ReadVenuesFromJSON(filePath string) ([]venue.Venue, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var venues []venue.Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venues: %w", err)
	}
	return venues, nil
}

// ReadSnapshotsFromJSON loads occupancy snapshots from a JSON fixture.
func ReadSnapshotsFromJSON(filePath string) ([]models.OccupancySnapshot, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var snapshots []models.OccupancySnapshot
	if err := json.Unmarshal(data, &snapshots); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshots: %w", err)
	}
	return snapshots, nil
}

// PrintVenuePartially prints key fields of a venue record.
func PrintVenuePartially(v *venue.Venue) {
	fmt.Printf("Venue ID: %s\n", v.VenueID)
	fmt.Printf("Name: %s\n", v.VenueName)
	fmt.Printf("Type: %s\n", v.VenueType)
	fmt.Printf("Location: (%.6f, %.6f)\n", v.VenueLat, v.VenueLon)
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"buzz-server/db"
	"buzz-server/models/venue"
)

func TestRedisVenueDAO_UpsertVenue_Success(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisVenueDAO(mockClient)

	testVenue := venue.Venue{
		VenueID:   "venue123",
		VenueLat:  40.7128,
		VenueLon:  -74.0060,
		VenueName: "Test Venue",
		VenueType: "Cocktail Lounge",
	}

	// Act
	err := dao.UpsertVenue(testVenue)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Verify data stored in mock Redis
	expectedKey := "venues_geo_place_v1:venue123"
	storedValue, err := mockClient.Get(expectedKey)
	if err != nil {
		t.Fatalf("Expected data to be stored, got error: %v", err)
	}

	// Verify JSON content
	var storedVenue venue.Venue
	if err := json.Unmarshal([]byte(storedValue), &storedVenue); err != nil {
		t.Fatalf("Failed to unmarshal stored venue data: %v", err)
	}

	if storedVenue.VenueID != testVenue.VenueID {
		t.Errorf("Expected VenueID %s, got %s", testVenue.VenueID, storedVenue.VenueID)
	}
	if storedVenue.VenueType != testVenue.VenueType {
		t.Errorf("Expected VenueType %s, got %s", testVenue.VenueType, storedVenue.VenueType)
	}
}

func TestRedisVenueDAO_GetVenue(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisVenueDAO(mockClient)

	testVenue := venue.Venue{
		VenueID:   "venue123",
		VenueName: "Test Venue",
	}
	_ = dao.UpsertVenue(testVenue)

	// Act
	found, err := dao.GetVenue("venue123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if found.VenueName != "Test Venue" {
		t.Errorf("Expected venue name 'Test Venue', got %s", found.VenueName)
	}

	// Unknown id maps to the typed sentinel
	_, err = dao.GetVenue("missing")
	if !errors.Is(err, ErrVenueNotFound) {
		t.Errorf("Expected ErrVenueNotFound, got %v", err)
	}
}

func TestRedisVenueDAO_GetNearbyVenues_Success(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisVenueDAO(mockClient)

	// Add test venues
	testVenue1 := venue.Venue{
		VenueID:   "venue123",
		VenueLat:  40.7128,
		VenueLon:  -74.0060,
		VenueName: "Test Venue 1",
	}
	testVenue2 := venue.Venue{
		VenueID:   "venue456",
		VenueLat:  40.7130,
		VenueLon:  -74.0050,
		VenueName: "Test Venue 2",
	}
	_ = dao.UpsertVenue(testVenue1)
	_ = dao.UpsertVenue(testVenue2)

	// Act
	venues, err := dao.GetNearbyVenues(40.7128, -74.0060, 1000)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(venues) != 2 {
		t.Errorf("Expected 2 venues, got %d", len(venues))
	}

	// Verify contents of the retrieved venues
	expectedIDs := map[string]bool{
		"venue123": true,
		"venue456": true,
	}
	for _, v := range venues {
		if !expectedIDs[v.VenueID] {
			t.Errorf("Unexpected venue ID: %s", v.VenueID)
		}
	}
}

func TestRedisVenueDAO_GetNearbyVenues_NoResults(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisVenueDAO(mockClient)

	// Act
	venues, err := dao.GetNearbyVenues(40.7128, -74.0060, 1000)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(venues) != 0 {
		t.Errorf("Expected no venues, got %d", len(venues))
	}
}

func TestRedisVenueDAO_ListAllVenueIDs(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisVenueDAO(mockClient)

	_ = dao.UpsertVenue(venue.Venue{VenueID: "a1"})
	_ = dao.UpsertVenue(venue.Venue{VenueID: "b2"})

	ids, err := dao.ListAllVenueIDs()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("Expected 2 ids, got %d", len(ids))
	}

	seen := map[string]bool{}
	for _, id := range ids {
		seen[id] = true
	}
	if !seen["a1"] || !seen["b2"] {
		t.Errorf("Expected ids a1 and b2, got %v", ids)
	}
}

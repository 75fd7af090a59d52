package venue

import "fmt"

// Venue represents a venue in the catalog.
type Venue struct {
	VenueID      string  `json:"venue_id"`
	VenueName    string  `json:"venue_name"`
	VenueAddress string  `json:"venue_address"`
	VenueLat     float64 `json:"venue_lat"`
	VenueLon     float64 `json:"venue_lng"`

	// VenueType is free text from the catalog source ("Latin Bar & Nightclub",
	// "Sushi Restaurant", ...). Category classification happens downstream.
	VenueType string `json:"venue_type,omitempty"`

	PriceLevel int     `json:"price_level,omitempty"`
	Rating     float64 `json:"rating,omitempty"`
	Reviews    int     `json:"reviews,omitempty"`

	// HasLiveData marks venues with a live occupancy ingestion source; the
	// rest are served synthetic estimates.
	HasLiveData bool `json:"has_live_data"`
}

func (v *Venue) ToString() string {
	return fmt.Sprintf("Venue(id=%s, name=%s, type=%s, lat=%f, lon=%f)",
		v.VenueID, v.VenueName, v.VenueType, v.VenueLat, v.VenueLon)
}

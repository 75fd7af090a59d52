package models

// Status is the busy-ness classification tier for an occupancy percentage.
type Status string

const (
	STATUS_UNKNOWN   Status = "unknown"
	STATUS_QUIET     Status = "quiet"
	STATUS_MODERATE  Status = "moderate"
	STATUS_BUSY      Status = "busy"
	STATUS_VERY_BUSY Status = "very_busy"
)

// HourlyAggregate is the derived busy-ness summary for one hour-of-day bucket.
// Exactly 24 of these are produced per aggregation, zero-filled for hours
// with no observations.
type HourlyAggregate struct {
	Hour             int     `json:"hour"`
	AverageOccupancy float64 `json:"averageOccupancy"`
	PeakOccupancy    int     `json:"peakOccupancy"`
}

// DailyAggregate is the derived busy-ness summary for one day-of-week bucket
// (Sunday=0 .. Saturday=6). PeakHour is that day's own busiest hour.
type DailyAggregate struct {
	DayOfWeek        int     `json:"dayOfWeek"`
	AverageOccupancy float64 `json:"averageOccupancy"`
	PeakHour         int     `json:"peakHour"`
}

// BusynessSummary is the full aggregation result over a snapshot window.
type BusynessSummary struct {
	VenueID          string            `json:"venue_id,omitempty"`
	HourlyAggregates []HourlyAggregate `json:"hourlyAggregates"`
	DailyAggregates  []DailyAggregate  `json:"dailyAggregates"`

	// PeakHour is the global arg-max hour across HourlyAggregates.
	PeakHour         int     `json:"peakHour"`
	TotalOccupancy   int     `json:"totalOccupancy"`
	AverageOccupancy float64 `json:"averageOccupancy"`

	// CurrentOccupancy/CurrentStatus reflect the most recent snapshot in the
	// window (zero/unknown for an empty window).
	CurrentOccupancy int    `json:"currentOccupancy"`
	CurrentStatus    Status `json:"currentStatus"`
}

// BusyTime is one synthetic curve point as served to the mobile client.
type BusyTime struct {
	Hour        int  `json:"hour"`
	Percentage  int  `json:"percentage"`
	IsPredicted bool `json:"isPredicted"`
}

// LiveBusyness is the cached-or-computed live estimate for one venue.
type LiveBusyness struct {
	VenueID          string     `json:"venue_id"`
	VenueName        string     `json:"venue_name,omitempty"`
	CurrentOccupancy int        `json:"currentOccupancy"`
	CurrentStatus    Status     `json:"currentStatus"`
	IsPredicted      bool       `json:"isPredicted"`
	BusyTimes        []BusyTime `json:"busyTimes"`
}

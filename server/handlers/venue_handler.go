package handlers

import (
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"buzz-server/models"
	"buzz-server/models/venue"
	services "buzz-server/service"
)

const (
	LAT_QUERY_ARG     = "lat"
	LON_QUERY_ARG     = "lon"
	RADIUS_QUERY_ARG  = "radius"
	VERBOSE_QUERY_ARG = "verbose"
)

// VenueWithBusyness pairs a Venue with its live busy-ness estimate.
type VenueWithBusyness struct {
	Venue venue.Venue          `json:"venue"`
	Live  *models.LiveBusyness `json:"live_busyness"`
}

// MinifiedVenue is the small form returned when verbose=false.
type MinifiedVenue struct {
	VenueID          string        `json:"venue_id"`
	VenueName        string        `json:"venue_name"`
	VenueAddress     string        `json:"venue_address"`
	CurrentOccupancy int           `json:"currentOccupancy"`
	CurrentStatus    models.Status `json:"currentStatus"`
	IsPredicted      bool          `json:"isPredicted"`
}

type VenueHandler struct {
	busynessService *services.BusynessService
}

func NewVenueHandler(busynessService *services.BusynessService) *VenueHandler {
	return &VenueHandler{busynessService: busynessService}
}

// GetVenuesNearby handles GET /v1/venues/nearby and merges each venue with
// its live busy-ness estimate, busiest first.
func (h *VenueHandler) GetVenuesNearby(w http.ResponseWriter, r *http.Request) {
	// 1) Parse query args
	lat, lon, radius, verbose, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	// 2) Load geo-indexed venues
	venues, err := h.busynessService.GetVenuesNearby(lat, lon, radius)
	if err != nil {
		log.Println("Error loading nearby venues:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// 3) Merge with live estimates
	merged := h.mergeLive(venues)

	// 4) Transform according to verbose flag
	result := h.transform(merged, verbose)

	// 5) Write JSON
	writeJSON(w, http.StatusOK, result)
}

// GetVenue handles GET /v1/venues/{venue_id}
func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	venueID, ok := pathVenueID(r)
	if !ok {
		http.Error(w, "Missing venue id", http.StatusBadRequest)
		return
	}

	v, err := h.busynessService.GetVenue(venueID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *VenueHandler) parseArgs(vals url.Values, w http.ResponseWriter) (
	lat, lon, radius float64, verbose bool, ok bool,
) {
	var err error

	lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lon, err = parseArgFloat64(vals, LON_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LON_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}
	verbose = false
	if v := vals.Get(VERBOSE_QUERY_ARG); v != "" {
		verbose, _ = strconv.ParseBool(v)
	}
	ok = true
	return
}

func (h *VenueHandler) mergeLive(venues []venue.Venue) []VenueWithBusyness {
	ids := make([]string, len(venues))
	for i, v := range venues {
		ids[i] = v.VenueID
	}
	estimates := h.busynessService.GetLiveBusynessBatch(ids)

	var out []VenueWithBusyness
	for _, v := range venues {
		live, ok := estimates[v.VenueID]
		if !ok {
			log.Printf("No live estimate for venue_id=%s, skipping", v.VenueID)
			continue
		}
		out = append(out, VenueWithBusyness{Venue: v, Live: live})
	}
	// sort by current occupancy desc
	sort.Slice(out, func(i, j int) bool {
		return out[i].Live.CurrentOccupancy > out[j].Live.CurrentOccupancy
	})
	return out
}

func (h *VenueHandler) transform(merged []VenueWithBusyness, verbose bool) interface{} {
	if verbose {
		return merged
	}
	// minify
	min := make([]MinifiedVenue, 0, len(merged))
	for _, m := range merged {
		min = append(min, MinifiedVenue{
			VenueID:          m.Venue.VenueID,
			VenueName:        m.Venue.VenueName,
			VenueAddress:     m.Venue.VenueAddress,
			CurrentOccupancy: m.Live.CurrentOccupancy,
			CurrentStatus:    m.Live.CurrentStatus,
			IsPredicted:      m.Live.IsPredicted,
		})
	}
	return min
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}

// Ping handles GET /ping
func (h *VenueHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

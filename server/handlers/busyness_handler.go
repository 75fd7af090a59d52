package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	redisdao "buzz-server/dao/redis"
	"buzz-server/models"
	services "buzz-server/service"
)

const (
	DAYS_QUERY_ARG = "days"
	FROM_QUERY_ARG = "from"
	TO_QUERY_ARG   = "to"
	IDS_QUERY_ARG  = "ids"
)

// BusynessHandler serves the occupancy aggregation and live-estimate routes.
type BusynessHandler struct {
	busynessService *services.BusynessService
}

func NewBusynessHandler(busynessService *services.BusynessService) *BusynessHandler {
	return &BusynessHandler{busynessService: busynessService}
}

// GetBusynessSummary handles GET /v1/venues/{venue_id}/busyness?days=N and
// the explicit-window form ?from=RFC3339&to=RFC3339.
func (h *BusynessHandler) GetBusynessSummary(w http.ResponseWriter, r *http.Request) {
	venueID, ok := pathVenueID(r)
	if !ok {
		http.Error(w, "Missing venue id", http.StatusBadRequest)
		return
	}

	rawFrom := r.URL.Query().Get(FROM_QUERY_ARG)
	rawTo := r.URL.Query().Get(TO_QUERY_ARG)
	if rawFrom != "" || rawTo != "" {
		from, errFrom := time.Parse(time.RFC3339, rawFrom)
		to, errTo := time.Parse(time.RFC3339, rawTo)
		if errFrom != nil || errTo != nil {
			http.Error(w, "Arguments "+FROM_QUERY_ARG+" and "+TO_QUERY_ARG+" must both be RFC3339 timestamps", http.StatusBadRequest)
			return
		}
		summary, err := h.busynessService.GetBusynessSummaryRange(venueID, from, to)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, summary)
		return
	}

	days := 0
	if raw := r.URL.Query().Get(DAYS_QUERY_ARG); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "Invalid argument "+DAYS_QUERY_ARG, http.StatusBadRequest)
			return
		}
		days = parsed
	}

	summary, err := h.busynessService.GetBusynessSummary(venueID, days)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// GetLiveBusyness handles GET /v1/venues/{venue_id}/busyness/live
func (h *BusynessHandler) GetLiveBusyness(w http.ResponseWriter, r *http.Request) {
	venueID, ok := pathVenueID(r)
	if !ok {
		http.Error(w, "Missing venue id", http.StatusBadRequest)
		return
	}

	live, err := h.busynessService.GetLiveBusyness(venueID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, live)
}

// GetLiveBusynessBatch handles GET /v1/venues/busyness/live?ids=a,b,c
// Unknown ids are omitted from the response, not errors.
func (h *BusynessHandler) GetLiveBusynessBatch(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get(IDS_QUERY_ARG)
	if raw == "" {
		http.Error(w, "Missing argument "+IDS_QUERY_ARG, http.StatusBadRequest)
		return
	}

	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	results := h.busynessService.GetLiveBusynessBatch(ids)
	writeJSON(w, http.StatusOK, results)
}

// RecordSnapshot handles POST /v1/venues/{venue_id}/snapshots
func (h *BusynessHandler) RecordSnapshot(w http.ResponseWriter, r *http.Request) {
	venueID, ok := pathVenueID(r)
	if !ok {
		http.Error(w, "Missing venue id", http.StatusBadRequest)
		return
	}

	var snapshot models.OccupancySnapshot
	if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
		http.Error(w, "Invalid snapshot body", http.StatusBadRequest)
		return
	}
	if snapshot.OccupancyPercentage < 0 || snapshot.OccupancyPercentage > 100 || snapshot.OccupancyCount < 0 {
		http.Error(w, "Snapshot values out of range", http.StatusBadRequest)
		return
	}
	snapshot.VenueID = venueID
	if snapshot.Source == "" {
		snapshot.Source = models.SNAPSHOT_SOURCE_LIVE
	}
	if !models.KnownSnapshotSource(snapshot.Source) {
		http.Error(w, "Unknown snapshot source", http.StatusBadRequest)
		return
	}

	if err := h.busynessService.RecordSnapshot(snapshot); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// DeleteSnapshots handles DELETE /v1/venues/{venue_id}/snapshots
func (h *BusynessHandler) DeleteSnapshots(w http.ResponseWriter, r *http.Request) {
	venueID, ok := pathVenueID(r)
	if !ok {
		http.Error(w, "Missing venue id", http.StatusBadRequest)
		return
	}

	if err := h.busynessService.DeleteSnapshots(venueID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathVenueID(r *http.Request) (string, bool) {
	venueID := mux.Vars(r)["venue_id"]
	return venueID, venueID != ""
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// writeServiceError maps the service error taxonomy onto HTTP statuses:
// unknown venue -> 404, bad window -> 400, everything else -> 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, redisdao.ErrVenueNotFound):
		http.Error(w, "Venue not found", http.StatusNotFound)
	case errors.Is(err, redisdao.ErrInvalidWindow):
		http.Error(w, "Invalid time window", http.StatusBadRequest)
	default:
		log.Println("Internal error:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"buzz-server/server/handlers"
)

// VenueRoutes is the handler surface the router needs for venue routes.
type VenueRoutes interface {
	GetVenuesNearby(w http.ResponseWriter, r *http.Request)
	GetVenue(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

// BusynessRoutes is the handler surface the router needs for busyness routes.
type BusynessRoutes interface {
	GetBusynessSummary(w http.ResponseWriter, r *http.Request)
	GetLiveBusyness(w http.ResponseWriter, r *http.Request)
	GetLiveBusynessBatch(w http.ResponseWriter, r *http.Request)
	RecordSnapshot(w http.ResponseWriter, r *http.Request)
	DeleteSnapshots(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	venueHandler    VenueRoutes
	busynessHandler BusynessRoutes
	router          *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	venueHandler VenueRoutes,
	busynessHandler BusynessRoutes,
	router *mux.Router) *Router {
	return &Router{
		venueHandler:    venueHandler,
		busynessHandler: busynessHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(handlers.MetricsMiddleware)

	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={radius(float)}
	r.router.HandleFunc("/v1/venues/nearby", r.venueHandler.GetVenuesNearby).Methods("GET")

	// batch route registered before the {venue_id} routes so mux matches it first
	r.router.HandleFunc("/v1/venues/busyness/live", r.busynessHandler.GetLiveBusynessBatch).Methods("GET")

	r.router.HandleFunc("/v1/venues/{venue_id}", r.venueHandler.GetVenue).Methods("GET")
	r.router.HandleFunc("/v1/venues/{venue_id}/busyness", r.busynessHandler.GetBusynessSummary).Methods("GET")
	r.router.HandleFunc("/v1/venues/{venue_id}/busyness/live", r.busynessHandler.GetLiveBusyness).Methods("GET")
	r.router.HandleFunc("/v1/venues/{venue_id}/snapshots", r.busynessHandler.RecordSnapshot).Methods("POST")
	r.router.HandleFunc("/v1/venues/{venue_id}/snapshots", r.busynessHandler.DeleteSnapshots).Methods("DELETE")

	r.router.Handle("/metrics", promhttp.Handler())
	r.router.HandleFunc("/ping", r.venueHandler.Ping).Methods("GET")
}

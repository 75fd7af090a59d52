package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

// MockVenueHandler is a mock implementation of the venue routes.
type MockVenueHandler struct{}

func (h *MockVenueHandler) GetVenuesNearby(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "venues nearby"}`))
}

func (h *MockVenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "venue"}`))
}

func (h *MockVenueHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "pong"}`))
}

// MockBusynessHandler is a mock implementation of the busyness routes.
type MockBusynessHandler struct{}

func (h *MockBusynessHandler) GetBusynessSummary(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "summary"}`))
}

func (h *MockBusynessHandler) GetLiveBusyness(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "live"}`))
}

func (h *MockBusynessHandler) GetLiveBusynessBatch(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "batch"}`))
}

func (h *MockBusynessHandler) RecordSnapshot(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusCreated)
}

func (h *MockBusynessHandler) DeleteSnapshots(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func TestRouter_RegisterRoutes(t *testing.T) {
	// Setup
	router := mux.NewRouter()
	appRouter := NewRouter(&MockVenueHandler{}, &MockBusynessHandler{}, router)
	appRouter.RegisterRoutes()

	// Test Cases
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{
			name:       "Get Venues Nearby",
			method:     "GET",
			path:       "/v1/venues/nearby",
			statusCode: http.StatusOK,
			response:   `{"message": "venues nearby"}`,
		},
		{
			name:       "Get Venue",
			method:     "GET",
			path:       "/v1/venues/abc123",
			statusCode: http.StatusOK,
			response:   `{"message": "venue"}`,
		},
		{
			name:       "Get Busyness Summary",
			method:     "GET",
			path:       "/v1/venues/abc123/busyness",
			statusCode: http.StatusOK,
			response:   `{"message": "summary"}`,
		},
		{
			name:       "Get Live Busyness",
			method:     "GET",
			path:       "/v1/venues/abc123/busyness/live",
			statusCode: http.StatusOK,
			response:   `{"message": "live"}`,
		},
		{
			name:       "Batch route wins over venue id route",
			method:     "GET",
			path:       "/v1/venues/busyness/live",
			statusCode: http.StatusOK,
			response:   `{"message": "batch"}`,
		},
		{
			name:       "Record Snapshot",
			method:     "POST",
			path:       "/v1/venues/abc123/snapshots",
			statusCode: http.StatusCreated,
		},
		{
			name:       "Delete Snapshots",
			method:     "DELETE",
			path:       "/v1/venues/abc123/snapshots",
			statusCode: http.StatusNoContent,
		},
		{
			name:       "Ping Route",
			method:     "GET",
			path:       "/ping",
			statusCode: http.StatusOK,
			response:   `{"status": "pong"}`,
		},
		{
			name:       "Invalid Route",
			method:     "GET",
			path:       "/invalid",
			statusCode: http.StatusNotFound,
		},
		{
			name:       "Wrong Method",
			method:     "POST",
			path:       "/ping",
			statusCode: http.StatusMethodNotAllowed,
		},
	}

	// Run tests
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			// Assert status code
			if rr.Code != test.statusCode {
				t.Errorf("Expected status %d, got %d", test.statusCode, rr.Code)
			}

			// Assert response body, if applicable
			if test.response != "" && rr.Body.String() != test.response {
				t.Errorf("Expected response %s, got %s", test.response, rr.Body.String())
			}
		})
	}
}

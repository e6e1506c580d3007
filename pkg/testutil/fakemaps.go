package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
)

// APIStub is a canned Google Maps web API served over httptest. Each field
// holds the raw JSON body returned for the corresponding endpoint; places
// responses are keyed by the requested type so category-ladder behavior can
// be exercised.
type APIStub struct {
	mu sync.Mutex

	// Geocode is returned for /geocode/json.
	Geocode string

	// Places maps a place type to the body returned for
	// /place/nearbysearch/json; missing types answer ZERO_RESULTS.
	Places map[string]string

	// Directions is returned for /directions/json.
	Directions string

	// Calls records each request as "endpoint" or "endpoint?type=X".
	Calls []string

	srv *httptest.Server
}

// NewAPIStub starts a stub server with OK-ish defaults.
func NewAPIStub() *APIStub {
	s := &APIStub{
		Geocode:    GeocodeOK(41.8781, -87.6298),
		Places:     map[string]string{},
		Directions: DirectionsStatus("ZERO_RESULTS"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/geocode/json", func(w http.ResponseWriter, r *http.Request) {
		s.record("geocode")
		s.write(w, s.Geocode)
	})
	mux.HandleFunc("/place/nearbysearch/json", func(w http.ResponseWriter, r *http.Request) {
		placeType := r.URL.Query().Get("type")
		s.record(fmt.Sprintf("places?type=%s&radius=%s", placeType, r.URL.Query().Get("radius")))
		body, ok := s.Places[placeType]
		if !ok {
			body = PlacesStatus("ZERO_RESULTS")
		}
		s.write(w, body)
	})
	mux.HandleFunc("/directions/json", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		s.record(fmt.Sprintf("directions?destination=%s&waypoints=%s", q.Get("destination"), q.Get("waypoints")))
		s.write(w, s.Directions)
	})

	s.srv = httptest.NewServer(mux)
	return s
}

// URL returns the stub's base URL, suitable for gmaps.WithBaseURL.
func (s *APIStub) URL() string {
	return s.srv.URL
}

// Close shuts the stub down.
func (s *APIStub) Close() {
	s.srv.Close()
}

// CallCount returns how many requests matched the given prefix.
func (s *APIStub) CallCount(prefix string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.Calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func (s *APIStub) record(call string) {
	s.mu.Lock()
	s.Calls = append(s.Calls, call)
	s.mu.Unlock()
}

func (s *APIStub) write(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, body)
}

// GeocodeOK builds a single-result OK geocode body.
func GeocodeOK(lat, lng float64) string {
	return fmt.Sprintf(`{"status":"OK","results":[{"geometry":{"location":{"lat":%f,"lng":%f}}}]}`, lat, lng)
}

// GeocodeStatus builds an empty geocode body with the given status.
func GeocodeStatus(status string) string {
	return fmt.Sprintf(`{"status":"%s","results":[]}`, status)
}

// PlacesOK builds a single-result OK places body.
func PlacesOK(name, vicinity string) string {
	return fmt.Sprintf(`{"status":"OK","results":[{"name":"%s","vicinity":"%s","place_id":"stub-place","geometry":{"location":{"lat":41.88,"lng":-87.62}}}]}`, name, vicinity)
}

// PlacesStatus builds an empty places body with the given status.
func PlacesStatus(status string) string {
	return fmt.Sprintf(`{"status":"%s","results":[]}`, status)
}

// DirectionsStatus builds an empty directions body with the given status.
func DirectionsStatus(status string) string {
	return fmt.Sprintf(`{"status":"%s","routes":[]}`, status)
}

// DirectionsSingleLeg builds a one-leg directions body with one step
// covering the whole distance.
func DirectionsSingleLeg(start, end, distanceText string, distanceM int, durationText string, durationS int) string {
	return fmt.Sprintf(`{"status":"OK","routes":[{"legs":[{
		"start_address":"%s","end_address":"%s",
		"distance":{"text":"%s","value":%d},
		"duration":{"text":"%s","value":%d},
		"steps":[{"html_instructions":"Head <b>north</b>","distance":{"text":"%s","value":%d},"duration":{"text":"%s","value":%d},"maneuver":""}]
	}]}]}`, start, end, distanceText, distanceM, durationText, durationS, distanceText, distanceM, durationText, durationS)
}

package integrationtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/wx-tools/pws-client/internal/model"
)

const (
	testAPIKey  = "test_api_key"
	testStation = "KCASANFR70"
)

// mockPWSServer serves canned vendor responses for the PWS endpoints.
// History endpoints are keyed by the `date` query parameter so range
// iterations can walk backward through fixture days.
type mockPWSServer struct {
	current      model.Record
	summaries    []model.Record
	dailyByDate  map[string][]model.Record
	hourlyByDate map[string][]model.Record
}

func (m *mockPWSServer) start() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/pws/observations/current", m.withAuth(func(w http.ResponseWriter, r *http.Request) {
		writeObservations(w, []model.Record{m.current})
	}))
	mux.HandleFunc("/pws/dailysummary/7day", m.withAuth(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, model.SummariesResponse{Summaries: m.summaries})
	}))
	mux.HandleFunc("/pws/observations/all/1day", m.withAuth(func(w http.ResponseWriter, r *http.Request) {
		writeObservations(w, m.allHourly())
	}))
	mux.HandleFunc("/pws/observations/hourly/7day", m.withAuth(func(w http.ResponseWriter, r *http.Request) {
		writeObservations(w, m.allHourly())
	}))
	mux.HandleFunc("/pws/history/daily", m.withAuth(func(w http.ResponseWriter, r *http.Request) {
		writeObservations(w, m.dailyByDate[r.URL.Query().Get("date")])
	}))
	mux.HandleFunc("/pws/history/hourly", m.withAuth(func(w http.ResponseWriter, r *http.Request) {
		writeObservations(w, m.hourlyByDate[r.URL.Query().Get("date")])
	}))
	return httptest.NewServer(mux)
}

func (m *mockPWSServer) allHourly() []model.Record {
	var all []model.Record
	for _, records := range m.hourlyByDate {
		all = append(all, records...)
	}
	return all
}

// withAuth rejects requests without the expected apiKey, mirroring the
// vendor's static-key check.
func (m *mockPWSServer) withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("apiKey") != testAPIKey {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func writeObservations(w http.ResponseWriter, records []model.Record) {
	if records == nil {
		records = []model.Record{}
	}
	writeJSON(w, model.ObservationsResponse{Observations: records})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		panic(err)
	}
}

func imperialRecord(obsTimeUtc string, temp float64) model.Record {
	return model.Record{
		"stationID":  testStation,
		"obsTimeUtc": obsTimeUtc,
		"imperial":   map[string]any{"temp": temp},
	}
}

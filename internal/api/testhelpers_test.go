// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/nextbinge/internal/catalog"
	"github.com/tomtom215/nextbinge/internal/config"
	"github.com/tomtom215/nextbinge/internal/metadata"
	"github.com/tomtom215/nextbinge/internal/recommend"
)

// testResponse mirrors APIResponse with a raw data payload.
type testResponse struct {
	Status   string          `json:"status"`
	Data     json.RawMessage `json:"data"`
	Metadata Metadata        `json:"metadata"`
	Error    *APIError       `json:"error"`
}

// newTestRecommender returns a four movie catalog:
//
//	0 Toy Story      862   Animation Comedy  1995
//	1 Heat           949   Action Crime      1995
//	2 The Lion King  8587  Animation Drama   1994
//	3 Heat           999   Drama             1986
func newTestRecommender(t *testing.T) *recommend.Recommender {
	t.Helper()
	items := []catalog.Item{
		catalog.NewItem("Toy Story", "862", "Animation Comedy", catalog.Year(1995)),
		catalog.NewItem("Heat", "949", "Action Crime", catalog.Year(1995)),
		catalog.NewItem("The Lion King", "8587", "Animation Drama", catalog.Year(1994)),
		catalog.NewItem("Heat", "999", "Drama", catalog.Year(1986)),
	}
	m, err := catalog.MatrixFromRows([][]float32{
		{1.0, 0.2, 0.9, 0.1},
		{0.2, 1.0, 0.3, 0.6},
		{0.9, 0.3, 1.0, 0.4},
		{0.1, 0.6, 0.4, 1.0},
	})
	if err != nil {
		t.Fatalf("MatrixFromRows: %v", err)
	}
	c, err := catalog.New(items, m)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return recommend.New(c)
}

func testCatalogConfig() config.CatalogConfig {
	return config.CatalogConfig{KidsGenre: "Animation", DefaultLimit: 10, MaxLimit: 50}
}

// newTestRouter builds the full chi stack with rate limiting off.
func newTestRouter(t *testing.T, h *Handler) http.Handler {
	t.Helper()
	mw := NewChiMiddlewareFromConfig(&config.SecurityConfig{
		CORSOrigins:       []string{"*"},
		RateLimitDisabled: true,
	})
	return NewRouter(h, mw).SetupChi()
}

// newTMDBServer fakes the handful of TMDB routes the handlers touch.
func newTMDBServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/movie/862", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":862,"title":"Toy Story","overview":"Toys.","vote_average":7.9,"poster_path":"/toy.jpg","imdb_id":"tt0114709"}`))
	})
	mux.HandleFunc("/movie/862/credits", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"cast":[{"name":"Tom Hanks"},{"name":"Tim Allen"}]}`))
	})
	mux.HandleFunc("/movie/862/videos", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[{"key":"abc","site":"YouTube","type":"Trailer"}]}`))
	})
	mux.HandleFunc("/movie/949/credits", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"cast":[{"name":"Al Pacino"},{"name":"Robert De Niro"},{"name":"Tom Sizemore"}]}`))
	})
	mux.HandleFunc("/movie/8587", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":8587,"title":"The Lion King"}`))
	})
	mux.HandleFunc("/movie/8587/credits", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"cast":[]}`))
	})
	mux.HandleFunc("/movie/8587/videos", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	})
	mux.HandleFunc("/movie/500", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/trending/movie/week", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[{"id":1,"title":"Hot","poster_path":"/hot.jpg"}]}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// newTestMetadata wires a metadata service against the fake server.
func newTestMetadata(t *testing.T, baseURL string, breaker metadata.BreakerSettings) *metadata.Service {
	t.Helper()
	client, err := metadata.New("test-key", baseURL, "en-US")
	if err != nil {
		t.Fatalf("metadata.New: %v", err)
	}
	return metadata.NewService(metadata.NewBreakerClientWithSettings(client, breaker), nil, 2)
}

// doGet runs a GET through handler and decodes the envelope.
func doGet(t *testing.T, handler http.Handler, target string) (*httptest.ResponseRecorder, testResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var resp testResponse
	if rec.Header().Get("Content-Type") == "application/json" {
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode %s: %v\nbody: %s", target, err, rec.Body.String())
		}
	}
	return rec, resp
}

func decodeData(t *testing.T, resp testResponse, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(resp.Data, out); err != nil {
		t.Fatalf("decode data: %v\ndata: %s", err, resp.Data)
	}
}

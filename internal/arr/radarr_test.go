package arr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockArrServer creates a test server that simulates a Radarr/Sonarr API.
// Handlers are keyed by "METHOD /api/v3/path".
func mockArrServer(t *testing.T, apiKey string, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != apiKey {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if handler, ok := handlers[r.Method+" "+r.URL.Path]; ok {
			handler(w, r)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestRadarr_Movies(t *testing.T) {
	server := mockArrServer(t, "key", map[string]http.HandlerFunc{
		"GET /api/v3/movie": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, []Movie{
				{ID: 1, Title: "Alien", Year: 1979, TMDBID: 348, IMDBID: "tt0078748", Monitored: true, SizeOnDisk: 4 << 30},
				{ID: 2, Title: "Aliens", Year: 1986, TMDBID: 679, Monitored: false},
			})
		},
	})
	defer server.Close()

	radarr := NewRadarr(server.URL, "key")
	movies, err := radarr.Movies(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "Alien", movies[0].Title)
	assert.Equal(t, "tt0078748", movies[0].IMDBID)
	assert.Empty(t, movies[1].IMDBID, "absent external ids decode to zero values")
}

func TestRadarr_BadAPIKey(t *testing.T) {
	server := mockArrServer(t, "key", nil)
	defer server.Close()

	radarr := NewRadarr(server.URL, "wrong")
	_, err := radarr.Movies(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestRadarr_Update(t *testing.T) {
	var got Movie
	server := mockArrServer(t, "key", map[string]http.HandlerFunc{
		"PUT /api/v3/movie": func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			writeJSON(t, w, got)
		},
	})
	defer server.Close()

	radarr := NewRadarr(server.URL, "key")
	err := radarr.Update(context.Background(), Movie{ID: 7, Title: "Alien", Monitored: false})
	require.NoError(t, err)
	assert.Equal(t, 7, got.ID)
	assert.False(t, got.Monitored)
}

func TestRadarr_Delete(t *testing.T) {
	server := mockArrServer(t, "key", map[string]http.HandlerFunc{
		"DELETE /api/v3/movie/3": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "true", r.URL.Query().Get("deleteFiles"))
			assert.Equal(t, "false", r.URL.Query().Get("addImportExclusion"))
			w.WriteHeader(http.StatusOK)
		},
	})
	defer server.Close()

	radarr := NewRadarr(server.URL, "key")
	require.NoError(t, radarr.Delete(context.Background(), 3, true, false))
}

func TestRadarr_DeleteBulk(t *testing.T) {
	var body struct {
		MovieIDs           []int `json:"movieIds"`
		DeleteFiles        bool  `json:"deleteFiles"`
		AddImportExclusion bool  `json:"addImportExclusion"`
	}
	server := mockArrServer(t, "key", map[string]http.HandlerFunc{
		"DELETE /api/v3/movie/editor": func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			w.WriteHeader(http.StatusOK)
		},
	})
	defer server.Close()

	radarr := NewRadarr(server.URL, "key")
	require.NoError(t, radarr.DeleteBulk(context.Background(), []int{1, 2, 3}, true, true))
	assert.Equal(t, []int{1, 2, 3}, body.MovieIDs)
	assert.True(t, body.DeleteFiles)
	assert.True(t, body.AddImportExclusion)
}

func TestRadarr_DeleteBulkFailure(t *testing.T) {
	server := mockArrServer(t, "key", map[string]http.HandlerFunc{
		"DELETE /api/v3/movie/editor": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
	})
	defer server.Close()

	radarr := NewRadarr(server.URL, "key")
	err := radarr.DeleteBulk(context.Background(), []int{1, 2}, false, false)
	require.Error(t, err)
}

func TestRadarr_MovieFiles(t *testing.T) {
	server := mockArrServer(t, "key", map[string]http.HandlerFunc{
		"GET /api/v3/moviefile": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "5", r.URL.Query().Get("movieId"))
			writeJSON(t, w, []MovieFile{{ID: 11, MovieID: 5}})
		},
	})
	defer server.Close()

	radarr := NewRadarr(server.URL, "key")
	files, err := radarr.MovieFiles(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, 11, files[0].ID)
}

func TestRadarr_Lookup(t *testing.T) {
	server := mockArrServer(t, "key", map[string]http.HandlerFunc{
		"GET /api/v3/movie/lookup": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Alien", r.URL.Query().Get("term"))
			writeJSON(t, w, []Movie{{Title: "Alien", TMDBID: 348}})
		},
	})
	defer server.Close()

	radarr := NewRadarr(server.URL, "key")
	results, err := radarr.Lookup(context.Background(), "Alien")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 348, results[0].TMDBID)
}

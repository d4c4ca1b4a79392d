package arr

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSonarr_Series(t *testing.T) {
	server := mockArrServer(t, "key", map[string]http.HandlerFunc{
		"GET /api/v3/series": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, []Series{{
				ID: 1, Title: "The Expanse", TVDBID: 280619, Monitored: true, Ended: true,
				Seasons: []Season{
					{SeasonNumber: 1, Monitored: true, Statistics: SeasonStatistics{TotalEpisodeCount: 10, EpisodeFileCount: 10}},
					{SeasonNumber: 2, Monitored: false, Statistics: SeasonStatistics{TotalEpisodeCount: 13}},
				},
			}})
		},
	})
	defer server.Close()

	sonarr := NewSonarr(server.URL, "key")
	series, err := sonarr.Series(context.Background())
	require.NoError(t, err)
	require.Len(t, series, 1)
	require.Len(t, series[0].Seasons, 2)
	assert.Equal(t, 10, series[0].Seasons[0].Statistics.TotalEpisodeCount)

	season := series[0].SeasonByNumber(2)
	require.NotNil(t, season)
	assert.False(t, season.Monitored)
	assert.Nil(t, series[0].SeasonByNumber(9))
}

func TestSonarr_Episodes(t *testing.T) {
	server := mockArrServer(t, "key", map[string]http.HandlerFunc{
		"GET /api/v3/episode": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "1", r.URL.Query().Get("seriesId"))
			assert.Equal(t, "2", r.URL.Query().Get("seasonNumber"))
			writeJSON(t, w, []Episode{
				{ID: 100, SeriesID: 1, SeasonNumber: 2, EpisodeNumber: 1, EpisodeFileID: 900, Monitored: true, HasFile: true},
				{ID: 101, SeriesID: 1, SeasonNumber: 2, EpisodeNumber: 2, Monitored: false},
			})
		},
	})
	defer server.Close()

	sonarr := NewSonarr(server.URL, "key")
	season := 2
	episodes, err := sonarr.Episodes(context.Background(), 1, &season)
	require.NoError(t, err)
	require.Len(t, episodes, 2)
	assert.Equal(t, 900, episodes[0].EpisodeFileID)
	assert.Zero(t, episodes[1].EpisodeFileID, "episode without file has zero file id")
}

func TestSonarr_SetEpisodesMonitored(t *testing.T) {
	var body struct {
		EpisodeIDs []int `json:"episodeIds"`
		Monitored  bool  `json:"monitored"`
	}
	server := mockArrServer(t, "key", map[string]http.HandlerFunc{
		"PUT /api/v3/episode/monitor": func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			w.WriteHeader(http.StatusAccepted)
		},
	})
	defer server.Close()

	sonarr := NewSonarr(server.URL, "key")
	require.NoError(t, sonarr.SetEpisodesMonitored(context.Background(), []int{100, 101}, false))
	assert.Equal(t, []int{100, 101}, body.EpisodeIDs)
	assert.False(t, body.Monitored)
}

func TestSonarr_SetEpisodesMonitoredEmpty(t *testing.T) {
	// No request must be made for an empty id list.
	sonarr := NewSonarr("http://127.0.0.1:1", "key")
	require.NoError(t, sonarr.SetEpisodesMonitored(context.Background(), nil, true))
}

func TestSonarr_SetSeasonsMonitored(t *testing.T) {
	var got Series
	server := mockArrServer(t, "key", map[string]http.HandlerFunc{
		"PUT /api/v3/series/1": func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			writeJSON(t, w, got)
		},
	})
	defer server.Close()

	series := Series{
		ID: 1, Title: "The Expanse", Monitored: true,
		Seasons: []Season{
			{SeasonNumber: 1, Monitored: true},
			{SeasonNumber: 2, Monitored: true},
			{SeasonNumber: 3, Monitored: true},
		},
	}

	sonarr := NewSonarr(server.URL, "key")
	require.NoError(t, sonarr.SetSeasonsMonitored(context.Background(), series, []int{1, 3}, false))

	require.Len(t, got.Seasons, 3)
	assert.False(t, got.Seasons[0].Monitored)
	assert.True(t, got.Seasons[1].Monitored, "unlisted season keeps its flag")
	assert.False(t, got.Seasons[2].Monitored)

	// The caller's slice must be left alone.
	for _, s := range series.Seasons {
		assert.True(t, s.Monitored)
	}
}

func TestSonarr_Delete(t *testing.T) {
	server := mockArrServer(t, "key", map[string]http.HandlerFunc{
		"DELETE /api/v3/series/4": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "true", r.URL.Query().Get("deleteFiles"))
			assert.Equal(t, "true", r.URL.Query().Get("addImportListExclusion"))
			w.WriteHeader(http.StatusOK)
		},
	})
	defer server.Close()

	sonarr := NewSonarr(server.URL, "key")
	require.NoError(t, sonarr.Delete(context.Background(), 4, true, true))
}

func TestSonarr_DeleteEpisodeFile(t *testing.T) {
	server := mockArrServer(t, "key", map[string]http.HandlerFunc{
		"DELETE /api/v3/episodefile/77": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	})
	defer server.Close()

	sonarr := NewSonarr(server.URL, "key")
	require.NoError(t, sonarr.DeleteEpisodeFile(context.Background(), 77))
}

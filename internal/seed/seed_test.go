package seed

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/cullarr/internal/arr"
	"github.com/vmunix/cullarr/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeTagAPI struct {
	tags []arr.Tag
}

func (f *fakeTagAPI) Tags(context.Context) ([]arr.Tag, error) {
	return f.tags, nil
}

func (f *fakeTagAPI) CreateTag(_ context.Context, label string) (arr.Tag, error) {
	t := arr.Tag{ID: 100 + len(f.tags), Label: label}
	f.tags = append(f.tags, t)
	return t, nil
}

type fakeMovieService struct {
	lookup  []arr.Movie
	added   []arr.Movie
	updated []arr.Movie
}

func (f *fakeMovieService) Lookup(context.Context, string) ([]arr.Movie, error) {
	return f.lookup, nil
}

func (f *fakeMovieService) Add(_ context.Context, m arr.Movie) (*arr.Movie, error) {
	m.ID = 50 + len(f.added)
	f.added = append(f.added, m)
	return &m, nil
}

func (f *fakeMovieService) Update(_ context.Context, m arr.Movie) error {
	f.updated = append(f.updated, m)
	return nil
}

func (f *fakeMovieService) QualityProfiles(context.Context) ([]arr.QualityProfile, error) {
	return []arr.QualityProfile{{ID: 4, Name: "HD-1080p"}}, nil
}

type fakeSeriesService struct {
	lookup       []arr.Series
	added        []arr.Series
	updated      []arr.Series
	episodes     map[int][]arr.Episode // seasonNumber -> episodes
	episodeCalls int
	emptyPolls   int // initial Episodes calls that return nothing

	seasonCalls []seasonCall
	episodeSets []episodeSet
}

type seasonCall struct {
	seasons   []int
	monitored bool
}

type episodeSet struct {
	ids       []int
	monitored bool
}

func (f *fakeSeriesService) Lookup(context.Context, string) ([]arr.Series, error) {
	return f.lookup, nil
}

func (f *fakeSeriesService) Add(_ context.Context, s arr.Series) (*arr.Series, error) {
	s.ID = 70 + len(f.added)
	f.added = append(f.added, s)
	return &s, nil
}

func (f *fakeSeriesService) Update(_ context.Context, s arr.Series) error {
	f.updated = append(f.updated, s)
	return nil
}

func (f *fakeSeriesService) QualityProfiles(context.Context) ([]arr.QualityProfile, error) {
	return []arr.QualityProfile{{ID: 4, Name: "HD-1080p"}}, nil
}

func (f *fakeSeriesService) Episodes(_ context.Context, _ int, season *int) ([]arr.Episode, error) {
	f.episodeCalls++
	if f.episodeCalls <= f.emptyPolls {
		return nil, nil
	}
	if season == nil {
		var all []arr.Episode
		for _, eps := range f.episodes {
			all = append(all, eps...)
		}
		return all, nil
	}
	return f.episodes[*season], nil
}

func (f *fakeSeriesService) SetEpisodesMonitored(_ context.Context, ids []int, monitored bool) error {
	f.episodeSets = append(f.episodeSets, episodeSet{ids: ids, monitored: monitored})
	return nil
}

func (f *fakeSeriesService) SetSeasonsMonitored(_ context.Context, _ arr.Series, seasons []int, monitored bool) error {
	f.seasonCalls = append(f.seasonCalls, seasonCall{seasons: seasons, monitored: monitored})
	return nil
}

func loadSeedConfig(t *testing.T, body string) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	return cfg
}

func TestSeedMoviesAddsNew(t *testing.T) {
	cfg := loadSeedConfig(t, `
[radarr]
url = "http://localhost:7878"
api_key = "k"
root_folder = "/movies"

[[radarr.movies]]
title = "Heat"
monitored = true
tags = ["classic"]
`)

	movies := &fakeMovieService{lookup: []arr.Movie{{Title: "Heat", TMDBID: 949}}}
	tags := arr.NewTagCache(&fakeTagAPI{})
	s := New(movies, nil, tags, nil, testLogger())

	result, err := s.Movies(context.Background(), cfg.Radarr.Movies, cfg.Radarr.RootFolder)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Added)
	assert.Zero(t, result.Skipped)

	require.Len(t, movies.added, 1)
	added := movies.added[0]
	assert.Equal(t, 4, added.QualityProfileID)
	assert.Equal(t, "/movies", added.RootFolderPath)
	assert.True(t, added.Monitored)
	assert.Equal(t, []int{100}, added.Tags)
	require.NotNil(t, added.AddOptions)
	assert.True(t, added.AddOptions.SearchForMovie)
}

func TestSeedMoviesUpdatesExisting(t *testing.T) {
	movies := &fakeMovieService{lookup: []arr.Movie{{ID: 7, Title: "Heat", Monitored: true, Tags: []int{3}}}}
	tags := arr.NewTagCache(&fakeTagAPI{})
	s := New(movies, nil, tags, nil, testLogger())

	result, err := s.Movies(context.Background(), []config.SeedEntry{{Title: "Heat", Monitored: false}}, "/movies")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)

	require.Len(t, movies.updated, 1)
	assert.False(t, movies.updated[0].Monitored)
	assert.Equal(t, []int{3}, movies.updated[0].Tags)
	assert.Empty(t, movies.added)
}

func TestSeedMoviesLookupMissSkips(t *testing.T) {
	movies := &fakeMovieService{}
	s := New(movies, nil, arr.NewTagCache(&fakeTagAPI{}), nil, testLogger())

	result, err := s.Movies(context.Background(), []config.SeedEntry{{Title: "Not A Real Film"}}, "/movies")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Skipped)
	assert.Zero(t, result.Added)
}

func TestSeedSeriesAdvancedMonitored(t *testing.T) {
	cfg := loadSeedConfig(t, `
[sonarr]
url = "http://localhost:8989"
api_key = "k"
root_folder = "/tv"

[[sonarr.series]]
title = "Dark"
monitored = true

[sonarr.series.advanced_monitored]
"*" = false
"1" = [1, 2]
"2" = true
`)

	series := &fakeSeriesService{
		lookup: []arr.Series{{
			Title: "Dark",
			Seasons: []arr.Season{
				{SeasonNumber: 1},
				{SeasonNumber: 2},
				{SeasonNumber: 3},
			},
		}},
		episodes: map[int][]arr.Episode{
			1: {
				{ID: 11, SeasonNumber: 1, EpisodeNumber: 1},
				{ID: 12, SeasonNumber: 1, EpisodeNumber: 2},
				{ID: 13, SeasonNumber: 1, EpisodeNumber: 3},
			},
		},
	}
	s := New(nil, series, nil, arr.NewTagCache(&fakeTagAPI{}), testLogger())

	result, err := s.Series(context.Background(), cfg.Sonarr.Series, cfg.Sonarr.RootFolder)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Added)

	// Seasons 1 (episode override) and 2 (true) are monitored; season 3
	// falls to the "*" wildcard and is unmonitored.
	require.Len(t, series.seasonCalls, 2)
	assert.Equal(t, seasonCall{seasons: []int{1, 2}, monitored: true}, series.seasonCalls[0])
	assert.Equal(t, seasonCall{seasons: []int{3}, monitored: false}, series.seasonCalls[1])

	// Season 1: episodes 1 and 2 monitored, episode 3 not.
	require.Len(t, series.episodeSets, 2)
	assert.Equal(t, episodeSet{ids: []int{11, 12}, monitored: true}, series.episodeSets[0])
	assert.Equal(t, episodeSet{ids: []int{13}, monitored: false}, series.episodeSets[1])
}

func TestSeedSeriesPollsEmptyEpisodeList(t *testing.T) {
	cfg := loadSeedConfig(t, `
[sonarr]
url = "http://localhost:8989"
api_key = "k"

[[sonarr.series]]
title = "Dark"
monitored = true

[sonarr.series.advanced_monitored]
"1" = [1]
`)

	series := &fakeSeriesService{
		lookup: []arr.Series{{
			Title:   "Dark",
			Seasons: []arr.Season{{SeasonNumber: 1}},
		}},
		episodes: map[int][]arr.Episode{
			1: {{ID: 11, SeasonNumber: 1, EpisodeNumber: 1}},
		},
		emptyPolls: 1, // first fetch races the add and comes back empty
	}
	s := New(nil, series, nil, arr.NewTagCache(&fakeTagAPI{}), testLogger())

	result, err := s.Series(context.Background(), cfg.Sonarr.Series, "/tv")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 2, series.episodeCalls)
	require.Len(t, series.episodeSets, 1)
	assert.Equal(t, episodeSet{ids: []int{11}, monitored: true}, series.episodeSets[0])
}

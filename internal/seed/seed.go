// Package seed populates Radarr and Sonarr from the configured seed lists:
// lookup by title, add with the first quality profile, and apply per-season
// monitoring overrides.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/vmunix/cullarr/internal/arr"
	"github.com/vmunix/cullarr/internal/config"
)

// Episode metadata is not available immediately after a series add, so the
// first fetches may come back empty. Poll a few times before giving up.
const (
	episodePollAttempts = 5
	episodePollDelay    = time.Second
)

var errNoEpisodesYet = errors.New("episode list still empty")

// MovieService is the Radarr capability seeding needs.
type MovieService interface {
	Lookup(ctx context.Context, term string) ([]arr.Movie, error)
	Add(ctx context.Context, movie arr.Movie) (*arr.Movie, error)
	Update(ctx context.Context, movie arr.Movie) error
	QualityProfiles(ctx context.Context) ([]arr.QualityProfile, error)
}

// SeriesService is the Sonarr capability seeding needs.
type SeriesService interface {
	Lookup(ctx context.Context, term string) ([]arr.Series, error)
	Add(ctx context.Context, series arr.Series) (*arr.Series, error)
	Update(ctx context.Context, series arr.Series) error
	QualityProfiles(ctx context.Context) ([]arr.QualityProfile, error)
	Episodes(ctx context.Context, seriesID int, season *int) ([]arr.Episode, error)
	SetEpisodesMonitored(ctx context.Context, episodeIDs []int, monitored bool) error
	SetSeasonsMonitored(ctx context.Context, series arr.Series, seasons []int, monitored bool) error
}

// Result summarizes one seeding run.
type Result struct {
	Added   int
	Updated int
	Skipped int
}

// Seeder applies configured seed lists to the library services.
type Seeder struct {
	movies     MovieService
	series     SeriesService
	movieTags  *arr.TagCache
	seriesTags *arr.TagCache
	log        *slog.Logger
}

// New creates a seeder. Either service may be nil when not configured.
func New(movies MovieService, series SeriesService, movieTags, seriesTags *arr.TagCache, log *slog.Logger) *Seeder {
	if log == nil {
		log = slog.Default()
	}
	return &Seeder{
		movies:     movies,
		series:     series,
		movieTags:  movieTags,
		seriesTags: seriesTags,
		log:        log.With("component", "seed"),
	}
}

// Movies seeds the movie list. Entries that fail are logged and skipped.
func (s *Seeder) Movies(ctx context.Context, entries []config.SeedEntry, rootFolder string) (*Result, error) {
	result := &Result{}
	if len(entries) == 0 {
		return result, nil
	}

	profiles, err := s.movies.QualityProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("quality profiles: %w", err)
	}
	if len(profiles) == 0 {
		return nil, errors.New("no quality profiles configured")
	}

	for _, entry := range entries {
		if err := s.seedMovie(ctx, entry, profiles[0].ID, rootFolder, result); err != nil {
			s.log.Error("seeding movie failed", "title", entry.Title, "error", err)
			result.Skipped++
		}
	}
	return result, nil
}

func (s *Seeder) seedMovie(ctx context.Context, entry config.SeedEntry, profileID int, rootFolder string, result *Result) error {
	matches, err := s.movies.Lookup(ctx, entry.Title)
	if err != nil {
		return fmt.Errorf("lookup: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no lookup match for %q", entry.Title)
	}
	movie := matches[0]

	tagIDs, err := s.tagIDs(ctx, s.movieTags, entry.Tags)
	if err != nil {
		return err
	}

	if movie.ID != 0 {
		// Already in the library: reconcile monitored flag and tags.
		movie.Monitored = entry.Monitored
		movie.Tags = mergeTags(movie.Tags, tagIDs)
		if err := s.movies.Update(ctx, movie); err != nil {
			return fmt.Errorf("update: %w", err)
		}
		s.log.Info("updated movie", "title", movie.Title, "id", movie.ID)
		result.Updated++
		return nil
	}

	movie.QualityProfileID = profileID
	movie.RootFolderPath = rootFolder
	movie.Monitored = entry.Monitored
	movie.Tags = tagIDs
	movie.AddOptions = &arr.MovieAddOptions{SearchForMovie: entry.Monitored}

	added, err := s.movies.Add(ctx, movie)
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	s.log.Info("added movie", "title", added.Title, "id", added.ID)
	result.Added++
	return nil
}

// Series seeds the series list, then applies advanced monitoring overrides.
func (s *Seeder) Series(ctx context.Context, entries []config.SeedEntry, rootFolder string) (*Result, error) {
	result := &Result{}
	if len(entries) == 0 {
		return result, nil
	}

	profiles, err := s.series.QualityProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("quality profiles: %w", err)
	}
	if len(profiles) == 0 {
		return nil, errors.New("no quality profiles configured")
	}

	for _, entry := range entries {
		if err := s.seedSeries(ctx, entry, profiles[0].ID, rootFolder, result); err != nil {
			s.log.Error("seeding series failed", "title", entry.Title, "error", err)
			result.Skipped++
		}
	}
	return result, nil
}

func (s *Seeder) seedSeries(ctx context.Context, entry config.SeedEntry, profileID int, rootFolder string, result *Result) error {
	matches, err := s.series.Lookup(ctx, entry.Title)
	if err != nil {
		return fmt.Errorf("lookup: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no lookup match for %q", entry.Title)
	}
	series := matches[0]

	tagIDs, err := s.tagIDs(ctx, s.seriesTags, entry.Tags)
	if err != nil {
		return err
	}

	if series.ID != 0 {
		series.Monitored = entry.Monitored
		series.Tags = mergeTags(series.Tags, tagIDs)
		if err := s.series.Update(ctx, series); err != nil {
			return fmt.Errorf("update: %w", err)
		}
		s.log.Info("updated series", "title", series.Title, "id", series.ID)
		result.Updated++
		return s.applyOverrides(ctx, series, entry)
	}

	series.QualityProfileID = profileID
	series.RootFolderPath = rootFolder
	series.Monitored = entry.Monitored
	series.Tags = tagIDs
	series.AddOptions = &arr.SeriesAddOptions{SearchForMissingEpisodes: entry.Monitored}

	added, err := s.series.Add(ctx, series)
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	s.log.Info("added series", "title", added.Title, "id", added.ID)
	result.Added++
	return s.applyOverrides(ctx, *added, entry)
}

// applyOverrides enforces the entry's advanced_monitored map on a series.
// Seasons without an explicit override fall back to the "*" wildcard when
// one is present and are otherwise left alone.
func (s *Seeder) applyOverrides(ctx context.Context, series arr.Series, entry config.SeedEntry) error {
	if len(entry.AdvancedMonitored) == 0 {
		return nil
	}
	overrides, err := entry.Overrides()
	if err != nil {
		return err
	}
	wildcard, hasWildcard := overrides[config.WildcardSeason]

	var monitorSeasons, unmonitorSeasons []int
	var monitorEpisodes, unmonitorEpisodes []int

	for _, season := range series.Seasons {
		ov, ok := overrides[season.SeasonNumber]
		if !ok {
			if !hasWildcard {
				continue
			}
			ov = wildcard
		}

		if ov.Episodes == nil {
			if ov.Monitored {
				monitorSeasons = append(monitorSeasons, season.SeasonNumber)
			} else {
				unmonitorSeasons = append(unmonitorSeasons, season.SeasonNumber)
			}
			continue
		}

		// Episode-level override: keep the season monitored and split its
		// episodes between the listed set and the rest.
		monitorSeasons = append(monitorSeasons, season.SeasonNumber)
		episodes, err := s.pollEpisodes(ctx, series.ID, season.SeasonNumber)
		if err != nil {
			return fmt.Errorf("season %d episodes: %w", season.SeasonNumber, err)
		}
		listed := make(map[int]struct{}, len(ov.Episodes))
		for _, n := range ov.Episodes {
			listed[n] = struct{}{}
		}
		for _, ep := range episodes {
			if _, ok := listed[ep.EpisodeNumber]; ok {
				monitorEpisodes = append(monitorEpisodes, ep.ID)
			} else {
				unmonitorEpisodes = append(unmonitorEpisodes, ep.ID)
			}
		}
	}

	if len(monitorSeasons) > 0 {
		if err := s.series.SetSeasonsMonitored(ctx, series, monitorSeasons, true); err != nil {
			return fmt.Errorf("monitor seasons: %w", err)
		}
	}
	if len(unmonitorSeasons) > 0 {
		if err := s.series.SetSeasonsMonitored(ctx, series, unmonitorSeasons, false); err != nil {
			return fmt.Errorf("unmonitor seasons: %w", err)
		}
	}
	if len(monitorEpisodes) > 0 {
		if err := s.series.SetEpisodesMonitored(ctx, monitorEpisodes, true); err != nil {
			return fmt.Errorf("monitor episodes: %w", err)
		}
	}
	if len(unmonitorEpisodes) > 0 {
		if err := s.series.SetEpisodesMonitored(ctx, unmonitorEpisodes, false); err != nil {
			return fmt.Errorf("unmonitor episodes: %w", err)
		}
	}
	return nil
}

// pollEpisodes fetches a season's episode list, retrying while it is empty.
func (s *Seeder) pollEpisodes(ctx context.Context, seriesID, season int) ([]arr.Episode, error) {
	return retry.DoWithData(
		func() ([]arr.Episode, error) {
			episodes, err := s.series.Episodes(ctx, seriesID, &season)
			if err != nil {
				return nil, err
			}
			if len(episodes) == 0 {
				return nil, errNoEpisodesYet
			}
			return episodes, nil
		},
		retry.Context(ctx),
		retry.Attempts(episodePollAttempts),
		retry.Delay(episodePollDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
}

func (s *Seeder) tagIDs(ctx context.Context, cache *arr.TagCache, labels []string) ([]int, error) {
	if len(labels) == 0 {
		return nil, nil
	}
	ids, err := cache.GetOrCreate(ctx, labels)
	if err != nil {
		return nil, fmt.Errorf("resolve tags: %w", err)
	}
	return ids, nil
}

func mergeTags(existing, wanted []int) []int {
	seen := make(map[int]struct{}, len(existing))
	merged := existing
	for _, id := range existing {
		seen[id] = struct{}{}
	}
	for _, id := range wanted {
		if _, ok := seen[id]; !ok {
			merged = append(merged, id)
		}
	}
	return merged
}

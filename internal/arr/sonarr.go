package arr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Sonarr is a client for the Sonarr v3 API.
type Sonarr struct {
	client
}

// NewSonarr creates a Sonarr client.
func NewSonarr(baseURL, apiKey string, opts ...Option) *Sonarr {
	return &Sonarr{client: newClient(baseURL, apiKey, "sonarr", opts...)}
}

// Series lists all series in the library.
func (s *Sonarr) Series(ctx context.Context) ([]Series, error) {
	var series []Series
	if err := s.get(ctx, "/series", nil, &series); err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}
	return series, nil
}

// SeriesByID fetches one series by its Sonarr ID.
func (s *Sonarr) SeriesByID(ctx context.Context, id int) (*Series, error) {
	var series Series
	if err := s.get(ctx, "/series/"+strconv.Itoa(id), nil, &series); err != nil {
		return nil, fmt.Errorf("get series %d: %w", id, err)
	}
	return &series, nil
}

// Lookup searches Sonarr's metadata source for series matching term.
func (s *Sonarr) Lookup(ctx context.Context, term string) ([]Series, error) {
	query := url.Values{"term": []string{term}}
	var series []Series
	if err := s.get(ctx, "/series/lookup", query, &series); err != nil {
		return nil, fmt.Errorf("lookup %q: %w", term, err)
	}
	return series, nil
}

// Add adds a series to the library.
func (s *Sonarr) Add(ctx context.Context, series Series) (*Series, error) {
	var added Series
	if err := s.post(ctx, "/series", series, &added); err != nil {
		return nil, fmt.Errorf("add series %q: %w", series.Title, err)
	}
	return &added, nil
}

// Update replaces a series record, including its season monitored flags.
func (s *Sonarr) Update(ctx context.Context, series Series) error {
	if err := s.put(ctx, "/series/"+strconv.Itoa(series.ID), series, nil); err != nil {
		return fmt.Errorf("update series %d: %w", series.ID, err)
	}
	return nil
}

// Delete removes a series from the library.
func (s *Sonarr) Delete(ctx context.Context, id int, deleteFiles, addExclusion bool) error {
	query := url.Values{
		"deleteFiles":            []string{strconv.FormatBool(deleteFiles)},
		"addImportListExclusion": []string{strconv.FormatBool(addExclusion)},
	}
	if err := s.delete(ctx, "/series/"+strconv.Itoa(id), query); err != nil {
		return fmt.Errorf("delete series %d: %w", id, err)
	}
	return nil
}

// Episodes lists the episodes of a series, optionally restricted to one
// season.
func (s *Sonarr) Episodes(ctx context.Context, seriesID int, season *int) ([]Episode, error) {
	query := url.Values{"seriesId": []string{strconv.Itoa(seriesID)}}
	if season != nil {
		query.Set("seasonNumber", strconv.Itoa(*season))
	}
	var episodes []Episode
	if err := s.get(ctx, "/episode", query, &episodes); err != nil {
		return nil, fmt.Errorf("list episodes for series %d: %w", seriesID, err)
	}
	return episodes, nil
}

// SetEpisodesMonitored flips the monitored flag on a set of episodes.
func (s *Sonarr) SetEpisodesMonitored(ctx context.Context, episodeIDs []int, monitored bool) error {
	if len(episodeIDs) == 0 {
		return nil
	}
	body := map[string]any{
		"episodeIds": episodeIDs,
		"monitored":  monitored,
	}
	if err := s.put(ctx, "/episode/monitor", body, nil); err != nil {
		return fmt.Errorf("set %d episodes monitored=%t: %w", len(episodeIDs), monitored, err)
	}
	return nil
}

// SetSeasonsMonitored flips the monitored flag on the listed seasons by
// rewriting the series record. Sonarr has no season-level endpoint; the
// season flags live on the series object.
func (s *Sonarr) SetSeasonsMonitored(ctx context.Context, series Series, seasons []int, monitored bool) error {
	if len(seasons) == 0 {
		return nil
	}
	wanted := make(map[int]bool, len(seasons))
	for _, n := range seasons {
		wanted[n] = true
	}
	// Edit a copy; the caller's Seasons slice shares its backing array with
	// the by-value series argument.
	edited := make([]Season, len(series.Seasons))
	copy(edited, series.Seasons)
	for i := range edited {
		if wanted[edited[i].SeasonNumber] {
			edited[i].Monitored = monitored
		}
	}
	series.Seasons = edited
	return s.Update(ctx, series)
}

// DeleteEpisodeFile removes one episode file from disk.
func (s *Sonarr) DeleteEpisodeFile(ctx context.Context, fileID int) error {
	if err := s.delete(ctx, "/episodefile/"+strconv.Itoa(fileID), nil); err != nil {
		return fmt.Errorf("delete episode file %d: %w", fileID, err)
	}
	return nil
}

// Tags lists all tags known to Sonarr.
func (s *Sonarr) Tags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	if err := s.get(ctx, "/tag", nil, &tags); err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

// CreateTag creates a tag with the given label.
func (s *Sonarr) CreateTag(ctx context.Context, label string) (Tag, error) {
	var tag Tag
	if err := s.post(ctx, "/tag", map[string]string{"label": label}, &tag); err != nil {
		return Tag{}, fmt.Errorf("create tag %q: %w", label, err)
	}
	return tag, nil
}

// QualityProfiles lists the configured quality profiles.
func (s *Sonarr) QualityProfiles(ctx context.Context) ([]QualityProfile, error) {
	var profiles []QualityProfile
	if err := s.get(ctx, "/qualityprofile", nil, &profiles); err != nil {
		return nil, fmt.Errorf("list quality profiles: %w", err)
	}
	return profiles, nil
}

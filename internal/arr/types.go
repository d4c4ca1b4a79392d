package arr

// Tag is a user-defined label on a library entry.
type Tag struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

// QualityProfile identifies a configured quality profile.
type QualityProfile struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Movie is a Radarr library entry. External identifiers may be absent:
// IMDBID empty, TMDBID zero.
type Movie struct {
	ID                  int              `json:"id,omitempty"`
	Title               string           `json:"title"`
	Year                int              `json:"year,omitempty"`
	TMDBID              int              `json:"tmdbId,omitempty"`
	IMDBID              string           `json:"imdbId,omitempty"`
	Monitored           bool             `json:"monitored"`
	HasFile             bool             `json:"hasFile,omitempty"`
	SizeOnDisk          int64            `json:"sizeOnDisk,omitempty"`
	QualityProfileID    int              `json:"qualityProfileId,omitempty"`
	MinimumAvailability string           `json:"minimumAvailability,omitempty"`
	Path                string           `json:"path,omitempty"`
	RootFolderPath      string           `json:"rootFolderPath,omitempty"`
	TitleSlug           string           `json:"titleSlug,omitempty"`
	Tags                []int            `json:"tags,omitempty"`
	AddOptions          *MovieAddOptions `json:"addOptions,omitempty"`
}

// MovieAddOptions controls Radarr behavior when adding a movie.
type MovieAddOptions struct {
	SearchForMovie bool `json:"searchForMovie"`
}

// MovieFile is one file on disk belonging to a movie.
type MovieFile struct {
	ID           int    `json:"id"`
	MovieID      int    `json:"movieId"`
	RelativePath string `json:"relativePath,omitempty"`
	Size         int64  `json:"size,omitempty"`
}

// Series is a Sonarr library entry.
type Series struct {
	ID               int               `json:"id,omitempty"`
	Title            string            `json:"title"`
	Year             int               `json:"year,omitempty"`
	TVDBID           int               `json:"tvdbId,omitempty"`
	IMDBID           string            `json:"imdbId,omitempty"`
	Monitored        bool              `json:"monitored"`
	Ended            bool              `json:"ended,omitempty"`
	QualityProfileID int               `json:"qualityProfileId,omitempty"`
	Path             string            `json:"path,omitempty"`
	RootFolderPath   string            `json:"rootFolderPath,omitempty"`
	TitleSlug        string            `json:"titleSlug,omitempty"`
	Tags             []int             `json:"tags,omitempty"`
	Seasons          []Season          `json:"seasons,omitempty"`
	Statistics       *SeriesStatistics `json:"statistics,omitempty"`
	AddOptions       *SeriesAddOptions `json:"addOptions,omitempty"`
}

// SeriesAddOptions controls Sonarr behavior when adding a series.
type SeriesAddOptions struct {
	SearchForMissingEpisodes bool `json:"searchForMissingEpisodes"`
}

// SeriesStatistics is the aggregate disk state of a series.
type SeriesStatistics struct {
	SizeOnDisk       int64 `json:"sizeOnDisk"`
	EpisodeFileCount int   `json:"episodeFileCount"`
}

// Season is one season within a series. Season 0 is reserved for specials.
type Season struct {
	SeasonNumber int              `json:"seasonNumber"`
	Monitored    bool             `json:"monitored"`
	Statistics   SeasonStatistics `json:"statistics,omitempty"`
}

// SeasonStatistics carries the library's episode bookkeeping for a season.
// TotalEpisodeCount is authoritative for season-level aggregation decisions.
type SeasonStatistics struct {
	TotalEpisodeCount int   `json:"totalEpisodeCount"`
	EpisodeFileCount  int   `json:"episodeFileCount"`
	SizeOnDisk        int64 `json:"sizeOnDisk"`
}

// Episode is one episode as known to Sonarr. EpisodeFileID is zero when no
// file exists on disk.
type Episode struct {
	ID            int  `json:"id"`
	SeriesID      int  `json:"seriesId"`
	SeasonNumber  int  `json:"seasonNumber"`
	EpisodeNumber int  `json:"episodeNumber"`
	EpisodeFileID int  `json:"episodeFileId,omitempty"`
	Monitored     bool `json:"monitored"`
	HasFile       bool `json:"hasFile"`
}

// SizeOnDisk returns the series size, tolerating a missing statistics block.
func (s *Series) SizeOnDisk() int64 {
	if s.Statistics == nil {
		return 0
	}
	return s.Statistics.SizeOnDisk
}

// SeasonByNumber returns the season record with the given number, or nil.
func (s *Series) SeasonByNumber(n int) *Season {
	for i := range s.Seasons {
		if s.Seasons[i].SeasonNumber == n {
			return &s.Seasons[i]
		}
	}
	return nil
}

// Package reconcile compares a Radarr/Sonarr library against streaming
// availability and decides which entries to exclude or re-monitor.
package reconcile

import (
	"context"

	"github.com/vmunix/cullarr/internal/arr"
	"github.com/vmunix/cullarr/internal/availability"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// AvailabilityAPI is the streaming directory capability the engine needs.
type AvailabilityAPI interface {
	SearchMovies(ctx context.Context, title string, opts availability.SearchOptions) ([]availability.SearchResult, error)
	SearchShows(ctx context.Context, title string, opts availability.SearchOptions) ([]availability.SearchResult, error)
	MovieOffers(ctx context.Context, id string, providers []string, flatrateOnly bool) (availability.MovieOffers, error)
	ShowOffers(ctx context.Context, id string, providers []string, flatrateOnly bool) (availability.ShowOffers, error)
}

// IDBridge resolves a TVDB series id to a TMDB id. May be absent (nil) when
// no TMDB API key is configured.
type IDBridge interface {
	FindByTVDBID(ctx context.Context, tvdbID int) (int, error)
}

// MovieLibrary is the Radarr capability the engine and executor need.
type MovieLibrary interface {
	Movies(ctx context.Context) ([]arr.Movie, error)
	Update(ctx context.Context, movie arr.Movie) error
	Delete(ctx context.Context, id int, deleteFiles, addExclusion bool) error
	DeleteBulk(ctx context.Context, ids []int, deleteFiles, addExclusion bool) error
	MovieFiles(ctx context.Context, movieID int) ([]arr.MovieFile, error)
	DeleteMovieFile(ctx context.Context, fileID int) error
	Tags(ctx context.Context) ([]arr.Tag, error)
	CreateTag(ctx context.Context, label string) (arr.Tag, error)
}

// SeriesLibrary is the Sonarr capability the engine and executor need.
type SeriesLibrary interface {
	Series(ctx context.Context) ([]arr.Series, error)
	Episodes(ctx context.Context, seriesID int, season *int) ([]arr.Episode, error)
	Update(ctx context.Context, series arr.Series) error
	Delete(ctx context.Context, id int, deleteFiles, addExclusion bool) error
	SetEpisodesMonitored(ctx context.Context, episodeIDs []int, monitored bool) error
	SetSeasonsMonitored(ctx context.Context, series arr.Series, seasons []int, monitored bool) error
	DeleteEpisodeFile(ctx context.Context, fileID int) error
	Tags(ctx context.Context) ([]arr.Tag, error)
	CreateTag(ctx context.Context, label string) (arr.Tag, error)
}

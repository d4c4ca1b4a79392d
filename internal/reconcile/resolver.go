package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vmunix/cullarr/internal/arr"
	"github.com/vmunix/cullarr/internal/availability"
	"github.com/vmunix/cullarr/internal/tmdb"
)

// ErrUnresolved marks a library entry whose identity could not be matched in
// the streaming directory. It is a normal skip, not a fault.
var ErrUnresolved = errors.New("no directory match for entry")

// fastSearchLimit is the tighter result window used when fast search is on.
const fastSearchLimit = 3

// Resolver matches library entries to their streaming directory identity.
type Resolver struct {
	dir    AvailabilityAPI
	bridge IDBridge // nil when no TMDB key is configured

	// fast narrows the identity search with the entry's release year and
	// the configured provider allow-list. It only shrinks the candidate
	// window; the matching rules are the same either way.
	fast      bool
	providers []string

	log *slog.Logger
}

// NewResolver creates a resolver. bridge may be nil; TVDB fallback is then
// skipped. providers is the short-name allow-list used only when fast is set.
func NewResolver(dir AvailabilityAPI, bridge IDBridge, fast bool, providers []string, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{
		dir:       dir,
		bridge:    bridge,
		fast:      fast,
		providers: providers,
		log:       log.With("component", "resolver"),
	}
}

func (r *Resolver) searchOptions(year int) availability.SearchOptions {
	if !r.fast {
		return availability.SearchOptions{}
	}
	opts := availability.SearchOptions{
		Limit:     fastSearchLimit,
		Providers: r.providers,
	}
	if year > 0 {
		opts.Year = &year
	}
	return opts
}

// ResolveMovie matches a Radarr movie against the directory by IMDB id or
// TMDB id. A movie carrying neither id is unresolvable without any network
// call.
func (r *Resolver) ResolveMovie(ctx context.Context, movie arr.Movie) (*availability.SearchResult, error) {
	if movie.IMDBID == "" && movie.TMDBID == 0 {
		return nil, fmt.Errorf("movie %q has no external ids: %w", movie.Title, ErrUnresolved)
	}

	results, err := r.dir.SearchMovies(ctx, movie.Title, r.searchOptions(movie.Year))
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", movie.Title, err)
	}

	for i, res := range results {
		if movie.IMDBID != "" && res.IMDBID == movie.IMDBID {
			return &results[i], nil
		}
		if movie.TMDBID != 0 && res.TMDBID != nil && *res.TMDBID == movie.TMDBID {
			return &results[i], nil
		}
	}

	r.log.Debug("movie not found in directory", "title", movie.Title, "imdb_id", movie.IMDBID, "tmdb_id", movie.TMDBID)
	return nil, fmt.Errorf("movie %q: %w", movie.Title, ErrUnresolved)
}

// ResolveSeries matches a Sonarr series by IMDB id, falling back to bridging
// its TVDB id to a TMDB id when the direct match misses.
func (r *Resolver) ResolveSeries(ctx context.Context, series arr.Series) (*availability.SearchResult, error) {
	if series.IMDBID == "" && series.TVDBID == 0 {
		return nil, fmt.Errorf("series %q has no external ids: %w", series.Title, ErrUnresolved)
	}

	results, err := r.dir.SearchShows(ctx, series.Title, r.searchOptions(series.Year))
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", series.Title, err)
	}

	if series.IMDBID != "" {
		for i, res := range results {
			if res.IMDBID == series.IMDBID {
				return &results[i], nil
			}
		}
	}

	if series.TVDBID != 0 && r.bridge != nil {
		tmdbID, err := r.bridge.FindByTVDBID(ctx, series.TVDBID)
		switch {
		case errors.Is(err, tmdb.ErrNotFound):
			// fall through to unresolved
		case err != nil:
			return nil, fmt.Errorf("bridge tvdb id %d: %w", series.TVDBID, err)
		default:
			for i, res := range results {
				if res.TMDBID != nil && *res.TMDBID == tmdbID {
					return &results[i], nil
				}
			}
		}
	}

	r.log.Debug("series not found in directory", "title", series.Title, "imdb_id", series.IMDBID, "tvdb_id", series.TVDBID)
	return nil, fmt.Errorf("series %q: %w", series.Title, ErrUnresolved)
}

package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/cullarr/internal/arr"
	"github.com/vmunix/cullarr/internal/providers"
)

// resolvePoolSize bounds concurrent identity/offer lookups per run.
const resolvePoolSize = 4

// Engine walks a library, resolves each entry against the streaming
// directory and produces decisions. Per-entry failures are logged skips;
// only listing the library itself can fail a run.
type Engine struct {
	resolver *Resolver
	dir      AvailabilityAPI
	movies   MovieLibrary
	series   SeriesLibrary
	catalog  providers.Set

	flatrateOnly bool
	log          *slog.Logger
}

// EngineOptions configures a reconciliation engine. Movies and Series may
// each be nil when the corresponding service is not configured.
type EngineOptions struct {
	Resolver     *Resolver
	Availability AvailabilityAPI
	Movies       MovieLibrary
	Series       SeriesLibrary
	Catalog      providers.Set
	FlatrateOnly bool
	Logger       *slog.Logger
}

// NewEngine creates an engine.
func NewEngine(opts EngineOptions) *Engine {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		resolver:     opts.Resolver,
		dir:          opts.Availability,
		movies:       opts.Movies,
		series:       opts.Series,
		catalog:      opts.Catalog,
		flatrateOnly: opts.FlatrateOnly,
		log:          log.With("component", "engine"),
	}
}

// Movies reconciles the movie library. In exclude mode it returns movies
// streamable on a configured provider; in re-add mode, unmonitored movies
// streamable on none. Output is sorted by library id so repeated runs over
// one snapshot are identical.
func (e *Engine) Movies(ctx context.Context, mode Mode, filter *Filter) ([]MovieDecision, error) {
	all, err := e.movies.Movies(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}

	// Re-add only considers unmonitored movies. The predicate applies to a
	// copy so the caller's filter stays untouched.
	f := *filter
	if mode == ModeReAdd {
		unmonitored := false
		f.Monitored = &unmonitored
	}
	candidates := f.Movies(all)
	e.log.Info("reconciling movies", "mode", mode.String(), "candidates", len(candidates), "library", len(all))

	results := make([]*MovieDecision, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolvePoolSize)

	for i, movie := range candidates {
		g.Go(func() error {
			d, err := e.decideMovie(gctx, mode, movie)
			if err != nil {
				e.skip(movie.Title, err)
				return nil
			}
			results[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var decisions []MovieDecision
	for _, d := range results {
		if d != nil {
			decisions = append(decisions, *d)
		}
	}
	sort.Slice(decisions, func(i, j int) bool { return decisions[i].Movie.ID < decisions[j].Movie.ID })
	return decisions, nil
}

// decideMovie returns nil when the movie is not actionable in this mode.
func (e *Engine) decideMovie(ctx context.Context, mode Mode, movie arr.Movie) (*MovieDecision, error) {
	res, err := e.resolver.ResolveMovie(ctx, movie)
	if err != nil {
		return nil, err
	}

	offers, err := e.dir.MovieOffers(ctx, res.ID, e.catalog.ShortNames(), e.flatrateOnly)
	if err != nil {
		return nil, fmt.Errorf("offers for %q: %w", movie.Title, err)
	}

	matched := e.catalog.Filter(offers)
	switch mode {
	case ModeExclude:
		if len(matched) == 0 {
			return nil, nil
		}
		return &MovieDecision{Movie: movie, Providers: e.catalog.ClearNames(matched)}, nil
	default:
		if len(matched) > 0 {
			return nil, nil
		}
		return &MovieDecision{Movie: movie}, nil
	}
}

// Series reconciles the series library at episode granularity, promoting
// whole seasons where every episode qualifies.
func (e *Engine) Series(ctx context.Context, mode Mode, filter *Filter) ([]SeriesDecision, error) {
	all, err := e.series.Series(ctx)
	if err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}

	candidates := filter.Series(all)
	e.log.Info("reconciling series", "mode", mode.String(), "candidates", len(candidates), "library", len(all))

	results := make([]*SeriesDecision, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolvePoolSize)

	for i, series := range candidates {
		g.Go(func() error {
			d, err := e.decideSeries(gctx, mode, series)
			if err != nil {
				e.skip(series.Title, err)
				return nil
			}
			results[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var decisions []SeriesDecision
	for _, d := range results {
		if d != nil {
			decisions = append(decisions, *d)
		}
	}
	sort.Slice(decisions, func(i, j int) bool { return decisions[i].Series.ID < decisions[j].Series.ID })
	return decisions, nil
}

// decideSeries returns nil when nothing in the series is actionable.
func (e *Engine) decideSeries(ctx context.Context, mode Mode, series arr.Series) (*SeriesDecision, error) {
	res, err := e.resolver.ResolveSeries(ctx, series)
	if err != nil {
		return nil, err
	}

	offers, err := e.dir.ShowOffers(ctx, res.ID, e.catalog.ShortNames(), e.flatrateOnly)
	if err != nil {
		return nil, fmt.Errorf("offers for %q: %w", series.Title, err)
	}

	// An empty offer tree in re-add mode is no evidence the series left the
	// catalog; treat it like a failed lookup and skip the series.
	if mode == ModeReAdd && len(offers) == 0 {
		e.log.Debug("skipping series", "title", series.Title, "reason", "no offer data")
		return nil, nil
	}

	episodes, err := e.series.Episodes(ctx, series.ID, nil)
	if err != nil {
		return nil, fmt.Errorf("episodes for %q: %w", series.Title, err)
	}

	// Per-episode verdicts grouped by season.
	bySeason := make(map[int][]verdict)
	for _, ep := range episodes {
		matched := e.catalog.Filter(offers[ep.SeasonNumber][ep.EpisodeNumber])
		switch mode {
		case ModeExclude:
			if len(matched) == 0 {
				continue
			}
		default:
			if len(matched) > 0 {
				continue
			}
		}
		bySeason[ep.SeasonNumber] = append(bySeason[ep.SeasonNumber], verdict{
			episode:   ep,
			providers: e.catalog.ClearNames(matched),
		})
	}
	if len(bySeason) == 0 {
		return nil, nil
	}

	decision := &SeriesDecision{Series: series}

	seasonNumbers := make([]int, 0, len(bySeason))
	for n := range bySeason {
		seasonNumbers = append(seasonNumbers, n)
	}
	sort.Ints(seasonNumbers)

	promotable := 0
	for _, n := range seasonNumbers {
		verdicts := bySeason[n]
		if e.promotes(mode, series.SeasonByNumber(n), len(verdicts)) {
			decision.Seasons = append(decision.Seasons, SeasonDecision{
				SeasonNumber: n,
				Providers:    unionProviders(verdicts),
			})
			continue
		}
		for _, v := range verdicts {
			// Monitored episodes count toward promotion but need no
			// individual re-monitoring.
			if mode == ModeReAdd && v.episode.Monitored {
				continue
			}
			decision.Episodes = append(decision.Episodes, EpisodeDecision{
				Episode:   v.episode,
				Providers: v.providers,
			})
		}
	}
	if len(decision.Seasons) == 0 && len(decision.Episodes) == 0 {
		return nil, nil
	}
	for _, s := range series.Seasons {
		if s.Statistics.TotalEpisodeCount > 0 {
			promotable++
		}
	}
	decision.Complete = promotable > 0 && len(decision.Seasons) == promotable && len(decision.Episodes) == 0

	sort.Slice(decision.Episodes, func(i, j int) bool {
		a, b := decision.Episodes[i].Episode, decision.Episodes[j].Episode
		if a.SeasonNumber != b.SeasonNumber {
			return a.SeasonNumber < b.SeasonNumber
		}
		return a.EpisodeNumber < b.EpisodeNumber
	})
	return decision, nil
}

// promotes decides whether a season's episode verdicts cover the whole
// season. The library's TotalEpisodeCount is authoritative; the directory
// may know of episodes the library does not. Re-add additionally requires
// the season itself to be unmonitored: a monitored season keeps its
// episodes at episode granularity.
func (e *Engine) promotes(mode Mode, season *arr.Season, count int) bool {
	if season == nil || season.Statistics.TotalEpisodeCount == 0 {
		return false
	}
	if count < season.Statistics.TotalEpisodeCount {
		return false
	}
	if mode == ModeReAdd && season.Monitored {
		return false
	}
	return true
}

func (e *Engine) skip(title string, err error) {
	if errors.Is(err, ErrUnresolved) {
		e.log.Debug("skipping entry", "title", title, "reason", err)
		return
	}
	e.log.Warn("skipping entry", "title", title, "error", err)
}

// verdict is one episode's matched-provider outcome.
type verdict struct {
	episode   arr.Episode
	providers []string
}

func unionProviders(verdicts []verdict) []string {
	seen := make(map[string]struct{})
	for _, v := range verdicts {
		for _, p := range v.providers {
			seen[p] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for p := range seen {
		names = append(names, p)
	}
	sort.Strings(names)
	return names
}

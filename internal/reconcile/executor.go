package reconcile

import (
	"context"
	"fmt"
	"log/slog"
)

// Action is what exclusion does to a matched library entry.
type Action int

const (
	// ActionNotMonitored stops monitoring and optionally deletes files.
	ActionNotMonitored Action = iota
	// ActionDelete removes the entry from the library.
	ActionDelete
)

func (a Action) String() string {
	if a == ActionDelete {
		return "delete"
	}
	return "not-monitored"
}

// ParseAction parses a CLI action flag value.
func ParseAction(s string) (Action, error) {
	switch s {
	case "delete":
		return ActionDelete, nil
	case "not-monitored":
		return ActionNotMonitored, nil
	default:
		return 0, fmt.Errorf("unknown action %q (want delete or not-monitored)", s)
	}
}

// ApplyOptions controls how exclusion decisions are applied.
type ApplyOptions struct {
	Action       Action
	DeleteFiles  bool
	AddExclusion bool
}

// Executor applies decisions to the library. Every mutation is fault
// isolated: failures go into the Report and the batch continues.
type Executor struct {
	movies MovieLibrary
	series SeriesLibrary
	log    *slog.Logger
}

// NewExecutor creates an executor. movies and series may each be nil when
// the corresponding service is not configured.
func NewExecutor(movies MovieLibrary, series SeriesLibrary, log *slog.Logger) *Executor {
	if log == nil {
		log = slog.Default()
	}
	return &Executor{
		movies: movies,
		series: series,
		log:    log.With("component", "executor"),
	}
}

// ExcludeMovies applies movie exclusion decisions.
func (x *Executor) ExcludeMovies(ctx context.Context, decisions []MovieDecision, opts ApplyOptions) *Report {
	report := &Report{}
	if opts.Action == ActionDelete {
		x.deleteMovies(ctx, decisions, opts, report)
		return report
	}

	for _, d := range decisions {
		movie := d.Movie
		movie.Monitored = false
		if err := x.movies.Update(ctx, movie); err != nil {
			x.log.Error("unmonitor movie failed", "id", movie.ID, "title", movie.Title, "error", err)
			report.fail(movie.ID, "unmonitor movie", err)
			continue
		}
		report.Applied++

		if opts.DeleteFiles {
			x.deleteMovieFiles(ctx, movie.ID, report)
		}
	}
	return report
}

// deleteMovies removes movies in one bulk call, falling back to per-id
// deletes when the bulk endpoint fails so a single bad id cannot sink the
// whole batch.
func (x *Executor) deleteMovies(ctx context.Context, decisions []MovieDecision, opts ApplyOptions, report *Report) {
	ids := make([]int, 0, len(decisions))
	for _, d := range decisions {
		ids = append(ids, d.Movie.ID)
	}
	if len(ids) == 0 {
		return
	}

	err := x.movies.DeleteBulk(ctx, ids, opts.DeleteFiles, opts.AddExclusion)
	if err == nil {
		report.Applied += len(ids)
		return
	}
	x.log.Warn("bulk delete failed, retrying per movie", "count", len(ids), "error", err)

	for _, id := range ids {
		if err := x.movies.Delete(ctx, id, opts.DeleteFiles, opts.AddExclusion); err != nil {
			x.log.Error("delete movie failed", "id", id, "error", err)
			report.fail(id, "delete movie", err)
			continue
		}
		report.Applied++
	}
}

func (x *Executor) deleteMovieFiles(ctx context.Context, movieID int, report *Report) {
	files, err := x.movies.MovieFiles(ctx, movieID)
	if err != nil {
		x.log.Error("list movie files failed", "id", movieID, "error", err)
		report.fail(movieID, "list movie files", err)
		return
	}
	for _, f := range files {
		if err := x.movies.DeleteMovieFile(ctx, f.ID); err != nil {
			x.log.Error("delete movie file failed", "movie_id", movieID, "file_id", f.ID, "error", err)
			report.fail(movieID, "delete movie file", err)
		}
	}
}

// ReAddMovies restores monitoring on re-add decisions.
func (x *Executor) ReAddMovies(ctx context.Context, decisions []MovieDecision) *Report {
	report := &Report{}
	for _, d := range decisions {
		movie := d.Movie
		movie.Monitored = true
		if err := x.movies.Update(ctx, movie); err != nil {
			x.log.Error("re-monitor movie failed", "id", movie.ID, "title", movie.Title, "error", err)
			report.fail(movie.ID, "re-monitor movie", err)
			continue
		}
		report.Applied++
	}
	return report
}

// ExcludeSeries applies series exclusion decisions. A fully streamable,
// ended series is deleted outright under the delete action; everything else
// is unmonitored at season/episode granularity with optional file deletion.
func (x *Executor) ExcludeSeries(ctx context.Context, decisions []SeriesDecision, opts ApplyOptions) *Report {
	report := &Report{}
	for _, d := range decisions {
		if d.Complete && d.Series.Ended && opts.Action == ActionDelete {
			if err := x.series.Delete(ctx, d.Series.ID, opts.DeleteFiles, opts.AddExclusion); err != nil {
				x.log.Error("delete series failed", "id", d.Series.ID, "title", d.Series.Title, "error", err)
				report.fail(d.Series.ID, "delete series", err)
				continue
			}
			report.Applied++
			continue
		}
		x.unmonitorSeries(ctx, d, opts, report)
	}
	return report
}

func (x *Executor) unmonitorSeries(ctx context.Context, d SeriesDecision, opts ApplyOptions, report *Report) {
	if seasons := d.SeasonNumbers(); len(seasons) > 0 {
		if err := x.series.SetSeasonsMonitored(ctx, d.Series, seasons, false); err != nil {
			x.log.Error("unmonitor seasons failed", "id", d.Series.ID, "seasons", seasons, "error", err)
			report.fail(d.Series.ID, "unmonitor seasons", err)
		} else {
			report.Applied += len(seasons)
		}
	}

	if ids := d.AllEpisodeIDs(); len(ids) > 0 {
		if err := x.series.SetEpisodesMonitored(ctx, ids, false); err != nil {
			x.log.Error("unmonitor episodes failed", "id", d.Series.ID, "episodes", len(ids), "error", err)
			report.fail(d.Series.ID, "unmonitor episodes", err)
		} else {
			report.Applied += len(ids)
		}
	}

	if opts.DeleteFiles {
		x.deleteSeriesFiles(ctx, d, report)
	}
}

// deleteSeriesFiles removes the files behind a decision. Residual episodes
// carry their own file ids; promoted seasons need an episode fetch first.
func (x *Executor) deleteSeriesFiles(ctx context.Context, d SeriesDecision, report *Report) {
	fileIDs := make([]int, 0, len(d.Episodes))
	for _, e := range d.Episodes {
		if e.Episode.EpisodeFileID > 0 {
			fileIDs = append(fileIDs, e.Episode.EpisodeFileID)
		}
	}

	for _, s := range d.Seasons {
		episodes, err := x.series.Episodes(ctx, d.Series.ID, &s.SeasonNumber)
		if err != nil {
			x.log.Error("list season episodes failed", "id", d.Series.ID, "season", s.SeasonNumber, "error", err)
			report.fail(d.Series.ID, "list season episodes", err)
			continue
		}
		for _, ep := range episodes {
			if ep.EpisodeFileID > 0 {
				fileIDs = append(fileIDs, ep.EpisodeFileID)
			}
		}
	}

	for _, fileID := range fileIDs {
		if err := x.series.DeleteEpisodeFile(ctx, fileID); err != nil {
			x.log.Error("delete episode file failed", "series_id", d.Series.ID, "file_id", fileID, "error", err)
			report.fail(d.Series.ID, "delete episode file", err)
		}
	}
}

// ReAddSeries restores monitoring at the granularity of each decision.
func (x *Executor) ReAddSeries(ctx context.Context, decisions []SeriesDecision) *Report {
	report := &Report{}
	for _, d := range decisions {
		if d.Complete && !d.Series.Monitored {
			series := d.Series
			series.Monitored = true
			if err := x.series.Update(ctx, series); err != nil {
				x.log.Error("re-monitor series failed", "id", series.ID, "title", series.Title, "error", err)
				report.fail(series.ID, "re-monitor series", err)
			} else {
				report.Applied++
			}
		}

		if seasons := d.SeasonNumbers(); len(seasons) > 0 {
			if err := x.series.SetSeasonsMonitored(ctx, d.Series, seasons, true); err != nil {
				x.log.Error("re-monitor seasons failed", "id", d.Series.ID, "seasons", seasons, "error", err)
				report.fail(d.Series.ID, "re-monitor seasons", err)
			} else {
				report.Applied += len(seasons)
			}
		}

		if ids := d.AllEpisodeIDs(); len(ids) > 0 {
			if err := x.series.SetEpisodesMonitored(ctx, ids, true); err != nil {
				x.log.Error("re-monitor episodes failed", "id", d.Series.ID, "episodes", len(ids), "error", err)
				report.fail(d.Series.ID, "re-monitor episodes", err)
			} else {
				report.Applied += len(ids)
			}
		}
	}
	return report
}

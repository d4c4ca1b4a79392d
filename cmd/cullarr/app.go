package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vmunix/cullarr/internal/arr"
	"github.com/vmunix/cullarr/internal/availability"
	"github.com/vmunix/cullarr/internal/config"
	"github.com/vmunix/cullarr/internal/providers"
	"github.com/vmunix/cullarr/internal/reconcile"
	"github.com/vmunix/cullarr/internal/tmdb"
)

// app holds the wired-up clients for one command invocation.
type app struct {
	cfg     *config.Config
	log     *slog.Logger
	dir     *availability.Client
	catalog providers.Set
	radarr  *arr.Radarr
	sonarr  *arr.Sonarr
	bridge  *tmdb.Client
}

// newApp loads configuration and connects the streaming directory and the
// configured library services. A service missing from the config is skipped
// with a warning, not an error.
func newApp(ctx context.Context) (*app, error) {
	cfg, log, err := loadConfig()
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, log: log}

	a.dir = availability.New(availability.WithLogger(log))
	locales, err := a.dir.Locales(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch locales: %w", err)
	}
	locale := providers.ResolveLocale(cfg.General.Locale, locales)
	if err := a.dir.SetLocale(locale); err != nil {
		return nil, err
	}
	log.Debug("locale resolved", "configured", cfg.General.Locale, "resolved", locale)

	directory, err := a.dir.Providers(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch providers: %w", err)
	}
	catalog, unknown := providers.Resolve(cfg.General.Providers, directory)
	for _, name := range unknown {
		if suggestion := providers.Suggest(name, directory); suggestion != "" {
			log.Warn("unknown provider", "name", name, "did_you_mean", suggestion)
		} else {
			log.Warn("unknown provider", "name", name)
		}
	}
	a.catalog = catalog

	if cfg.Radarr != nil {
		a.radarr = arr.NewRadarr(cfg.Radarr.URL, cfg.Radarr.APIKey, arr.WithLogger(log))
	} else {
		log.Warn("radarr not configured, skipping movies")
	}
	if cfg.Sonarr != nil {
		a.sonarr = arr.NewSonarr(cfg.Sonarr.URL, cfg.Sonarr.APIKey, arr.WithLogger(log))
	} else {
		log.Warn("sonarr not configured, skipping series")
	}
	if cfg.TMDB.APIKey != "" {
		a.bridge = tmdb.New(cfg.TMDB.APIKey, tmdb.WithLogger(log))
	}

	return a, nil
}

// engine builds the reconciliation engine over the wired clients.
func (a *app) engine(flatrateOnly bool) *reconcile.Engine {
	resolver := reconcile.NewResolver(a.dir, a.idBridge(), a.cfg.General.FastSearch, a.catalog.ShortNames(), a.log)
	return reconcile.NewEngine(reconcile.EngineOptions{
		Resolver:     resolver,
		Availability: a.dir,
		Movies:       a.movieLibrary(),
		Series:       a.seriesLibrary(),
		Catalog:      a.catalog,
		FlatrateOnly: flatrateOnly,
		Logger:       a.log,
	})
}

func (a *app) executor() *reconcile.Executor {
	return reconcile.NewExecutor(a.movieLibrary(), a.seriesLibrary(), a.log)
}

// movieLibrary returns the Radarr client as an interface, keeping the nil
// check in one place. A typed nil pointer must not leak into the interface.
func (a *app) movieLibrary() reconcile.MovieLibrary {
	if a.radarr == nil {
		return nil
	}
	return a.radarr
}

func (a *app) seriesLibrary() reconcile.SeriesLibrary {
	if a.sonarr == nil {
		return nil
	}
	return a.sonarr
}

func (a *app) idBridge() reconcile.IDBridge {
	if a.bridge == nil {
		return nil
	}
	return a.bridge
}

// movieFilter builds the blacklist filter for the movie library.
func (a *app) movieFilter(ctx context.Context) (*reconcile.Filter, error) {
	return reconcile.NewFilter(ctx, a.cfg.Radarr.Exclude.Titles, a.cfg.Radarr.Exclude.Tags, arr.NewTagCache(a.radarr))
}

// seriesFilter builds the blacklist filter for the series library.
func (a *app) seriesFilter(ctx context.Context) (*reconcile.Filter, error) {
	return reconcile.NewFilter(ctx, a.cfg.Sonarr.Exclude.Titles, a.cfg.Sonarr.Exclude.Tags, arr.NewTagCache(a.sonarr))
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/cullarr/internal/arr"
	"github.com/vmunix/cullarr/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Add the configured movie and series lists to the libraries",
	Long: `Add the movies and series listed in the config file to Radarr and
Sonarr. Entries already in a library get their monitored flag and tags
reconciled. Series entries honor the advanced_monitored overrides.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	var movieTags, seriesTags *arr.TagCache
	if a.radarr != nil {
		movieTags = arr.NewTagCache(a.radarr)
	}
	if a.sonarr != nil {
		seriesTags = arr.NewTagCache(a.sonarr)
	}

	var movies seed.MovieService
	if a.radarr != nil {
		movies = a.radarr
	}
	var series seed.SeriesService
	if a.sonarr != nil {
		series = a.sonarr
	}
	seeder := seed.New(movies, series, movieTags, seriesTags, a.log)

	if a.radarr != nil && len(a.cfg.Radarr.Movies) > 0 {
		result, err := seeder.Movies(ctx, a.cfg.Radarr.Movies, a.cfg.Radarr.RootFolder)
		if err != nil {
			return fmt.Errorf("seed movies: %w", err)
		}
		fmt.Printf("Movies: %d added, %d updated, %d skipped.\n", result.Added, result.Updated, result.Skipped)
	}
	if a.sonarr != nil && len(a.cfg.Sonarr.Series) > 0 {
		result, err := seeder.Series(ctx, a.cfg.Sonarr.Series, a.cfg.Sonarr.RootFolder)
		if err != nil {
			return fmt.Errorf("seed series: %w", err)
		}
		fmt.Printf("Series: %d added, %d updated, %d skipped.\n", result.Added, result.Updated, result.Skipped)
	}
	return nil
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/cullarr/internal/reconcile"
)

var (
	reAddFlatrate bool
	reAddYes      bool
)

var reAddCmd = &cobra.Command{
	Use:   "re-add",
	Short: "Re-monitor titles no longer streamable on your providers",
	Long: `Find unmonitored library entries that are no longer streamable on the
configured providers and turn monitoring back on.

Examples:
  cullarr re-add          # Preview and confirm
  cullarr re-add --yes    # Skip the confirmation prompt`,
	RunE: runReAdd,
}

func init() {
	rootCmd.AddCommand(reAddCmd)
	reAddCmd.Flags().BoolVar(&reAddFlatrate, "flatrate", false, "Only count subscription offers, not rent/buy/ads")
	reAddCmd.Flags().BoolVarP(&reAddYes, "yes", "y", false, "Apply without confirmation")
}

func runReAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	engine := a.engine(reAddFlatrate)
	if a.radarr != nil {
		if err := reAddMovies(ctx, a, engine); err != nil {
			return err
		}
	}
	if a.sonarr != nil {
		if err := reAddSeries(ctx, a, engine); err != nil {
			return err
		}
	}
	return nil
}

func reAddMovies(ctx context.Context, a *app, engine *reconcile.Engine) error {
	filter, err := a.movieFilter(ctx)
	if err != nil {
		return err
	}
	decisions, err := engine.Movies(ctx, reconcile.ModeReAdd, filter)
	if err != nil {
		return err
	}
	if len(decisions) == 0 {
		fmt.Println("No movies to re-add.")
		return nil
	}

	rows := make([][]string, 0, len(decisions))
	for _, d := range decisions {
		rows = append(rows, []string{d.Movie.Title, fmt.Sprintf("%d", d.Movie.Year)})
	}
	fmt.Println(renderTable([]string{"Movie", "Year"}, rows, 2))

	if !reAddYes && !confirm(fmt.Sprintf("Re-monitor %d movies?", len(decisions))) {
		fmt.Println("Aborted.")
		return nil
	}

	report := a.executor().ReAddMovies(ctx, decisions)
	printReport("movies", report)
	return nil
}

func reAddSeries(ctx context.Context, a *app, engine *reconcile.Engine) error {
	filter, err := a.seriesFilter(ctx)
	if err != nil {
		return err
	}
	decisions, err := engine.Series(ctx, reconcile.ModeReAdd, filter)
	if err != nil {
		return err
	}
	if len(decisions) == 0 {
		fmt.Println("No series to re-add.")
		return nil
	}

	rows := make([][]string, 0, len(decisions))
	for _, d := range decisions {
		rows = append(rows, []string{d.Series.Title, fmt.Sprintf("%d", d.Series.Year), d.Summary()})
	}
	fmt.Println(renderTable([]string{"Series", "Year", "Scope"}, rows, 2))

	if !reAddYes && !confirm(fmt.Sprintf("Re-monitor %d series?", len(decisions))) {
		fmt.Println("Aborted.")
		return nil
	}

	report := a.executor().ReAddSeries(ctx, decisions)
	printReport("series", report)
	return nil
}

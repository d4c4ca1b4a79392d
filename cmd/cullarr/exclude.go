package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vmunix/cullarr/internal/reconcile"
)

var (
	excludeAction       string
	excludeDeleteFiles  bool
	excludeAddExclusion bool
	excludeFlatrate     bool
	excludeYes          bool
)

var excludeCmd = &cobra.Command{
	Use:   "exclude",
	Short: "Remove or unmonitor titles streamable on your providers",
	Long: `Find library entries that are streamable on the configured providers
and delete them or stop monitoring them.

Examples:
  cullarr exclude                         # Preview and confirm, unmonitor matches
  cullarr exclude -a delete --delete-files  # Delete matches and their files
  cullarr exclude --yes                   # Skip the confirmation prompt`,
	RunE: runExclude,
}

func init() {
	rootCmd.AddCommand(excludeCmd)
	excludeCmd.Flags().StringVarP(&excludeAction, "action", "a", "not-monitored", "Action to take: delete or not-monitored")
	excludeCmd.Flags().BoolVar(&excludeDeleteFiles, "delete-files", false, "Also delete files on disk")
	excludeCmd.Flags().BoolVar(&excludeAddExclusion, "add-exclusion", false, "Add deleted entries to the import exclusion list")
	excludeCmd.Flags().BoolVar(&excludeFlatrate, "flatrate", false, "Only count subscription offers, not rent/buy/ads")
	excludeCmd.Flags().BoolVarP(&excludeYes, "yes", "y", false, "Apply without confirmation")
}

func runExclude(cmd *cobra.Command, args []string) error {
	action, err := reconcile.ParseAction(excludeAction)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	engine := a.engine(excludeFlatrate)
	opts := reconcile.ApplyOptions{
		Action:       action,
		DeleteFiles:  excludeDeleteFiles,
		AddExclusion: excludeAddExclusion,
	}

	if a.radarr != nil {
		if err := excludeMovies(ctx, a, engine, opts); err != nil {
			return err
		}
	}
	if a.sonarr != nil {
		if err := excludeSeries(ctx, a, engine, opts); err != nil {
			return err
		}
	}
	return nil
}

func excludeMovies(ctx context.Context, a *app, engine *reconcile.Engine, opts reconcile.ApplyOptions) error {
	filter, err := a.movieFilter(ctx)
	if err != nil {
		return err
	}
	decisions, err := engine.Movies(ctx, reconcile.ModeExclude, filter)
	if err != nil {
		return err
	}
	if len(decisions) == 0 {
		fmt.Println("No movies to exclude.")
		return nil
	}

	rows := make([][]string, 0, len(decisions))
	for _, d := range decisions {
		rows = append(rows, []string{
			d.Movie.Title,
			fmt.Sprintf("%d", d.Movie.Year),
			strings.Join(d.Providers, ", "),
			humanize.Bytes(uint64(d.Movie.SizeOnDisk)),
		})
	}
	fmt.Println(renderTable([]string{"Movie", "Year", "Providers", "Size"}, rows, 2, 4))

	if !excludeYes && !confirm(fmt.Sprintf("Apply %q to %d movies?", opts.Action, len(decisions))) {
		fmt.Println("Aborted.")
		return nil
	}

	report := a.executor().ExcludeMovies(ctx, decisions, opts)
	printReport("movies", report)
	return nil
}

func excludeSeries(ctx context.Context, a *app, engine *reconcile.Engine, opts reconcile.ApplyOptions) error {
	filter, err := a.seriesFilter(ctx)
	if err != nil {
		return err
	}
	decisions, err := engine.Series(ctx, reconcile.ModeExclude, filter)
	if err != nil {
		return err
	}
	if len(decisions) == 0 {
		fmt.Println("No series to exclude.")
		return nil
	}

	rows := make([][]string, 0, len(decisions))
	for _, d := range decisions {
		rows = append(rows, []string{
			d.Series.Title,
			fmt.Sprintf("%d", d.Series.Year),
			d.Summary(),
			strings.Join(d.Providers(), ", "),
			humanize.Bytes(uint64(d.Series.SizeOnDisk())),
		})
	}
	fmt.Println(renderTable([]string{"Series", "Year", "Scope", "Providers", "Size"}, rows, 2, 5))

	if !excludeYes && !confirm(fmt.Sprintf("Apply %q to %d series?", opts.Action, len(decisions))) {
		fmt.Println("Aborted.")
		return nil
	}

	report := a.executor().ExcludeSeries(ctx, decisions, opts)
	printReport("series", report)
	return nil
}

func printReport(what string, report *reconcile.Report) {
	fmt.Printf("Applied %d changes to %s.\n", report.Applied, what)
	for _, f := range report.Failures {
		fmt.Printf("  failed: %s (id %d): %v\n", f.Operation, f.EntityID, f.Err)
	}
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/cullarr/internal/config"
)

var version = "dev"

var (
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "cullarr",
	Short: "Reconcile Radarr and Sonarr libraries against streaming availability",
	Long: `cullarr - keep your library free of titles you can already stream

cullarr compares your Radarr and Sonarr libraries against the streaming
providers you subscribe to. Titles available for streaming can be deleted
or unmonitored; titles that left your providers can be monitored again.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("cullarr {{.Version}}\n")
}

// loadConfig resolves the config path, loads and validates it, and builds
// the logger. Validation problems are aggregated into one error.
func loadConfig() (*config.Config, *slog.Logger, error) {
	path := configPath
	if path == "" {
		discovered, err := config.Discover()
		if err != nil {
			return nil, nil, err
		}
		path = discovered
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if problems := cfg.Validate(); len(problems) > 0 {
		return nil, nil, &config.Error{Path: path, Errors: problems}
	}

	level := slog.LevelInfo
	switch cfg.General.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	if level == slog.LevelDebug {
		log.Debug("configuration loaded", "path", path, "config", fmt.Sprintf("%+v", cfg.Redacted()))
	}
	return cfg, log, nil
}

// confirm prompts for a y/N answer on stdin.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	var answer string
	fmt.Scanln(&answer)
	return answer == "y" || answer == "Y" || answer == "yes"
}

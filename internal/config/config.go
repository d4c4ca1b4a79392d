// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	General GeneralConfig `toml:"general"`
	TMDB    TMDBConfig    `toml:"tmdb"`
	Radarr  *ArrConfig    `toml:"radarr"`
	Sonarr  *ArrConfig    `toml:"sonarr"`
}

type GeneralConfig struct {
	Locale     string   `toml:"locale"`
	Providers  []string `toml:"providers"`
	FastSearch bool     `toml:"fast_search"`
	LogLevel   string   `toml:"log_level"`
}

type TMDBConfig struct {
	APIKey string `toml:"api_key"`
}

// ArrConfig configures one library service (Radarr or Sonarr).
type ArrConfig struct {
	URL     string        `toml:"url"`
	APIKey  string        `toml:"api_key"`
	Exclude ExcludeConfig `toml:"exclude"`

	// RootFolder is where seeded entries are placed. Only `cullarr seed`
	// needs it.
	RootFolder string `toml:"root_folder"`

	// Seed entries, applied by `cullarr seed`.
	Movies []SeedEntry `toml:"movies"`
	Series []SeedEntry `toml:"series"`
}

// ExcludeConfig lists library entries the reconciler must never touch.
type ExcludeConfig struct {
	Titles []string `toml:"titles"`
	Tags   []string `toml:"tags"`
}

// SeedEntry is one movie or series to seed into a library service.
type SeedEntry struct {
	Title     string   `toml:"title"`
	Monitored bool     `toml:"monitored"`
	Tags      []string `toml:"tags"`

	// AdvancedMonitored maps a season number (or "*" for all seasons not
	// listed explicitly) to either a bool (whole-season monitored flag) or
	// a list of episode numbers to monitor exclusively.
	AdvancedMonitored map[string]toml.Primitive `toml:"advanced_monitored"`

	// meta holds the decoder state needed to resolve the primitives above.
	meta toml.MetaData
}

// WildcardSeason is the Overrides key for the "*" wildcard entry.
const WildcardSeason = -1

// SeasonOverride is one decoded advanced_monitored value.
type SeasonOverride struct {
	// Monitored applies to the whole season when Episodes is nil.
	Monitored bool
	// Episodes, when non-nil, lists the episode numbers to monitor; all
	// other episodes of the season are unmonitored.
	Episodes []int
}

// Overrides decodes the advanced_monitored map. The "*" wildcard entry is
// returned under WildcardSeason.
func (s *SeedEntry) Overrides() (map[int]SeasonOverride, error) {
	out := make(map[int]SeasonOverride, len(s.AdvancedMonitored))
	for key, prim := range s.AdvancedMonitored {
		season := WildcardSeason
		if key != "*" {
			if _, err := fmt.Sscanf(key, "%d", &season); err != nil || season < 0 {
				return nil, fmt.Errorf("advanced_monitored: invalid season %q", key)
			}
		}

		var flag bool
		if err := s.meta.PrimitiveDecode(prim, &flag); err == nil {
			out[season] = SeasonOverride{Monitored: flag}
			continue
		}

		var episodes []int
		if err := s.meta.PrimitiveDecode(prim, &episodes); err != nil {
			return nil, fmt.Errorf("advanced_monitored: season %q must be a bool or an episode list", key)
		}
		out[season] = SeasonOverride{Monitored: true, Episodes: episodes}
	}
	return out, nil
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &Error{Path: path, Missing: missing}
	}

	var cfg Config
	meta, err := toml.Decode(content, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Radarr != nil {
		for i := range cfg.Radarr.Movies {
			cfg.Radarr.Movies[i].meta = meta
		}
	}
	if cfg.Sonarr != nil {
		for i := range cfg.Sonarr.Series {
			cfg.Sonarr.Series[i].meta = meta
		}
	}

	// Apply defaults
	if cfg.General.Locale == "" {
		cfg.General.Locale = "en_US"
	}
	if cfg.General.LogLevel == "" {
		cfg.General.LogLevel = "info"
	}
	if !meta.IsDefined("general", "fast_search") {
		cfg.General.FastSearch = true
	}

	return &cfg, nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values
// and reports the names of variables that are not set.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) (string, []string) {
	var missing []string
	replaced := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1]
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		missing = append(missing, varName)
		return match
	})
	return replaced, missing
}

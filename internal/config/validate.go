package config

import (
	"fmt"
	"net/url"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// At least one library service required
	if c.Radarr == nil && c.Sonarr == nil {
		errs = append(errs, "at least one of [radarr] or [sonarr] must be configured")
	}

	if !validLogLevels[c.General.LogLevel] {
		errs = append(errs, fmt.Sprintf("general.log_level: must be one of debug, info, warn, error; got %q", c.General.LogLevel))
	}

	errs = append(errs, validateArr("radarr", c.Radarr)...)
	errs = append(errs, validateArr("sonarr", c.Sonarr)...)

	return errs
}

func validateArr(name string, cfg *ArrConfig) []string {
	if cfg == nil {
		return nil
	}

	var errs []string
	if cfg.URL == "" {
		errs = append(errs, fmt.Sprintf("%s.url: required when %s is configured", name, name))
	} else if _, err := url.ParseRequestURI(cfg.URL); err != nil {
		errs = append(errs, fmt.Sprintf("%s.url: invalid URL %q", name, cfg.URL))
	}
	if cfg.APIKey == "" {
		errs = append(errs, fmt.Sprintf("%s.api_key: required when %s is configured", name, name))
	}
	return errs
}

// Redacted returns a copy of the config with API keys masked, suitable for
// debug logging.
func (c *Config) Redacted() Config {
	out := *c
	if out.TMDB.APIKey != "" {
		out.TMDB.APIKey = "<REDACTED>"
	}
	if c.Radarr != nil {
		radarr := *c.Radarr
		if radarr.APIKey != "" {
			radarr.APIKey = "<REDACTED>"
		}
		out.Radarr = &radarr
	}
	if c.Sonarr != nil {
		sonarr := *c.Sonarr
		if sonarr.APIKey != "" {
			sonarr.APIKey = "<REDACTED>"
		}
		out.Sonarr = &sonarr
	}
	return out
}

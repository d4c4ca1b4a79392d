package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes a config file into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[radarr]
url = "http://localhost:7878"
api_key = "abc"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "en_US", cfg.General.Locale)
	assert.Equal(t, "info", cfg.General.LogLevel)
	assert.True(t, cfg.General.FastSearch, "fast_search defaults to true")
	assert.Nil(t, cfg.Sonarr)
	require.NotNil(t, cfg.Radarr)
	assert.Equal(t, "http://localhost:7878", cfg.Radarr.URL)
}

func TestLoad_FastSearchExplicitFalse(t *testing.T) {
	path := writeConfig(t, `
[general]
fast_search = false

[sonarr]
url = "http://localhost:8989"
api_key = "abc"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.General.FastSearch)
}

func TestLoad_EnvSubstitution(t *testing.T) {
	t.Setenv("CULLARR_TEST_KEY", "secret123")

	path := writeConfig(t, `
[radarr]
url = "http://localhost:7878"
api_key = "${CULLARR_TEST_KEY}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret123", cfg.Radarr.APIKey)
}

func TestLoad_MissingEnvVar(t *testing.T) {
	path := writeConfig(t, `
[radarr]
url = "http://localhost:7878"
api_key = "${CULLARR_DEFINITELY_UNSET}"
`)

	_, err := Load(path)
	require.Error(t, err)

	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Missing, "CULLARR_DEFINITELY_UNSET")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestSeedEntry_Overrides(t *testing.T) {
	path := writeConfig(t, `
[sonarr]
url = "http://localhost:8989"
api_key = "abc"

[[sonarr.series]]
title = "Some Show"
monitored = true

[sonarr.series.advanced_monitored]
"*" = false
"1" = true
"2" = [1, 2, 5]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Sonarr.Series, 1)

	overrides, err := cfg.Sonarr.Series[0].Overrides()
	require.NoError(t, err)

	assert.Equal(t, SeasonOverride{Monitored: false}, overrides[WildcardSeason])
	assert.Equal(t, SeasonOverride{Monitored: true}, overrides[1])
	assert.Equal(t, SeasonOverride{Monitored: true, Episodes: []int{1, 2, 5}}, overrides[2])
}

func TestSeedEntry_OverridesInvalidSeason(t *testing.T) {
	path := writeConfig(t, `
[sonarr]
url = "http://localhost:8989"
api_key = "abc"

[[sonarr.series]]
title = "Some Show"

[sonarr.series.advanced_monitored]
"first" = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	_, err = cfg.Sonarr.Series[0].Overrides()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "no services",
			cfg:  Config{},
			want: []string{"at least one of [radarr] or [sonarr] must be configured"},
		},
		{
			name: "missing radarr fields",
			cfg:  Config{Radarr: &ArrConfig{}},
			want: []string{
				"radarr.url: required when radarr is configured",
				"radarr.api_key: required when radarr is configured",
			},
		},
		{
			name: "bad log level",
			cfg: Config{
				General: GeneralConfig{LogLevel: "loud"},
				Sonarr:  &ArrConfig{URL: "http://localhost:8989", APIKey: "k"},
			},
			want: []string{`general.log_level: must be one of debug, info, warn, error; got "loud"`},
		},
		{
			name: "valid",
			cfg:  Config{Radarr: &ArrConfig{URL: "http://localhost:7878", APIKey: "k"}},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Validate())
		})
	}
}

func TestRedacted(t *testing.T) {
	cfg := Config{
		TMDB:   TMDBConfig{APIKey: "tmdb-secret"},
		Radarr: &ArrConfig{URL: "http://localhost:7878", APIKey: "radarr-secret"},
	}

	redacted := cfg.Redacted()
	assert.Equal(t, "<REDACTED>", redacted.TMDB.APIKey)
	assert.Equal(t, "<REDACTED>", redacted.Radarr.APIKey)

	// Original must be untouched
	assert.Equal(t, "radarr-secret", cfg.Radarr.APIKey)
}

func TestDiscover_EnvVar(t *testing.T) {
	path := writeConfig(t, `[radarr]
url = "http://localhost:7878"
api_key = "k"
`)
	t.Setenv("CULLARR_CONFIG", path)

	found, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestDiscover_EnvVarMissingFile(t *testing.T) {
	t.Setenv("CULLARR_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	_, err := Discover()
	assert.Error(t, err)
}

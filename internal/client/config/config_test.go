package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func writeJSON(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "hrconsole.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadDefaults(t *testing.T) {
	want := &Config{
		StoreBaseURL:        "http://localhost:3000",
		RequestTimeout:      10 * time.Second,
		SearchDebounce:      300 * time.Millisecond,
		OnlineCheckInterval: 3 * time.Second,
		DatabaseFile:        "hrconsole.db",
	}
	assert.Empty(t, cmp.Diff(want, defaults()))
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expected    func(*Config)
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://hr:8080", "-t", "5", "-s", "150", "-i", "7", "-f", "/tmp/x.db"},
			expected: func(c *Config) {
				c.StoreBaseURL = "http://hr:8080"
				c.RequestTimeout = 5 * time.Second
				c.SearchDebounce = 150 * time.Millisecond
				c.OnlineCheckInterval = 7 * time.Second
				c.DatabaseFile = "/tmp/x.db"
			},
		},
		{
			name:     "unknown flags ignored",
			args:     []string{"-c", "cfg.json", "-x", "1"},
			expected: func(*Config) {},
		},
		{
			name:        "bad timeout",
			args:        []string{"-t", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg, tt.args) })
				return
			}

			require.NotPanics(t, func() { parseFlags(cfg, tt.args) })
			want := defaults()
			tt.expected(want)
			assert.Empty(t, cmp.Diff(want, cfg))
		})
	}
}

func TestParseJson(t *testing.T) {
	path := writeJSON(t, `{
		"store_base_url": "https://hr.example.com",
		"request_timeout": "2s",
		"search_debounce": 500000000,
		"database_file": "session.db"
	}`)

	cfg := defaults()
	parseJson(cfg, []string{"-c", path})

	want := defaults()
	want.StoreBaseURL = "https://hr.example.com"
	want.RequestTimeout = 2 * time.Second
	want.SearchDebounce = 500 * time.Millisecond
	want.DatabaseFile = "session.db"
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestParseJson_NoFile(t *testing.T) {
	cfg := defaults()
	parseJson(cfg, []string{"-a", "http://x"})
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestParseJson_Errors(t *testing.T) {
	require.Panics(t, func() { parseJson(defaults(), []string{"-config", filepath.Join(t.TempDir(), "missing.json")}) })

	bad := writeJSON(t, `{"request_timeout": "later"}`)
	require.Panics(t, func() { parseJson(defaults(), []string{"-c", bad}) })
}

func TestLoadConfig_FlagsOverrideJson(t *testing.T) {
	path := writeJSON(t, `{"store_base_url": "http://from-json", "search_debounce": "1s"}`)

	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = []string{"hrconsole", "-c", path, "-a", "http://from-flag"}

	cfg := LoadConfig()
	assert.Equal(t, "http://from-flag", cfg.StoreBaseURL)
	assert.Equal(t, time.Second, cfg.SearchDebounce)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "short hex", mutate: func(c *Config) { c.Appearance.DarkPalette.Text = "#fff" }},
		{
			name:    "bad hex",
			mutate:  func(c *Config) { c.Appearance.LightPalette.Accent = "blue" },
			wantKey: "appearance.light_palette.accent",
		},
		{
			name:    "bad level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantKey: "logging.level",
		},
		{
			name:    "negative keep",
			mutate:  func(c *Config) { c.Logging.KeepSessions = -1 },
			wantKey: "logging.keep_sessions",
		},
		{
			name:    "relative home url",
			mutate:  func(c *Config) { c.Browser.HomeURL = "danielprior.dev" },
			wantKey: "browser.home_url",
		},
		{
			name:    "non http editor url",
			mutate:  func(c *Config) { c.Editor.URL = "file:///etc/passwd" },
			wantKey: "editor.url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantKey == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}
}

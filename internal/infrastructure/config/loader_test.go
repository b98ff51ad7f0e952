package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func loadManager(t *testing.T) *Manager {
	t.Helper()
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	return mgr
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.True(t, mgr.viper.GetBool("appearance.dark_mode"))
	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
	assert.Equal(t, "https://danielprior.dev", mgr.viper.GetString("browser.home_url"))
	assert.Equal(t, "#0a84ff", mgr.viper.GetString("appearance.dark_palette.accent"))
}

func TestManager_LoadCreatesDefaultConfig(t *testing.T) {
	root := isolateXDG(t)

	mgr := loadManager(t)
	cfg := mgr.Get()

	configFile := filepath.Join(root, "config", "mockbrowse", "config.toml")
	assert.FileExists(t, configFile)
	assert.FileExists(t, filepath.Join(root, "config", "mockbrowse", "config.schema.json"))
	assert.Equal(t, configFile, mgr.GetConfigFile())

	assert.Equal(t, filepath.Join(root, "data", "mockbrowse", "mockbrowse.sqlite"), cfg.Database.Path)
	assert.Equal(t, filepath.Join(root, "state", "mockbrowse", "logs"), cfg.Logging.LogDir)
	assert.True(t, cfg.Appearance.DarkMode)
	assert.Equal(t, DefaultConfig().Appearance, cfg.Appearance)
	assert.Equal(t, "https://danielprior.dev", cfg.Browser.HomeURL)
}

func TestManager_LoadReadsFileAndEnv(t *testing.T) {
	root := isolateXDG(t)
	configDir := filepath.Join(root, "config", "mockbrowse")
	require.NoError(t, os.MkdirAll(configDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(`
[appearance]
dark_mode = false

[appearance.light_palette]
accent = "#ff0000"

[browser]
home_url = "https://example.org"
`), 0o600))
	t.Setenv("MOCKBROWSE_LOG_LEVEL", "debug")

	cfg := loadManager(t).Get()

	assert.False(t, cfg.Appearance.DarkMode)
	assert.Equal(t, "#ff0000", cfg.Appearance.LightPalette.Accent)
	assert.Equal(t, DefaultConfig().Appearance.LightPalette.Text, cfg.Appearance.LightPalette.Text)
	assert.Equal(t, "#ff0000", cfg.Appearance.ActivePalette().Accent)
	assert.Equal(t, "https://example.org", cfg.Browser.HomeURL)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestManager_LoadRejectsInvalidFile(t *testing.T) {
	root := isolateXDG(t)
	configDir := filepath.Join(root, "config", "mockbrowse")
	require.NoError(t, os.MkdirAll(configDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(`
[editor]
url = "not a url"
`), 0o600))

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "editor.url")
}

func TestManager_WatchReloadsOnChange(t *testing.T) {
	isolateXDG(t)
	mgr := loadManager(t)
	require.True(t, mgr.Get().Appearance.DarkMode)

	changed := make(chan *Config, 4)
	mgr.OnConfigChange(func(cfg *Config) { changed <- cfg })
	require.NoError(t, mgr.Watch())
	require.NoError(t, mgr.Watch(), "second Watch is a no-op")

	cfg := mgr.Get()
	cfg.Appearance.DarkMode = false
	require.NoError(t, WriteConfig(cfg, mgr.GetConfigFile()))

	require.Eventually(t, func() bool {
		select {
		case got := <-changed:
			return !got.Appearance.DarkMode
		default:
			return false
		}
	}, 5*time.Second, 20*time.Millisecond)
	assert.False(t, mgr.Get().Appearance.DarkMode)
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = " WARN "
	cfg.Logging.Format = "xml"
	cfg.Browser.HomeURL = "  "
	cfg.Editor.URL = ""
	cfg.Appearance.DarkPalette.Border = ""

	normalizeConfig(cfg)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "https://danielprior.dev", cfg.Browser.HomeURL)
	assert.Equal(t, DefaultConfig().Editor.URL, cfg.Editor.URL)
	assert.Equal(t, DefaultConfig().Appearance.DarkPalette.Border, cfg.Appearance.DarkPalette.Border)
}

package config

import "github.com/bnema/mockbrowse/internal/domain/entity"

const (
	defaultLogLevel     = "info"
	defaultLogFormat    = "console"
	defaultKeepSessions = 10

	dirPerm  = 0o750
	filePerm = 0o644
)

// DefaultConfig returns the built-in configuration. Paths are resolved
// later from the XDG directories.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:        defaultLogLevel,
			Format:       defaultLogFormat,
			KeepSessions: defaultKeepSessions,
		},
		Appearance: AppearanceConfig{
			DarkMode: true,
			LightPalette: ColorPalette{
				Background:     "#f5f5f7",
				Surface:        "#ffffff",
				SurfaceVariant: "#e8e8ed",
				Text:           "#1d1d1f",
				Muted:          "#6e6e73",
				Accent:         "#0071e3",
				Border:         "#d2d2d7",
				Danger:         "#d70015",
			},
			DarkPalette: ColorPalette{
				Background:     "#1c1c1e",
				Surface:        "#2c2c2e",
				SurfaceVariant: "#3a3a3c",
				Text:           "#f5f5f7",
				Muted:          "#98989d",
				Accent:         "#0a84ff",
				Border:         "#48484a",
				Danger:         "#ff453a",
			},
		},
		Browser: BrowserConfig{HomeURL: entity.DefaultHomeURL},
		Editor:  EditorConfig{URL: entity.DefaultEditorURL},
	}
}

func (m *Manager) setDefaults() {
	d := DefaultConfig()

	m.viper.SetDefault("database.path", "")

	m.viper.SetDefault("logging.level", d.Logging.Level)
	m.viper.SetDefault("logging.format", d.Logging.Format)
	m.viper.SetDefault("logging.log_dir", "")
	m.viper.SetDefault("logging.keep_sessions", d.Logging.KeepSessions)

	m.viper.SetDefault("appearance.dark_mode", d.Appearance.DarkMode)
	setPaletteDefaults(m, "appearance.light_palette", d.Appearance.LightPalette)
	setPaletteDefaults(m, "appearance.dark_palette", d.Appearance.DarkPalette)

	m.viper.SetDefault("browser.home_url", d.Browser.HomeURL)
	m.viper.SetDefault("editor.url", d.Editor.URL)
}

func setPaletteDefaults(m *Manager, prefix string, p ColorPalette) {
	m.viper.SetDefault(prefix+".background", p.Background)
	m.viper.SetDefault(prefix+".surface", p.Surface)
	m.viper.SetDefault(prefix+".surface_variant", p.SurfaceVariant)
	m.viper.SetDefault(prefix+".text", p.Text)
	m.viper.SetDefault(prefix+".muted", p.Muted)
	m.viper.SetDefault(prefix+".accent", p.Accent)
	m.viper.SetDefault(prefix+".border", p.Border)
	m.viper.SetDefault(prefix+".danger", p.Danger)
}

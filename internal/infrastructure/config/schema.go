// Package config loads, validates and watches the mockbrowse configuration.
package config

// Config is the mockbrowse configuration file.
type Config struct {
	Database   DatabaseConfig   `mapstructure:"database" toml:"database" json:"database"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
	Browser    BrowserConfig    `mapstructure:"browser" toml:"browser" json:"browser"`
	Editor     EditorConfig     `mapstructure:"editor" toml:"editor" json:"editor"`
}

// DatabaseConfig locates the settings database shared with the desktop shell.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/mockbrowse/mockbrowse.sqlite when empty.
	Path string `mapstructure:"path" toml:"path" json:"path" jsonschema:"description=SQLite file holding the wifiEnabled flag"`
}

// LoggingConfig controls zerolog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// LogDir receives one file per TUI session.
	LogDir string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	// KeepSessions is how many session logs survive pruning. 0 keeps all.
	KeepSessions int `mapstructure:"keep_sessions" toml:"keep_sessions" json:"keep_sessions" jsonschema:"minimum=0"`
}

// AppearanceConfig holds the theme input from the host shell.
type AppearanceConfig struct {
	DarkMode     bool         `mapstructure:"dark_mode" toml:"dark_mode" json:"dark_mode"`
	LightPalette ColorPalette `mapstructure:"light_palette" toml:"light_palette" json:"light_palette"`
	DarkPalette  ColorPalette `mapstructure:"dark_palette" toml:"dark_palette" json:"dark_palette"`
}

// ActivePalette returns the palette selected by DarkMode.
func (a AppearanceConfig) ActivePalette() ColorPalette {
	if a.DarkMode {
		return a.DarkPalette
	}
	return a.LightPalette
}

// ColorPalette contains semantic color tokens for light/dark themes.
type ColorPalette struct {
	Background     string `mapstructure:"background" toml:"background" json:"background"`
	Surface        string `mapstructure:"surface" toml:"surface" json:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" toml:"surface_variant" json:"surface_variant"`
	Text           string `mapstructure:"text" toml:"text" json:"text"`
	Muted          string `mapstructure:"muted" toml:"muted" json:"muted"`
	Accent         string `mapstructure:"accent" toml:"accent" json:"accent"`
	Border         string `mapstructure:"border" toml:"border" json:"border"`
	Danger         string `mapstructure:"danger" toml:"danger" json:"danger"`
}

// BrowserConfig configures the browser pane.
type BrowserConfig struct {
	// HomeURL is the address shown when a pane mounts.
	HomeURL string `mapstructure:"home_url" toml:"home_url" json:"home_url" jsonschema:"format=uri"`
}

// EditorConfig configures the editor view.
type EditorConfig struct {
	URL string `mapstructure:"url" toml:"url" json:"url" jsonschema:"format=uri"`
}

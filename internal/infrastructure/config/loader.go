package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/mockbrowse/internal/domain/entity"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager reading
// $XDG_CONFIG_HOME/mockbrowse/config.toml and MOCKBROWSE_* variables.
func NewManager() (*Manager, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// MOCKBROWSE_DATABASE_PATH, MOCKBROWSE_APPEARANCE_DARK_MODE, ...
	v.SetEnvPrefix("MOCKBROWSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short forms shared with logging.NewFromEnv.
	if err := v.BindEnv("logging.level", "MOCKBROWSE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind MOCKBROWSE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "MOCKBROWSE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind MOCKBROWSE_LOG_FORMAT: %w", err)
	}

	return &Manager{viper: v}, nil
}

// Load reads the configuration file, creating it with defaults on first
// run, then applies environment overrides.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}
	return m.reload(false)
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configPath(), err)
	}

	if err := m.createDefaultConfig(); err != nil {
		return fmt.Errorf("failed to create default config at %s: %w", m.configPath(), err)
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read newly created config file: %w", err)
	}
	return nil
}

func (m *Manager) configPath() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	path, _ := GetConfigFile()
	return path
}

// reload rebuilds m.config from viper. Must be called with m.mu held.
func (m *Manager) reload(reread bool) error {
	if reread {
		if err := m.viper.ReadInConfig(); err != nil {
			return err
		}
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches", m.configPath(), err)
	}

	if err := resolvePaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func resolvePaths(config *Config) error {
	if config.Database.Path == "" {
		path, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = path
	}
	if config.Logging.LogDir == "" {
		dir, err := GetLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		config.Logging.LogDir = dir
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}

	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = defaultLogFormat
	}

	config.Browser.HomeURL = strings.TrimSpace(config.Browser.HomeURL)
	if config.Browser.HomeURL == "" {
		config.Browser.HomeURL = entity.DefaultHomeURL
	}
	config.Editor.URL = strings.TrimSpace(config.Editor.URL)
	if config.Editor.URL == "" {
		config.Editor.URL = entity.DefaultEditorURL
	}

	defaults := DefaultConfig()
	fillPalette(&config.Appearance.LightPalette, defaults.Appearance.LightPalette)
	fillPalette(&config.Appearance.DarkPalette, defaults.Appearance.DarkPalette)
}

// fillPalette replaces blank tokens with their defaults.
func fillPalette(p *ColorPalette, d ColorPalette) {
	fields := []struct {
		value    *string
		fallback string
	}{
		{&p.Background, d.Background},
		{&p.Surface, d.Surface},
		{&p.SurfaceVariant, d.SurfaceVariant},
		{&p.Text, d.Text},
		{&p.Muted, d.Muted},
		{&p.Accent, d.Accent},
		{&p.Border, d.Border},
		{&p.Danger, d.Danger},
	}
	for _, f := range fields {
		*f.value = strings.TrimSpace(*f.value)
		if *f.value == "" {
			*f.value = f.fallback
		}
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.configPath()
}

func (m *Manager) createDefaultConfig() error {
	path, err := GetConfigFile()
	if err != nil {
		return err
	}
	if err := WriteConfig(DefaultConfig(), path); err != nil {
		return err
	}
	m.viper.SetConfigFile(path)

	// The schema is a convenience for editors; failing to write it is not fatal.
	_ = WriteSchemaFile()
	return nil
}

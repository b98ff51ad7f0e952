package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validatePalette("appearance.light_palette", config.Appearance.LightPalette)...)
	validationErrors = append(validationErrors, validatePalette("appearance.dark_palette", config.Appearance.DarkPalette)...)
	validationErrors = append(validationErrors, validateWebURL("browser.home_url", config.Browser.HomeURL)...)
	validationErrors = append(validationErrors, validateWebURL("editor.url", config.Editor.URL)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of trace, debug, info, warn, error (got: %s)", config.Logging.Level))
	}
	if config.Logging.KeepSessions < 0 {
		validationErrors = append(validationErrors, "logging.keep_sessions must be non-negative")
	}
	return validationErrors
}

func validatePalette(prefix string, p ColorPalette) []string {
	tokens := []struct{ name, value string }{
		{"background", p.Background},
		{"surface", p.Surface},
		{"surface_variant", p.SurfaceVariant},
		{"text", p.Text},
		{"muted", p.Muted},
		{"accent", p.Accent},
		{"border", p.Border},
		{"danger", p.Danger},
	}

	var validationErrors []string
	for _, token := range tokens {
		if !hexColorPattern.MatchString(token.value) {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"%s.%s must be a hex color like #1c1c1e (got: %q)", prefix, token.name, token.value))
		}
	}
	return validationErrors
}

func validateWebURL(key, raw string) []string {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return []string{fmt.Sprintf("%s must be an absolute http(s) URL (got: %q)", key, raw)}
	}
	return nil
}

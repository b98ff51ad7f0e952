package entity

import "time"

// SettingKey names a persisted desktop setting.
type SettingKey string

// SettingWiFiEnabled holds the simulated network availability flag.
const SettingWiFiEnabled SettingKey = "wifiEnabled"

// Setting is a single persisted key/value pair.
type Setting struct {
	Key       SettingKey
	Value     string
	UpdatedAt time.Time
}

// NewSetting creates a setting stamped with the current time.
func NewSetting(key SettingKey, value string) *Setting {
	return &Setting{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
}

// ParseConnectivity converts a stored flag into a bool. A missing value means
// connected; any stored value other than "true" means disconnected.
func ParseConnectivity(value string, found bool) bool {
	if !found {
		return true
	}
	return value == "true"
}

// FormatConnectivity is the inverse of ParseConnectivity for stored values.
func FormatConnectivity(connected bool) string {
	if connected {
		return "true"
	}
	return "false"
}

// internal/config/settings.go
package config

import (
	"os"
	"strconv"
)

// Settings are the runtime knobs of a session. Zero values are replaced by DefaultSettings.
type Settings struct {
	Seed         int64  // 0 = time based
	StartLevel   int    // first level to load
	LevelFile    string // optional JSON layout table, replaces the built-in one
	SpectateAddr string // websocket spectator listen address, empty = disabled
	Mute         bool
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Seed:       0,
		StartLevel: 1,
	}
}

// FromEnv overlays SLINGSHOT_* environment variables on the defaults.
func FromEnv() Settings {
	s := DefaultSettings()
	if seed, err := strconv.ParseInt(GetEnvDefault("SLINGSHOT_SEED", "0"), 10, 64); err == nil {
		s.Seed = seed
	}
	if lvl, err := strconv.Atoi(GetEnvDefault("SLINGSHOT_LEVEL", "1")); err == nil && lvl > 0 {
		s.StartLevel = lvl
	}
	s.LevelFile = GetEnvDefault("SLINGSHOT_LEVELS", "")
	s.SpectateAddr = GetEnvDefault("SLINGSHOT_SPECTATE", "")
	s.Mute = GetEnvDefault("SLINGSHOT_MUTE", "") == "1"
	return s
}

// GetEnvDefault returns the value of key, or defaultValue when unset or empty.
func GetEnvDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

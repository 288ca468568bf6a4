package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. SWPCALC_LOG_LEVEL.
const EnvPrefix = "SWPCALC"

// Setting keys shared by cobra flags, viper and the environment.
const (
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
	KeyFormat    = "format"
	KeyOutput    = "output"
)

// Settings controls how the CLI logs and where reports go.
type Settings struct {
	LogLevel  string
	LogFormat string
	Format    string
	Output    string // empty means stdout
}

// NewViper returns a viper instance with defaults and environment overrides.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyFormat, "console")
	v.SetDefault(KeyOutput, "")
	return v
}

// LoadSettings reads and validates the settings held by v.
func LoadSettings(v *viper.Viper) (*Settings, error) {
	s := &Settings{
		LogLevel:  strings.ToLower(v.GetString(KeyLogLevel)),
		LogFormat: strings.ToLower(v.GetString(KeyLogFormat)),
		Format:    v.GetString(KeyFormat),
		Output:    v.GetString(KeyOutput),
	}
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid %s %q (expected debug, info, warn or error)", KeyLogLevel, s.LogLevel)
	}
	switch s.LogFormat {
	case "console", "json":
	default:
		return nil, fmt.Errorf("invalid %s %q (expected console or json)", KeyLogFormat, s.LogFormat)
	}
	if strings.TrimSpace(s.Format) == "" {
		return nil, fmt.Errorf("%s cannot be empty", KeyFormat)
	}
	return s, nil
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderMemory = "memory"
	ProviderDuckDB = "duckdb"
)

type Settings struct {
	Server ServerSettings `mapstructure:"server"`
	Store  StoreSettings  `mapstructure:"store"`
	Export ExportSettings `mapstructure:"export"`
	Log    LogSettings    `mapstructure:"log"`
}

type ServerSettings struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type StoreSettings struct {
	Provider   string `mapstructure:"provider"`
	DuckDBPath string `mapstructure:"duckdb_path"`
}

type ExportSettings struct {
	// SinksFile is an ini file of delivery profiles; Sink names the profile exports are delivered to.
	SinksFile string `mapstructure:"sinks_file"`
	Sink      string `mapstructure:"sink"`
}

type LogSettings struct {
	Level string `mapstructure:"level"`
}

// LoadSettings reads the settings file at path, if any, and overlays ATLAS_* environment variables,
// e.g. ATLAS_SERVER_PORT for server.port.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("store.provider", ProviderMemory)
	v.SetDefault("store.duckdb_path", "insure-atlas.db")
	v.SetDefault("export.sinks_file", "")
	v.SetDefault("export.sink", "")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("ATLAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) Validate() error {
	switch s.Store.Provider {
	case ProviderMemory:
	case ProviderDuckDB:
		if s.Store.DuckDBPath == "" {
			return fmt.Errorf("store.duckdb_path is required for the %s provider", ProviderDuckDB)
		}
	default:
		return fmt.Errorf("unknown store provider %q", s.Store.Provider)
	}
	if s.Server.Port <= 0 || s.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", s.Server.Port)
	}
	if s.Export.Sink != "" && s.Export.SinksFile == "" {
		return fmt.Errorf("export.sink %q set without export.sinks_file", s.Export.Sink)
	}
	return nil
}

func (s ServerSettings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

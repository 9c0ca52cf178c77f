package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSettings_Defaults(t *testing.T) {
	// When
	s, err := LoadSettings("")

	// Then
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", s.Server.Addr())
	assert.Equal(t, 10*time.Second, s.Server.ShutdownTimeout)
	assert.Equal(t, ProviderMemory, s.Store.Provider)
	assert.Equal(t, "info", s.Log.Level)
}

func TestLoadSettings_ValidYAML_PopulatesAllFields(t *testing.T) {
	// Given
	path := writeFile(t, "atlas.yaml", `server:
  host: "0.0.0.0"
  port: 9090
  shutdown_timeout: "3s"
store:
  provider: "duckdb"
  duckdb_path: "/tmp/atlas.db"
export:
  sinks_file: "/etc/atlas/sinks.ini"
  sink: "archive"
log:
  level: "debug"`)

	// When
	s, err := LoadSettings(path)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", s.Server.Addr())
	assert.Equal(t, 3*time.Second, s.Server.ShutdownTimeout)
	assert.Equal(t, StoreSettings{Provider: ProviderDuckDB, DuckDBPath: "/tmp/atlas.db"}, s.Store)
	assert.Equal(t, ExportSettings{SinksFile: "/etc/atlas/sinks.ini", Sink: "archive"}, s.Export)
	assert.Equal(t, "debug", s.Log.Level)
}

func TestLoadSettings_EnvOverridesFile(t *testing.T) {
	// Given
	path := writeFile(t, "atlas.yaml", "server:\n  port: 9090\n")
	t.Setenv("ATLAS_SERVER_PORT", "7070")
	t.Setenv("ATLAS_STORE_PROVIDER", "memory")

	// When
	s, err := LoadSettings(path)

	// Then
	require.NoError(t, err)
	assert.Equal(t, 7070, s.Server.Port)
}

func TestLoadSettings_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid yaml", content: "server: port: bad: value"},
		{name: "unknown provider", content: "store:\n  provider: postgres\n"},
		{name: "bad port", content: "server:\n  port: 70000\n"},
		{name: "sink without file", content: "export:\n  sink: archive\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSettings(writeFile(t, "atlas.yaml", tt.content))
			assert.Error(t, err)
		})
	}

	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

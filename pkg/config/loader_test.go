// pkg/config/loader_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Filesystem (t.TempDir), environment (t.Setenv)
// PURPOSE: Test layered configuration loading and validation

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dohook/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvConfigFile, "")
	return dir
}

func TestLoadConfigurationDefaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfiguration("")
	require.NoError(t, err)

	assert.Equal(t, 128, cfg.Registry.DefaultPriority)
	assert.Empty(t, cfg.Registry.Priority)
	assert.Equal(t, 0, cfg.Log.Verbosity)
	assert.True(t, cfg.Log.File)
	assert.Equal(t, []string{"default"}, cfg.Manager.Tasks)
	assert.Equal(t, cfg, Default())
}

func TestLoadConfigurationFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, `
[registry]
default_priority = 100

[[registry.priority]]
handler = "plugins.announceStartup"
priority = 250

[[registry.priority]]
handler = "audit"
priority = 1

[manager]
tasks = ["nightly", "weekly"]
`)

	cfg, err := LoadConfiguration(path)
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.Registry.DefaultPriority)
	assert.Equal(t, map[string]int{"plugins.announceStartup": 250, "audit": 1}, cfg.Registry.PriorityOverrides())
	assert.Equal(t, []string{"nightly", "weekly"}, cfg.Manager.Tasks)
	assert.True(t, cfg.Log.File, "unset keys keep their defaults")
}

func TestLoadConfigurationDiscovery(t *testing.T) {
	t.Run("env var names the file", func(t *testing.T) {
		dir := isolate(t)
		path := writeConfig(t, dir, "[log]\nverbosity = 2\n")
		t.Setenv(EnvConfigFile, path)

		cfg, err := LoadConfiguration("")
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.Log.Verbosity)
	})

	t.Run("xdg config home", func(t *testing.T) {
		dir := isolate(t)
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "dohook"), 0755))
		writeConfig(t, filepath.Join(dir, "dohook"), "[log]\nfile = false\n")

		cfg, err := LoadConfiguration("")
		require.NoError(t, err)
		assert.False(t, cfg.Log.File)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		dir := isolate(t)

		_, err := LoadConfiguration(filepath.Join(dir, "nope.toml"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})
}

func TestLoadConfigurationEnv(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "[registry]\ndefault_priority = 100\n")

	t.Setenv("DOHOOK_REGISTRY__DEFAULT_PRIORITY", "64")
	t.Setenv("DOHOOK_LOG__VERBOSITY", "3")
	t.Setenv("DOHOOK_MANAGER__TASKS", "a,b")

	cfg, err := LoadConfiguration(path)
	require.NoError(t, err)

	assert.Equal(t, 64, cfg.Registry.DefaultPriority, "env beats file")
	assert.Equal(t, 3, cfg.Log.Verbosity)
	assert.Equal(t, []string{"a", "b"}, cfg.Manager.Tasks)
}

func TestLoadConfigurationParseError(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "[registry\n")

	_, err := LoadConfiguration(path)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg: Config{Registry: Registry{Priority: []PriorityOverride{
				{Handler: "a", Priority: 1},
				{Handler: "b", Priority: 2},
			}}},
		},
		{
			name:    "negative verbosity",
			cfg:     Config{Log: Log{Verbosity: -1}},
			wantErr: true,
		},
		{
			name:    "override without handler",
			cfg:     Config{Registry: Registry{Priority: []PriorityOverride{{Priority: 1}}}},
			wantErr: true,
		},
		{
			name: "duplicate override",
			cfg: Config{Registry: Registry{Priority: []PriorityOverride{
				{Handler: "a", Priority: 1},
				{Handler: "a", Priority: 2},
			}}},
			wantErr: true,
		},
		{
			name:    "empty task name",
			cfg:     Config{Manager: Manager{Tasks: []string{"ok", ""}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "registry.default_priority", envKey("DOHOOK_REGISTRY__DEFAULT_PRIORITY"))
	assert.Equal(t, "", envKey(EnvConfigFile))
}

func TestDecodeDefaults(t *testing.T) {
	cfg, err := decodeDefaults([]byte(GetDefaultConfigContent()))
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.Registry.DefaultPriority)
	assert.NotPanics(t, func() { Default() })

	_, err = decodeDefaults([]byte("[registry\ndefault_priority = "))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))

	_, err = decodeDefaults([]byte("[registry]\ndefault_priority = \"high\"\n"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse), "type mismatch is not silently zeroed")
}

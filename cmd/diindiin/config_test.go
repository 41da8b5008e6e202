package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/diindiin/internal/paths"
	"github.com/mesh-intelligence/diindiin/pkg/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(paths.ConfigFile(dir), []byte(content), 0o644))
	return dir
}

func TestLoadConfig_CreatesDefaultFile(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	dir := filepath.Join(t.TempDir(), "nested", "config")

	v, err := loadConfig(dir)
	require.NoError(t, err)

	data, err := os.ReadFile(paths.ConfigFile(dir))
	require.NoError(t, err)
	var written configFile
	require.NoError(t, yaml.Unmarshal(data, &written))
	assert.Equal(t, types.BackendSQLite, written.Backend)
	assert.Equal(t, "pt", written.DefaultLanguage)
	assert.Equal(t, "America/Sao_Paulo", written.Timezone)
	assert.Equal(t, "15s", written.AI.Timeout)
	assert.Empty(t, written.DataDir)

	s, err := readSettings(v)
	require.NoError(t, err)
	assert.Equal(t, types.Portuguese, s.DefaultLanguage)
	assert.Equal(t, "diindiin_bot", s.BotName)
	assert.Equal(t, 15*time.Second, s.AI.Timeout)
	assert.Equal(t, "warn", s.LogLevel)
	assert.Equal(t, "console", s.LogFormat)
	assert.Empty(t, s.AI.APIKey)
}

func TestLoadConfig_KeepsExistingFile(t *testing.T) {
	const content = "backend: sqlite\ndefault_language: en\n"
	dir := writeConfig(t, content)

	_, err := loadConfig(dir)
	require.NoError(t, err)

	data, err := os.ReadFile(paths.ConfigFile(dir))
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestReadSettings_Overrides(t *testing.T) {
	dir := writeConfig(t, `backend: sqlite
data_dir: /srv/diindiin
default_language: en
timezone: UTC
bot_name: finance_bot
ai:
  model: gpt-4o-mini
  base_url: http://localhost:8080/v1
  timeout: 3s
log:
  level: debug
  format: json
`)
	v, err := loadConfig(dir)
	require.NoError(t, err)

	s, err := readSettings(v)
	require.NoError(t, err)
	assert.Equal(t, "/srv/diindiin", s.DataDir)
	assert.Equal(t, types.English, s.DefaultLanguage)
	assert.Equal(t, "UTC", s.Timezone)
	assert.Equal(t, "finance_bot", s.BotName)
	assert.Equal(t, "gpt-4o-mini", s.AI.Model)
	assert.Equal(t, "http://localhost:8080/v1", s.AI.BaseURL)
	assert.Equal(t, 3*time.Second, s.AI.Timeout)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "json", s.LogFormat)
}

func TestReadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown backend", "backend: postgres\n", "backend"},
		{"unsupported language", "default_language: fr\n", "default_language"},
		{"bad timezone", "timezone: Mars/Olympus\n", "timezone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := loadConfig(writeConfig(t, tt.content))
			require.NoError(t, err)
			_, err = readSettings(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReadSettings_UnknownBackendIsSentinel(t *testing.T) {
	v, err := loadConfig(writeConfig(t, "backend: postgres\n"))
	require.NoError(t, err)
	_, err = readSettings(v)
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}

func TestReadSettings_APIKeyFromEnvironment(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	v, err := loadConfig(t.TempDir())
	require.NoError(t, err)

	s, err := readSettings(v)
	require.NoError(t, err)
	assert.Equal(t, "sk-test", s.AI.APIKey)
}

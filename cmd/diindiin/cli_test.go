package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/diindiin/internal/paths"
	"github.com/mesh-intelligence/diindiin/pkg/sqlite"
)

// cliEnv is an isolated config and data directory pair.
type cliEnv struct {
	ConfigDir string
	DataDir   string
	OutDir    string
}

func newCLIEnv(t *testing.T) cliEnv {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv(paths.EnvConfigDir, "")
	t.Setenv(paths.EnvDataDir, "")
	root := t.TempDir()
	return cliEnv{
		ConfigDir: filepath.Join(root, "config"),
		DataDir:   filepath.Join(root, "data"),
		OutDir:    filepath.Join(root, "out"),
	}
}

// run executes the root command in process and returns stdout.
func (e cliEnv) run(t *testing.T, args ...string) string {
	t.Helper()
	flagConfigDir, flagDataDir = "", ""
	flagChatID, flagUsername, flagName, flagLang, flagOutDir = 1, "", "", "", "."
	conf = settings{}

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--config-dir", e.ConfigDir, "--data-dir", e.DataDir}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute(), "stderr: %s", stderr.String())
	return stdout.String()
}

func TestCLI_Init(t *testing.T) {
	env := newCLIEnv(t)

	out := env.run(t, "init")
	assert.Contains(t, out, "diindiin initialized successfully")

	_, err := os.Stat(paths.ConfigFile(env.ConfigDir))
	assert.NoError(t, err, "config.yaml not created")
	_, err = os.Stat(filepath.Join(env.DataDir, sqlite.DBFileName))
	assert.NoError(t, err, "database not created")
}

func TestCLI_Version(t *testing.T) {
	env := newCLIEnv(t)

	out := env.run(t, "version")
	assert.Contains(t, out, "diindiin v"+version)
	assert.Contains(t, out, modulePath)
	_, err := os.Stat(env.ConfigDir)
	assert.True(t, os.IsNotExist(err), "version must not create the config dir")
}

func TestCLI_SayPersistsAcrossRuns(t *testing.T) {
	env := newCLIEnv(t)
	env.run(t, "init")

	out := env.run(t, "say", "--lang", "en", "--chat-id", "9", "/start")
	assert.Contains(t, out, "Welcome to Diindiin!")

	out = env.run(t, "say", "--lang", "en", "--chat-id", "9", "add", "habit", "gym", "weekly", "3")
	assert.Contains(t, out, "gym")

	out = env.run(t, "say", "--lang", "en", "--chat-id", "9", "/habits")
	assert.Contains(t, out, "gym")

	out = env.run(t, "say", "--chat-id", "10", "/habits")
	assert.Contains(t, out, "/start")
}

func TestCLI_SaySavesDocuments(t *testing.T) {
	env := newCLIEnv(t)
	env.run(t, "say", "--chat-id", "3", "/start")
	env.run(t, "say", "--chat-id", "3", "/add", "25,50", "mercado")

	out := env.run(t, "say", "--chat-id", "3", "--out-dir", env.OutDir, "/reportcsv")
	assert.Contains(t, out, "Relatório CSV gerado")

	files, err := filepath.Glob(filepath.Join(env.OutDir, "*.csv"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

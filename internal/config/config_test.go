package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, "> ", cfg.Prompt)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, logrus.WarnLevel, cfg.Level())
	assert.NoError(t, cfg.Validate())
}

func TestDecodeOverridesDefaults(t *testing.T) {
	yamlData := `
prompt: "lox> "
color: never
log_level: debug
`
	cfg := Defaults()
	require.NoError(t, Decode(strings.NewReader(yamlData), cfg))
	assert.Equal(t, "lox> ", cfg.Prompt)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, logrus.DebugLevel, cfg.Level())
	assert.Equal(t, Defaults().HistoryFile, cfg.HistoryFile)
}

func TestDecodeEmptyDocument(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, Decode(strings.NewReader(""), cfg))
	assert.Equal(t, Defaults(), cfg)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	cfg := Defaults()
	err := Decode(strings.NewReader("promt: x\n"), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "promt")
}

func TestValidateListsEveryProblem(t *testing.T) {
	cfg := Defaults()
	cfg.Color = "sometimes"
	cfg.LogLevel = "loud"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "color: must be one of auto, always, never")
	assert.Contains(t, err.Error(), "log_level:")
	assert.True(t, strings.HasPrefix(err.Error(), "configuration errors:\n  - "))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "golox.yaml")
	require.NoError(t, os.WriteFile(path, []byte("history_file: /tmp/h\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/h", cfg.HistoryFile)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestResolve(t *testing.T) {
	t.Setenv(EnvVar, "/from/env.yaml")
	assert.Equal(t, "/explicit.yaml", Resolve("/explicit.yaml"))
	assert.Equal(t, "/from/env.yaml", Resolve(""))
}

package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"widgetlab/internal/config"
	"widgetlab/internal/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("widgetlab", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags(newFlagSet(), []string{"-config", "c.yaml", "-log", "w.log", "-tab", "async"})
	require.NoError(t, err)
	assert.Equal(t, options{configPath: "c.yaml", logFile: "w.log", tab: "async"}, opts)
}

func TestParseFlags_Errors(t *testing.T) {
	_, err := parseFlags(newFlagSet(), []string{"-nope"})
	assert.Error(t, err)

	_, err = parseFlags(newFlagSet(), []string{"extra"})
	assert.ErrorContains(t, err, `unexpected argument "extra"`)
}

func TestSettings_FlagsOverrideFile(t *testing.T) {
	t.Setenv(config.LogFileEnv, "")
	t.Setenv(config.EndpointEnv, "")
	t.Setenv(config.ServiceNameEnv, "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("start_tab: counter\nlog_file: file.log\n"), 0o644))

	cfg, err := settings(options{configPath: path})
	require.NoError(t, err)
	assert.Equal(t, "counter", cfg.StartTab)
	assert.Equal(t, "file.log", cfg.LogFile)

	cfg, err = settings(options{configPath: path, tab: "list", logFile: "flag.log"})
	require.NoError(t, err)
	assert.Equal(t, "list", cfg.StartTab)
	assert.Equal(t, "flag.log", cfg.LogFile)
}

func TestSettings_RejectsUnknownTab(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := settings(options{configPath: path, tab: "nonsense"})
	assert.ErrorContains(t, err, `start_tab "nonsense"`)
}

func TestStartMode(t *testing.T) {
	tests := []struct {
		name string
		want ui.AppMode
	}{
		{"", ui.ModeHeading},
		{"heading", ui.ModeHeading},
		{"counter", ui.ModeCounter},
		{"Async", ui.ModeAsync},
	}
	for _, tt := range tests {
		got, err := startMode(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	_, err := startMode("nonsense")
	assert.ErrorContains(t, err, `unknown tab "nonsense"`)
}

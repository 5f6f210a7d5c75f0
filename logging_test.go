package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-ladder/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swiss.log")
	require.NoError(t, os.WriteFile(path, []byte("previous run\n"), 0o644))

	closeLog, err := setupLogger(config.LogConfig{Level: "debug", Format: "text", File: path})
	require.NoError(t, err)
	log.Info("Player registered successfully", "id", 1)
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "previous run", "existing entries are kept")
	assert.Contains(t, string(data), "Player registered successfully")
	assert.Equal(t, log.DebugLevel, log.GetLevel())
}

func TestSetupLoggerRejectsBadLevel(t *testing.T) {
	_, err := setupLogger(config.LogConfig{Level: "shouting", Format: "json"})
	assert.Error(t, err)
}

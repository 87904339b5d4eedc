package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("kochi")
	cfg.DataDir = "/tmp/ledger"
	cfg.AppTitle = "Household Book"

	path := filepath.Join(t.TempDir(), Filename)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.DataDir, got.DataDir)
	assert.Equal(t, cfg.AutosaveDelayMS, got.AutosaveDelayMS)
	assert.Equal(t, cfg.PersonName, got.PersonName)
	assert.Equal(t, cfg.AppTitle, got.AppTitle)
}

func TestDefaults(t *testing.T) {
	cfg := Default("me")
	assert.Equal(t, 500, cfg.AutosaveDelayMS)
	assert.Equal(t, 500*time.Millisecond, cfg.AutosaveDelay())
	assert.Equal(t, "me", cfg.PersonName)
	assert.Equal(t, "Bank Management", cfg.AppTitle)
	assert.Empty(t, cfg.DataDir)
}

func TestLoadFillsMissingDelay(t *testing.T) {
	path := filepath.Join(t.TempDir(), Filename)
	require.NoError(t, os.WriteFile(path, []byte("person_name: kochi\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.AutosaveDelayMS)
	assert.Equal(t, "kochi", cfg.PersonName)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), Filename)
	require.NoError(t, Save(path, Default("kochi")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)
	assert.Contains(t, contents, "autosave_delay_ms: 500")
	assert.Contains(t, contents, "person_name: kochi")
	assert.Contains(t, contents, "app_title: Bank Management")
}

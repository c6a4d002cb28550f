package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Listing.PageSize)
	assert.Equal(t, 300*time.Millisecond, cfg.Listing.LoadLatency)
	assert.Equal(t, 300*time.Millisecond, cfg.Listing.DebounceDelay)
	assert.Equal(t, 1000, cfg.Dataset.Users)
	assert.Equal(t, 200, cfg.Dataset.Billings)
	assert.Equal(t, 180*24*time.Hour, cfg.Dataset.History)
	assert.Equal(t, "auto", cfg.UI.Theme)
	assert.Equal(t, 300*time.Millisecond, cfg.UI.ModalCleanupDelay)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "adminboard", cfg.Metrics.Namespace)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "adminboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
listing:
  page_size: 50
  debounce_delay: 150ms
ui:
  theme: dark
`), 0o600))

	t.Setenv("ADMINBOARD_LISTING_PAGE_SIZE", "10")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Listing.PageSize, "env wins over file")
	assert.Equal(t, 150*time.Millisecond, cfg.Listing.DebounceDelay)
	assert.Equal(t, "dark", cfg.UI.Theme)
}

func TestLoadRejectsInvalidTheme(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ADMINBOARD_UI_THEME", "neon")

	_, err := Load("")
	assert.ErrorContains(t, err, "ui.theme")
}

func TestLoadRejectsZeroValuesThatWouldFallBack(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"ADMINBOARD_DATASET_USERS", "dataset.users"},
		{"ADMINBOARD_DATASET_BILLINGS", "dataset.billings"},
		{"ADMINBOARD_LISTING_DEBOUNCE_DELAY", "listing.debounce_delay"},
		{"ADMINBOARD_DATASET_HISTORY", "dataset.history"},
		{"ADMINBOARD_UI_MODAL_CLEANUP_DELAY", "ui.modal_cleanup_delay"},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.env, "0")

			_, err := Load("")
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoadAcceptsZeroLoadLatency(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ADMINBOARD_LISTING_LOAD_LATENCY", "0")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Zero(t, cfg.Listing.LoadLatency)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", LogConfig{Level: "debug"}.SlogLevel().String())
	assert.Equal(t, "WARN", LogConfig{Level: "warning"}.SlogLevel().String())
	assert.Equal(t, "INFO", LogConfig{Level: ""}.SlogLevel().String())
}

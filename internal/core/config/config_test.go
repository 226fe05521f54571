package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		dataDir := t.TempDir()
		cfg, err := Load(filepath.Join(dataDir, "nope.yaml"), dataDir)
		require.NoError(t, err)

		assert.Equal(t, "fixdesk", cfg.Shop.Name)
		assert.Equal(t, defaultTheme, cfg.TUI.Theme)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, dataDir, cfg.DataDir)
	})

	t.Run("values from file override defaults", func(t *testing.T) {
		path := writeConfig(t, `
shop:
  name: Corner Repairs
  operator: sam
tui:
  theme: gruvbox
database:
  busy_timeout: 2s
`)
		cfg, err := Load(path, t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "Corner Repairs", cfg.Shop.Name)
		assert.Equal(t, "sam", cfg.Shop.Operator)
		assert.Equal(t, "gruvbox", cfg.TUI.Theme)
		assert.Equal(t, 2*time.Second, cfg.Database.BusyTimeout)
		// Unset fields keep defaults.
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	})

	t.Run("unknown theme is rejected", func(t *testing.T) {
		path := writeConfig(t, "tui:\n  theme: neon-zebra\n")
		_, err := Load(path, t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "theme")
	})

	t.Run("idle conns cannot exceed open conns", func(t *testing.T) {
		path := writeConfig(t, "database:\n  max_open_conns: 2\n  max_idle_conns: 5\n")
		_, err := Load(path, t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
	})
}

func TestRequireChecklist(t *testing.T) {
	t.Run("defaults to required", func(t *testing.T) {
		var o OrdersConfig
		assert.True(t, o.RequireChecklistEnabled())
	})

	t.Run("explicit false disables", func(t *testing.T) {
		path := writeConfig(t, "orders:\n  require_checklist: false\n")
		cfg, err := Load(path, t.TempDir())
		require.NoError(t, err)
		assert.False(t, cfg.Orders.RequireChecklistEnabled())
	})

	t.Run("explicit true enables", func(t *testing.T) {
		path := writeConfig(t, "orders:\n  require_checklist: true\n")
		cfg, err := Load(path, t.TempDir())
		require.NoError(t, err)
		assert.True(t, cfg.Orders.RequireChecklistEnabled())
	})
}

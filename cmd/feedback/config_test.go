package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := loadConfig("")
		require.NoError(t, err)
		assert.Equal(t, defaultConfig(), cfg)
	})

	t.Run("file overrides only the keys it sets", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "feedback.yaml")
		require.NoError(t, os.WriteFile(path, []byte("rows: 250\noutdir: charts\n"), 0o644))

		cfg, err := loadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 250, cfg.Rows)
		assert.Equal(t, "charts", cfg.OutDir)
		assert.Equal(t, int64(42), cfg.Seed)
		assert.Equal(t, 10, cfg.TopWords)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("rows: [oops"), 0o644))
		_, err := loadConfig(path)
		assert.Error(t, err)
	})
}

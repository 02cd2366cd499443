package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/luavend/pkg/config"
	"github.com/arthur-debert/luavend/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "init.lua", cfg.Entrypoint)
	assert.Equal(t, []string{".lua"}, cfg.Extensions)
	assert.Contains(t, cfg.HostPrefixes, "https://github.com/")
}

func TestLoad(t *testing.T) {
	t.Run("override_merges_with_defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "luavend.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
[files]
entrypoint = "start.lua"
`), 0644))

		cfg, err := config.Load(path)
		require.NoError(t, err)

		assert.Equal(t, "start.lua", cfg.Entrypoint)
		// Untouched keys keep their defaults.
		assert.Equal(t, []string{".lua"}, cfg.Extensions)
		assert.NotEmpty(t, cfg.HostPrefixes)
	})

	t.Run("missing_file_is_config_load_error", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("malformed_file_is_config_load_error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "luavend.toml")
		require.NoError(t, os.WriteFile(path, []byte("[files\n"), 0644))

		_, err := config.Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})
}

func TestGetDefaultConfigContent(t *testing.T) {
	content := config.GetDefaultConfigContent()
	assert.Contains(t, content, "entrypoint")
	assert.Contains(t, content, "prefixes")
}

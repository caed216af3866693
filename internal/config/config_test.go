package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"WELLBEING_SEED", "WELLBEING_LOG_LEVEL", "WELLBEING_LOG_OUTPUT", "WELLBEING_NO_ANIMATION"} {
		t.Setenv(k, "")
	}
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed_path: /tmp/seed.yaml\nlogging:\n  level: debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/seed.yaml", cfg.SeedPath)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "stderr", cfg.Logging.Output, "unset keys keep defaults")
	assert.True(t, cfg.UI.Animations)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("log level and output", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("WELLBEING_LOG_LEVEL", "info")
		t.Setenv("WELLBEING_LOG_OUTPUT", "/tmp/wellbeing.log")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, "/tmp/wellbeing.log", cfg.Logging.Output)
	})

	t.Run("seed path", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("WELLBEING_SEED", "/etc/wellbeing/seed.yaml")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "/etc/wellbeing/seed.yaml", cfg.SeedPath)
	})

	t.Run("animations off", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("WELLBEING_NO_ANIMATION", "1")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.False(t, cfg.UI.Animations)
	})

	t.Run("false keeps animations", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("WELLBEING_NO_ANIMATION", "false")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.True(t, cfg.UI.Animations)
	})

	t.Run("invalid level is rejected", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("WELLBEING_LOG_LEVEL", "loud")

		_, err := Load("")
		assert.Error(t, err)
	})
}

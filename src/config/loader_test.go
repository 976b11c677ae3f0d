package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	loader := NewLoader()

	cfg, err := loader.Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
analysis:
  default_input_size: 64
  max_input_size: 4096
  metric_sizes: [5, 50]
output:
  formats: [markdown]
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, 64, cfg.Analysis.DefaultInputSize)
	assert.Equal(t, 4096, cfg.Analysis.MaxInputSize)
	assert.Equal(t, []int{5, 50}, cfg.Analysis.MetricSizes)
	assert.Equal(t, []string{"markdown"}, cfg.Output.Formats)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// untouched sections keep defaults
	assert.Equal(t, "bigo-sim", cfg.Agent.Name)
}

func TestLoadExpandsEnvVars(t *testing.T) {
	t.Setenv("BIGOSIM_TEST_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
logging:
  level: ${BIGOSIM_TEST_LEVEL}
  file: ${BIGOSIM_TEST_UNSET:-/tmp/bigo-sim.log}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "/tmp/bigo-sim.log", cfg.Logging.File)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("analysis: [not a map"), 0644))

	_, err := NewLoader().Load(path)
	assert.Error(t, err)
}

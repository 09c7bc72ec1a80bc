package nayose

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig
	require.Nil(t, cfg.Validate())

	cfg = DefaultConfig
	cfg.LevenshteinThreshold = 1.5
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig
	cfg.JaroWinklerThreshold = -0.1
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig
	cfg.NgramCosineThreshold = 2
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig
	cfg.NgramSize = -1
	require.Error(t, cfg.Validate())
}

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	require.EqualValues(t, DefaultConfig, cfg)

	// set fields survive
	cfg = Config{JaroWinklerThreshold: 0.9}
	cfg.ApplyDefaults()
	require.EqualValues(t, 0.9, cfg.JaroWinklerThreshold)
	require.EqualValues(t, DefaultThreshold, cfg.LevenshteinThreshold)
	require.EqualValues(t, DefaultNgramSize, cfg.NgramSize)
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thresholds.yaml")
	require.Nil(t, GenerateSample(path))

	cfg, err := NewConfig(path)
	require.Nil(t, err)
	require.EqualValues(t, DefaultConfig, *cfg)
}

func TestConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thresholds.yaml")
	require.Nil(t, os.WriteFile(path, []byte("ngram_cosine_threshold: 0.9\n"), 0644))

	cfg, err := NewConfig(path)
	require.Nil(t, err)
	// unset fields fall back to defaults
	require.EqualValues(t, 0.9, cfg.NgramCosineThreshold)
	require.EqualValues(t, DefaultThreshold, cfg.LevenshteinThreshold)
	require.EqualValues(t, DefaultThreshold, cfg.JaroWinklerThreshold)
	require.EqualValues(t, DefaultNgramSize, cfg.NgramSize)
}

func TestConfigMissingFile(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}

package nayose

import (
	"os"

	errorutil "github.com/projectdiscovery/utils/errors"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultThreshold is the edge cutoff shared by all metrics unless
	// overridden in config
	DefaultThreshold = 0.7
	// DefaultNgramSize is the character n-gram width of the cosine metric
	DefaultNgramSize = 2
)

// Config holds the per metric edge thresholds and the n-gram width. A
// token pair becomes an edge when any single metric reaches its threshold.
type Config struct {
	LevenshteinThreshold float64 `yaml:"levenshtein_threshold"`
	JaroWinklerThreshold float64 `yaml:"jaro_winkler_threshold"`
	NgramCosineThreshold float64 `yaml:"ngram_cosine_threshold"`
	NgramSize            int     `yaml:"ngram_size"`
}

// DefaultConfig is used whenever Options.Config is nil. The cli replaces
// it with the user level threshold file on startup if one exists.
var DefaultConfig = Config{
	LevenshteinThreshold: DefaultThreshold,
	JaroWinklerThreshold: DefaultThreshold,
	NgramCosineThreshold: DefaultThreshold,
	NgramSize:            DefaultNgramSize,
}

// NewConfig reads config from file
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}

// GenerateSample creates a sample yaml file with default values
func GenerateSample(filePath string) error {
	bin, err := yaml.Marshal(DefaultConfig)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}

// ApplyDefaults fills zero fields so partial config files keep the
// remaining metrics usable. An explicit zero threshold reads as unset.
func (c *Config) ApplyDefaults() {
	if c.LevenshteinThreshold == 0 {
		c.LevenshteinThreshold = DefaultThreshold
	}
	if c.JaroWinklerThreshold == 0 {
		c.JaroWinklerThreshold = DefaultThreshold
	}
	if c.NgramCosineThreshold == 0 {
		c.NgramCosineThreshold = DefaultThreshold
	}
	if c.NgramSize == 0 {
		c.NgramSize = DefaultNgramSize
	}
}

// Validate rejects unusable settings before any scoring happens.
func (c *Config) Validate() error {
	if c.LevenshteinThreshold < 0 || c.LevenshteinThreshold > 1 {
		return errorutil.NewWithTag("nayose", "levenshtein_threshold %v is out of range [0,1]", c.LevenshteinThreshold)
	}
	if c.JaroWinklerThreshold < 0 || c.JaroWinklerThreshold > 1 {
		return errorutil.NewWithTag("nayose", "jaro_winkler_threshold %v is out of range [0,1]", c.JaroWinklerThreshold)
	}
	if c.NgramCosineThreshold < 0 || c.NgramCosineThreshold > 1 {
		return errorutil.NewWithTag("nayose", "ngram_cosine_threshold %v is out of range [0,1]", c.NgramCosineThreshold)
	}
	if c.NgramSize < 1 {
		return errorutil.NewWithTag("nayose", "ngram_size must be at least 1, got %v", c.NgramSize)
	}
	return nil
}

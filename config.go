package genericdate

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the file form of the parser options.
type Config struct {
	// DatePatterns and TimePatterns replace the built-in lists.
	DatePatterns []string `yaml:"date_patterns"`
	TimePatterns []string `yaml:"time_patterns"`
	// The extra patterns go in front of the lists, in the given order.
	ExtraDatePatterns []string `yaml:"extra_date_patterns"`
	ExtraTimePatterns []string `yaml:"extra_time_patterns"`
	SuffixThreshold   int      `yaml:"suffix_threshold"`
	// Timezone is an IANA name, "Local" or "UTC". Empty means Local.
	Timezone string `yaml:"timezone"`
}

// DefaultConfig returns the configuration NewParser uses without options.
func DefaultConfig() *Config {
	return &Config{
		DatePatterns:    DefaultDatePatterns(),
		TimePatterns:    DefaultTimePatterns(),
		SuffixThreshold: DefaultSuffixThreshold,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("genericdate: reading config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("genericdate: parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ParserOptions converts the configuration for NewParser. Patterns are
// validated when the options are applied.
func (c *Config) ParserOptions() ([]ParserOption, error) {
	loc := time.Local
	if c.Timezone != "" {
		var err error
		if loc, err = time.LoadLocation(c.Timezone); err != nil {
			return nil, fmt.Errorf("genericdate: timezone %q: %w", c.Timezone, err)
		}
	}

	dates := c.DatePatterns
	if len(dates) == 0 {
		dates = defaultDatePatterns
	}
	times := c.TimePatterns
	if len(times) == 0 {
		times = defaultTimePatterns
	}
	return []ParserOption{
		WithLocation(loc),
		WithSuffixThreshold(c.SuffixThreshold),
		WithDatePatterns(append(append([]string(nil), c.ExtraDatePatterns...), dates...)...),
		WithTimePatterns(append(append([]string(nil), c.ExtraTimePatterns...), times...)...),
	}, nil
}

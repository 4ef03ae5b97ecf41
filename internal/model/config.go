package model

import (
	"fmt"
	"time"
)

// Config holds the runtime settings for a cutr run.
// Selections are taken from the command line only and are never persisted.
type Config struct {
	Delimiter     string          `yaml:"delimiter" mapstructure:"delimiter"`
	OnlyDelimited bool            `yaml:"only_delimited" mapstructure:"only_delimited"`
	Memo          MemoConfig      `yaml:"memo" mapstructure:"memo"`
	RateLimit     RateLimitConfig `yaml:"rate_limit" mapstructure:"rate_limit"`
	Verbose       bool            `yaml:"verbose" mapstructure:"verbose"`

	Selections []Selection `yaml:"-" mapstructure:"-"`
}

// MemoConfig controls caching of per-line extraction results
type MemoConfig struct {
	Enabled         bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL             time.Duration `yaml:"ttl" mapstructure:"ttl"`                           // 0 keeps entries for the whole run
	CleanupInterval time.Duration `yaml:"cleanup_interval" mapstructure:"cleanup_interval"` // 0 disables the janitor
}

// RateLimitConfig throttles output lines
type RateLimitConfig struct {
	LinesPerSecond float64 `yaml:"lines_per_second" mapstructure:"lines_per_second"` // 0 = unlimited
	Burst          int     `yaml:"burst" mapstructure:"burst"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Delimiter: "\t",
		Memo: MemoConfig{
			Enabled: false,
		},
		RateLimit: RateLimitConfig{
			LinesPerSecond: 0,
			Burst:          1,
		},
	}
}

// DelimiterByte returns the configured delimiter as a single byte.
func (c *Config) DelimiterByte() (byte, error) {
	if len(c.Delimiter) != 1 {
		return 0, ConfigErrorf("--delim \"%s\" must be a single byte", c.Delimiter)
	}
	return c.Delimiter[0], nil
}

// Validate checks settings that do not depend on the selected mode.
func (c *Config) Validate() error {
	if _, err := c.DelimiterByte(); err != nil {
		return err
	}
	if c.RateLimit.LinesPerSecond < 0 {
		return ConfigErrorf("rate limit must not be negative (got %v)", c.RateLimit.LinesPerSecond)
	}
	if c.Memo.TTL < 0 {
		return ConfigErrorf("memo ttl must not be negative (got %v)", c.Memo.TTL)
	}
	return nil
}

// String is used in verbose diagnostics
func (c *Config) String() string {
	return fmt.Sprintf("delimiter=%q only_delimited=%v memo=%v rate=%v",
		c.Delimiter, c.OnlyDelimited, c.Memo.Enabled, c.RateLimit.LinesPerSecond)
}

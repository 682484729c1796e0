// Package config loads the optional bankconverter.yaml and environment
// overrides. With neither present the defaults reproduce the built-in
// ~/BankConverter layout polled every five seconds.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the base directory.
const FileName = "bankconverter.yaml"

// Environment variables that override file settings.
const (
	EnvBaseDir  = "BANKCONVERTER_BASE_DIR"
	EnvInterval = "BANKCONVERTER_INTERVAL"
	EnvLogLevel = "BANKCONVERTER_LOG_LEVEL"
)

// Defaults.
const (
	DefaultDirName  = "BankConverter"
	DefaultInterval = 5 * time.Second
	DefaultPattern  = "*.csv"
	DefaultLogFile  = "log.txt"
	DefaultLogLevel = "info"
)

// Configuration validation errors.
var (
	ErrMissingBaseDir  = errors.New("base_dir is required")
	ErrInvalidInterval = errors.New("watch.interval must be positive")
	ErrInvalidPattern  = errors.New("watch.pattern is not a valid glob")
	ErrInvalidForget   = errors.New("watch.forget_after must be non-negative")
	ErrInvalidLogFile  = errors.New("logging.file must be a plain file name")
	ErrInvalidLogLevel = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents bankconverter.yaml.
type Config struct {
	BaseDir string        `yaml:"base_dir,omitempty"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

// WatchConfig controls the polling loop.
type WatchConfig struct {
	Interval    Duration `yaml:"interval"`
	Pattern     string   `yaml:"pattern"`
	ForgetAfter Duration `yaml:"forget_after,omitempty"` // 0 = remember for the whole run
}

// LoggingConfig controls the activity log.
type LoggingConfig struct {
	File  string `yaml:"file"` // relative to base_dir
	Level string `yaml:"level"`
}

// Duration is a time.Duration written as "5s" in YAML.
type Duration time.Duration

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// DefaultBaseDir returns ~/BankConverter, or ./BankConverter when the home
// directory is unknown.
func DefaultBaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultDirName
	}
	return filepath.Join(home, DefaultDirName)
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BaseDir: DefaultBaseDir(),
		Watch: WatchConfig{
			Interval: Duration(DefaultInterval),
			Pattern:  DefaultPattern,
		},
		Logging: LoggingConfig{
			File:  DefaultLogFile,
			Level: DefaultLogLevel,
		},
	}
}

// Load reads a config file from disk on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOptional is Load, returning the defaults when path does not exist.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// LoadDotEnv loads .env files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg from environment variables found via lookup.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvBaseDir); ok && v != "" {
		cfg.BaseDir = v
	}
	if v, ok := lookup(EnvInterval); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvInterval, err)
		}
		cfg.Watch.Interval = Duration(d)
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Logging.Level = v
	}
	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.BaseDir == "" {
		return ErrMissingBaseDir
	}
	if c.Watch.Interval <= 0 {
		return ErrInvalidInterval
	}
	if _, err := filepath.Match(c.Watch.Pattern, ""); err != nil || c.Watch.Pattern == "" {
		return ErrInvalidPattern
	}
	if c.Watch.ForgetAfter < 0 {
		return ErrInvalidForget
	}
	if c.Logging.File == "" || filepath.Base(c.Logging.File) != c.Logging.File {
		return ErrInvalidLogFile
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	return nil
}

// LogPath returns the absolute log file location.
func (c *Config) LogPath() string {
	return filepath.Join(c.BaseDir, c.Logging.File)
}

// Package config provides configuration management for subsea using Viper
// for loading from files, environment variables, and command-line flags.
//
// The configuration locates puzzle input files, selects the result output
// format and configures logging. Values come from .subsea.yml, SUBSEA_
// prefixed environment variables, and bound CLI flags.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	suberrors "github.com/conneroisu/subsea/internal/errors"
	"github.com/conneroisu/subsea/internal/logging"
)

type Config struct {
	Input  InputConfig  `yaml:"input" mapstructure:"input"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

type InputConfig struct {
	Dir     string         `yaml:"dir" mapstructure:"dir"`
	Pattern string         `yaml:"pattern" mapstructure:"pattern"`
	Files   map[int]string `yaml:"files,omitempty" mapstructure:"files"`
}

type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
}

type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Supported output formats.
var OutputFormats = []string{"text", "json", "yaml"}

const (
	DefaultInputDir     = "./inputs"
	DefaultInputPattern = "day%02d.txt"
)

// Load reads the configuration from viper. Defaults are registered first so
// that SUBSEA_ environment variables are seen for keys no file sets.
func Load() (*Config, error) {
	registerDefaults()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, suberrors.NewConfigError(suberrors.ErrCodeConfigInvalid, "failed to decode configuration: "+err.Error())
	}

	// Flags bound under dotted keys are not always visible to Unmarshal.
	if viper.IsSet("output.format") {
		config.Output.Format = viper.GetString("output.format")
	}
	if viper.IsSet("log.level") {
		config.Log.Level = viper.GetString("log.level")
	}

	applyDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, suberrors.NewConfigError(suberrors.ErrCodeConfigInvalid, "invalid configuration: "+err.Error())
	}

	return &config, nil
}

func registerDefaults() {
	viper.SetDefault("input.dir", DefaultInputDir)
	viper.SetDefault("input.pattern", DefaultInputPattern)
	viper.SetDefault("output.format", "text")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
}

// Default returns a configuration with every default applied.
func Default() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

func applyDefaults(config *Config) {
	if config.Input.Dir == "" {
		config.Input.Dir = DefaultInputDir
	}
	if config.Input.Pattern == "" {
		config.Input.Pattern = DefaultInputPattern
	}
	if config.Input.Files == nil {
		config.Input.Files = make(map[int]string)
	}
	if config.Output.Format == "" {
		config.Output.Format = "text"
	}
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if config.Log.Format == "" {
		config.Log.Format = "text"
	}
}

// InputPath resolves the input file for a day: an explicit entry in
// input.files wins, otherwise input.pattern is expanded inside input.dir.
func (c *Config) InputPath(day int) string {
	if path, ok := c.Input.Files[day]; ok && path != "" {
		return path
	}
	return filepath.Join(c.Input.Dir, fmt.Sprintf(c.Input.Pattern, day))
}

// LoggerConfig converts the log section into a logging configuration.
func (c *Config) LoggerConfig() (*logging.LoggerConfig, error) {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	lc := logging.DefaultConfig()
	lc.Level = level
	lc.Format = c.Log.Format
	return lc, nil
}

// validateConfig validates configuration values for security and correctness
func validateConfig(config *Config) error {
	if err := validateInputConfig(&config.Input); err != nil {
		return fmt.Errorf("input config: %w", err)
	}

	if !isOneOf(config.Output.Format, OutputFormats) {
		return fmt.Errorf("output format %q must be one of: %s",
			config.Output.Format, strings.Join(OutputFormats, ", "))
	}

	if _, err := logging.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("log config: %w", err)
	}
	if !isOneOf(config.Log.Format, []string{"text", "json"}) {
		return fmt.Errorf("log config: format %q must be text or json", config.Log.Format)
	}

	return nil
}

func validateInputConfig(config *InputConfig) error {
	if err := validatePath(config.Dir); err != nil {
		return fmt.Errorf("invalid dir '%s': %w", config.Dir, err)
	}

	if strings.ContainsAny(config.Pattern, `/\`) {
		return fmt.Errorf("pattern %q must be a file name, not a path", config.Pattern)
	}
	if countDayVerbs(config.Pattern) != 1 {
		return fmt.Errorf("pattern %q must contain exactly one %%d verb", config.Pattern)
	}

	for day, path := range config.Files {
		if day < 1 || day > 25 {
			return fmt.Errorf("files: day %d is outside 1-25", day)
		}
		if path == "" {
			return fmt.Errorf("files: day %d has an empty path", day)
		}
	}

	return nil
}

// validatePath validates a directory path for security
func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}

	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path contains traversal: %s", path)
	}

	dangerousChars := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'"}
	for _, char := range dangerousChars {
		if strings.Contains(cleanPath, char) {
			return fmt.Errorf("path contains dangerous character: %s", char)
		}
	}

	return nil
}

// countDayVerbs counts integer verbs such as %d or %02d in pattern. Any
// other verb makes the pattern unusable and yields -1.
func countDayVerbs(pattern string) int {
	count := 0
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			continue
		}
		i++
		if i < len(pattern) && pattern[i] == '%' {
			continue
		}
		for i < len(pattern) && strings.IndexByte("0123456789+- #", pattern[i]) >= 0 {
			i++
		}
		if i >= len(pattern) || pattern[i] != 'd' {
			return -1
		}
		count++
	}
	return count
}

func isOneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

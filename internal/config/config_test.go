package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	suberrors "github.com/conneroisu/subsea/internal/errors"
	"github.com/conneroisu/subsea/internal/logging"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		setup       func()
		expectError bool
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:  "defaults",
			setup: func() { viper.Reset() },
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultInputDir, cfg.Input.Dir)
				assert.Equal(t, DefaultInputPattern, cfg.Input.Pattern)
				assert.Equal(t, "text", cfg.Output.Format)
				assert.Equal(t, "info", cfg.Log.Level)
				assert.Equal(t, "text", cfg.Log.Format)
				assert.NotNil(t, cfg.Input.Files)
			},
		},
		{
			name: "custom values",
			setup: func() {
				viper.Reset()
				viper.Set("input.dir", "puzzles")
				viper.Set("input.pattern", "%d.in")
				viper.Set("output.format", "json")
				viper.Set("log.level", "debug")
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "puzzles", cfg.Input.Dir)
				assert.Equal(t, "%d.in", cfg.Input.Pattern)
				assert.Equal(t, "json", cfg.Output.Format)
				assert.Equal(t, "debug", cfg.Log.Level)
			},
		},
		{
			name: "per-day file override",
			setup: func() {
				viper.Reset()
				viper.Set("input.files", map[string]interface{}{"3": "diag.txt"})
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "diag.txt", cfg.InputPath(3))
			},
		},
		{
			name: "invalid output format",
			setup: func() {
				viper.Reset()
				viper.Set("output.format", "xml")
			},
			expectError: true,
		},
		{
			name: "invalid log level",
			setup: func() {
				viper.Reset()
				viper.Set("log.level", "chatty")
			},
			expectError: true,
		},
		{
			name: "path traversal in input dir",
			setup: func() {
				viper.Reset()
				viper.Set("input.dir", "../../etc")
			},
			expectError: true,
		},
		{
			name: "pattern without day verb",
			setup: func() {
				viper.Reset()
				viper.Set("input.pattern", "input.txt")
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer viper.Reset()

			cfg, err := Load()
			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, cfg)
				assert.True(t, suberrors.HasCode(err, suberrors.ErrCodeConfigInvalid))
				assert.Equal(t, 4, suberrors.ExitCode(err))
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.check(t, cfg)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	dir := t.TempDir()
	path := filepath.Join(dir, ".subsea.yml")
	content := `input:
  dir: data
  pattern: "input%02d.txt"
output:
  format: yaml
log:
  level: warn
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("data", "input03.txt"), cfg.InputPath(3))
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestInputPath(t *testing.T) {
	cfg := Default()
	assert.Equal(t, filepath.Join("inputs", "day03.txt"), cfg.InputPath(3))
	assert.Equal(t, filepath.Join("inputs", "day12.txt"), cfg.InputPath(12))

	cfg.Input.Files[1] = "/tmp/sonar.txt"
	assert.Equal(t, "/tmp/sonar.txt", cfg.InputPath(1))
}

func TestLoggerConfig(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	lc, err := cfg.LoggerConfig()
	require.NoError(t, err)
	assert.Equal(t, logging.LevelDebug, lc.Level)
	assert.Equal(t, "json", lc.Format)

	cfg.Log.Level = "nope"
	_, err = cfg.LoggerConfig()
	assert.Error(t, err)
}

func TestCountDayVerbs(t *testing.T) {
	tests := []struct {
		pattern string
		want    int
	}{
		{"day%02d.txt", 1},
		{"%d", 1},
		{"100%%-%d", 1},
		{"%d-%d", 2},
		{"input.txt", 0},
		{"day%s.txt", -1},
		{"day%", -1},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, countDayVerbs(tt.pattern))
		})
	}
}

func TestValidatePath(t *testing.T) {
	assert.NoError(t, validatePath("./inputs"))
	assert.NoError(t, validatePath("/var/lib/subsea"))
	assert.Error(t, validatePath(""))
	assert.Error(t, validatePath("../secrets"))
	assert.Error(t, validatePath("inputs;rm -rf"))
}

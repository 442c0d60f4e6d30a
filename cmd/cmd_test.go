package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/subsea/internal/config"
	suberrors "github.com/conneroisu/subsea/internal/errors"
	"github.com/conneroisu/subsea/internal/logging"
	"github.com/conneroisu/subsea/internal/puzzle"
)

const diagnosticSample = `00100
11110
10110
10111
10101
01111
00111
11100
10000
11001
00010
01010
`

const sonarSample = "199\n200\n208\n210\n200\n207\n240\n269\n260\n263\n"

// execute runs the root command with args against fresh global state.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	bindFlags()
	t.Cleanup(viper.Reset)

	cfgFile = ""
	diagnosticTrace = false
	watchVerbose = false
	versionFormat = "text"
	versionShort = false
	for name, def := range map[string]string{"output": "text", "log-level": "info"} {
		flag := rootCmd.PersistentFlags().Lookup(name)
		require.NoError(t, flag.Value.Set(def))
		flag.Changed = false
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSolveCommand(t *testing.T) {
	path := writeInput(t, t.TempDir(), "day03.txt", diagnosticSample)

	out, err := execute(t, "solve", "3", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Day 3: Binary Diagnostic")
	assert.Contains(t, out, "Power consumption: 198")
	assert.Contains(t, out, "Life support rating: 230")
}

func TestSolveCommandJSON(t *testing.T) {
	path := writeInput(t, t.TempDir(), "day03.txt", diagnosticSample)

	out, err := execute(t, "solve", "3", path, "-o", "json")
	require.NoError(t, err)

	var result puzzle.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 3, result.Day)
	assert.Equal(t, []puzzle.Part{
		{Label: "Power consumption", Value: 198},
		{Label: "Life support rating", Value: 230},
	}, result.Parts)
}

func TestSolveUsesConfiguredInputDir(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "day01.txt", sonarSample)
	t.Setenv("SUBSEA_INPUT_DIR", dir)

	out, err := execute(t, "solve", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Increases: 7")
	assert.Contains(t, out, "Window increases: 5")
}

func TestSolveWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "sonar-1.txt", sonarSample)
	cfg := writeInput(t, dir, "subsea.yml", "input:\n  dir: "+dir+"\n  pattern: sonar-%d.txt\noutput:\n  format: yaml\n")

	out, err := execute(t, "--config", cfg, "solve", "1")
	require.NoError(t, err)

	var result puzzle.Result
	require.NoError(t, yaml.Unmarshal([]byte(out), &result))
	assert.Equal(t, "Sonar Sweep", result.Name)
	assert.Equal(t, int64(7), result.Parts[0].Value)
}

func TestSolveErrors(t *testing.T) {
	dir := t.TempDir()
	bad := writeInput(t, dir, "bad.txt", "101\n1x1\n")

	tests := []struct {
		name string
		args []string
		code string
		exit int
	}{
		{name: "non numeric day", args: []string{"solve", "three"}, code: suberrors.ErrCodeUnknownDay, exit: 2},
		{name: "unregistered day", args: []string{"solve", "9", bad}, code: suberrors.ErrCodeUnknownDay, exit: 2},
		{name: "missing file", args: []string{"solve", "3", filepath.Join(dir, "nope.txt")}, code: suberrors.ErrCodeInputRead, exit: 3},
		{name: "malformed record", args: []string{"solve", "3", bad}, code: suberrors.ErrCodeMalformedRecord, exit: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.True(t, suberrors.HasCode(err, tt.code), "got %v", err)
			assert.Equal(t, tt.exit, suberrors.ExitCode(err))
		})
	}
}

func TestInvalidConfigFromEnvironment(t *testing.T) {
	t.Setenv("SUBSEA_OUTPUT_FORMAT", "xml")

	_, err := execute(t, "list")
	require.Error(t, err)
	assert.Equal(t, 4, suberrors.ExitCode(err))
}

func TestOutputFlagValidation(t *testing.T) {
	_, err := execute(t, "list", "-o", "js")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "json"`)

	_, err = execute(t, "list", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of: text, json, yaml")
}

func TestDiagnosticCommand(t *testing.T) {
	path := writeInput(t, t.TempDir(), "day03.txt", diagnosticSample)

	t.Run("text with trace", func(t *testing.T) {
		out, err := execute(t, "diagnostic", path, "--trace")
		require.NoError(t, err)

		assert.Contains(t, out, "Gamma rate")
		assert.Contains(t, out, "Filter majority/tie=1 -> 10111 (23)")
		assert.Contains(t, out, "Filter minority/tie=0 -> 01010 (10)")
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := execute(t, "diagnostic", path, "--trace", "-o", "yaml")
		require.NoError(t, err)

		var got struct {
			GammaRate         uint64 `yaml:"gamma_rate"`
			LifeSupportRating uint64 `yaml:"life_support_rating"`
			OxygenTrace       struct {
				Record string `yaml:"record"`
				Rounds []struct {
					Column int `yaml:"column"`
				} `yaml:"rounds"`
			} `yaml:"oxygen_trace"`
		}
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.Equal(t, uint64(22), got.GammaRate)
		assert.Equal(t, uint64(230), got.LifeSupportRating)
		assert.Equal(t, "10111", got.OxygenTrace.Record)
		assert.Len(t, got.OxygenTrace.Rounds, 5)
	})

	t.Run("json without trace", func(t *testing.T) {
		out, err := execute(t, "diagnostic", path, "-o", "json")
		require.NoError(t, err)

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.EqualValues(t, 198, got["power_consumption"])
		assert.NotContains(t, got, "oxygen_trace")
	})
}

func TestListCommand(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "day03.txt", diagnosticSample)
	t.Setenv("SUBSEA_INPUT_DIR", dir)

	out, err := execute(t, "list", "-o", "json")
	require.NoError(t, err)

	var entries []listEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 4)
	for i, e := range entries {
		assert.Equal(t, i+1, e.Day)
		assert.Equal(t, e.Day == 3, e.Present)
	}

	out, err = execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Giant Squid")
	assert.Contains(t, out, "(missing)")
}

func TestConfigShowCommand(t *testing.T) {
	out, err := execute(t, "config", "show")
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, config.DefaultInputDir, cfg.Input.Dir)
	assert.Equal(t, config.DefaultInputPattern, cfg.Input.Pattern)
	assert.Equal(t, "text", cfg.Output.Format)

	out, err = execute(t, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version", "--format", "json")
	require.NoError(t, err)

	var info map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Contains(t, info, "version")
	assert.Contains(t, info, "go_version")

	out, err = execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "subsea\n"))

	_, err = execute(t, "version", "--format", "xml")
	assert.Error(t, err)
}

func TestRenderResultGroupsDigits(t *testing.T) {
	result := &puzzle.Result{Day: 4, Name: "Giant Squid"}
	result.Add("First winner score", 4512)

	var out bytes.Buffer
	require.NoError(t, renderResult(&out, "text", result))
	assert.Equal(t, "Day 4: Giant Squid\n  First winner score: 4,512\n", out.String())
}

func TestResolveHandler(t *testing.T) {
	dir := t.TempDir()
	path := writeInput(t, dir, "day03.txt", diagnosticSample)
	a := &app{
		cfg:      config.Default(),
		logger:   logging.NopLogger{},
		registry: newRegistry(logging.NopLogger{}),
	}

	var out bytes.Buffer
	handler := resolveHandler(a, 3, path, &out)
	require.NoError(t, handler(context.Background(), nil))
	assert.Contains(t, out.String(), "Life support rating: 230")

	// A broken save is reported and the handler keeps going.
	writeInput(t, dir, "day03.txt", "10\n1\n")
	out.Reset()
	require.NoError(t, handler(context.Background(), nil))
	assert.Contains(t, out.String(), "Error:")
}

func TestParseDay(t *testing.T) {
	day, err := parseDay(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, 3, day)

	for _, arg := range []string{"0", "26", "-1", "x"} {
		_, err := parseDay(arg)
		assert.True(t, suberrors.HasCode(err, suberrors.ErrCodeUnknownDay), arg)
	}
}

func TestSolveErrorCarriesInputPath(t *testing.T) {
	bad := writeInput(t, t.TempDir(), "day03.txt", "101\n1x1\n")

	_, err := execute(t, "solve", "3", bad)
	require.Error(t, err)

	var se *suberrors.SubseaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, bad, se.FilePath)
	assert.Equal(t, 2, se.Line)
}

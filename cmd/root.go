// Package cmd provides the command-line interface for subsea with
// configuration management supporting multiple configuration sources.
//
// Configuration System:
//
//	The CLI supports configuration through multiple sources with clear precedence:
//	1. Command-line flags (--config, --output, --log-level) - highest priority
//	2. SUBSEA_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (SUBSEA_INPUT_DIR, etc.)
//	4. Configuration files (.subsea.yml) - lowest priority
//
// Environment Variables:
//
//	SUBSEA_CONFIG_FILE: Path to custom configuration file
//	SUBSEA_INPUT_DIR: Directory holding puzzle inputs
//	SUBSEA_INPUT_PATTERN: File name pattern, e.g. day%02d.txt
//	SUBSEA_OUTPUT_FORMAT: text, json or yaml
//	SUBSEA_LOG_LEVEL: debug, info, warn or error
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	suberrors "github.com/conneroisu/subsea/internal/errors"
	"github.com/conneroisu/subsea/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "subsea",
	Short: "Daily puzzle solvers for the submarine's systems",
	Long: `subsea reads puzzle input files and prints the answers for each day.

Solvers:
  1  Sonar Sweep         depth increase counting
  2  Dive!               movement command accumulation
  3  Binary Diagnostic   power consumption and life support rating
  4  Giant Squid         bingo board scoring

Quick Start:
  subsea solve 3                  Solve day 3 using inputs/day03.txt
  subsea solve 3 my-input.txt     Solve day 3 using a specific file
  subsea diagnostic --trace       Full diagnostic report with filter rounds
  subsea watch 3                  Re-solve day 3 whenever its input changes
  subsea list                     List available days`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// Interrupts cancel the command's context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		reportError(ctx, err)
	}
	return err
}

// reportError logs err through the error handler and prints it for the user.
func reportError(ctx context.Context, err error) {
	suberrors.NewErrorHandler(logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.LevelDebug,
		Format: "text",
		Output: os.Stderr,
	}).WithComponent("cli")).Handle(ctx, err)
	fmt.Fprintln(os.Stderr, suberrors.FormatSuggestions("Error: "+err.Error(), suberrors.Suggest(err)))
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .subsea.yml, can also use SUBSEA_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().VarP(newFormatValue("text"), "output", "o", "output format (text, json, yaml)")

	bindFlags()
}

// bindFlags binds persistent flags to their configuration keys.
func bindFlags() {
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("output"))
}

// initConfig initializes the configuration system with support for multiple config sources.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag: Explicitly specified config file path
//  2. SUBSEA_CONFIG_FILE environment variable: Custom config file path
//  3. Default: .subsea.yml in current directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("SUBSEA_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".subsea")
	}

	viper.SetEnvPrefix("SUBSEA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine; defaults apply.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

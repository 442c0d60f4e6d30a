package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect subsea configuration",
	Long: `Inspect subsea configuration files and settings.

Examples:
  subsea config show                         # Show resolved configuration
  subsea config validate                     # Validate .subsea.yml
  subsea config validate --config other.yml  # Validate a specific file`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Display the configuration after loading the configuration file,
applying environment variable overrides, flags and defaults. Output is
YAML unless --output json is given.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigValidate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if a.cfg.Output.Format == "json" {
		_, err := writeStructured(out, "json", a.cfg)
		return err
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(a.cfg); err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}
	return enc.Close()
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid")
	a.logger.Debug(cmd.Context(), "configuration validated",
		"input_dir", a.cfg.Input.Dir, "pattern", a.cfg.Input.Pattern)
	return nil
}

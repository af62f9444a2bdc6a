package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/addondocs/cli/internal/config"
	"github.com/addondocs/cli/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long: `Manage the addon-docs CLI configuration.

The configuration lives at ~/.addon-docs/config.yaml and can set the default
consumer application directory and logging preferences. Environment
variables (ADDON_DOCS_*) take precedence over file values.`,
	}

	c.AddCommand(newConfigInitCmd())
	c.AddCommand(newConfigPathCmd())

	return c
}

func newConfigInitCmd() *cobra.Command {
	var forceFlag bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write a default configuration file to ~/.addon-docs/config.yaml.

Examples:
  # Initialize configuration
  addon-docs config init

  # Overwrite existing configuration
  addon-docs config init --force`,
		RunE: func(c *cobra.Command, args []string) error {
			return runConfigInit(forceFlag)
		},
	}

	c.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing configuration")

	return c
}

func runConfigInit(force bool) error {
	paths, err := config.DefaultPaths()
	if err != nil {
		return NewExitError(fmt.Errorf("determining home directory: %w", err), ExitGeneralError)
	}

	if _, err := os.Stat(paths.ConfigFile); err == nil && !force {
		return NewExitError(
			fmt.Errorf("configuration already exists at %s; use --force to overwrite", paths.ConfigFile),
			ExitValidationError,
		)
	}

	if err := config.EnsureHomeDir(); err != nil {
		return NewExitError(fmt.Errorf("creating %s: %w", paths.HomeDir, err), ExitGeneralError)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return NewExitError(fmt.Errorf("serializing default config: %w", err), ExitGeneralError)
	}

	if err := os.WriteFile(paths.ConfigFile, data, 0o600); err != nil {
		return NewExitError(fmt.Errorf("writing %s: %w", paths.ConfigFile, err), ExitGeneralError)
	}

	output.Println("Configuration initialized at " + paths.ConfigFile)
	return nil
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(c *cobra.Command, args []string) error {
			path, err := config.GetConfigFile()
			if err != nil {
				return NewExitError(err, ExitGeneralError)
			}
			fmt.Fprintln(c.OutOrStdout(), path)
			return nil
		},
	}
}

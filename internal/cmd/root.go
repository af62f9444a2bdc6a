package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/addondocs/cli/internal/config"
	"github.com/addondocs/cli/internal/output"
	"github.com/addondocs/cli/internal/version"
)

var (
	// Global flags
	dirFlag     string
	configFlag  string
	verboseFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	cliConfig *config.Config
)

// NewRootCmd creates the root command for the addon-docs CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "addon-docs",
		Short: "Documentation tooling scaffolder for component-library addons",
		Long: `addon-docs bootstraps documentation tooling for a component-library addon.

It writes a fixed set of files into the addon's test application:
  - a documentation-aware router
  - an application template with the addon name and repository URL
  - a docs index generated from the addon README
  - the index and docs layout templates`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "C", "", "Consumer application directory (env: ADDON_DOCS_DIR)")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (env: ADDON_DOCS_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals() error {
	output.SetupLogging(verboseFlag)

	info := version.GetInfo()
	output.Debug("addon-docs CLI started", "version", info.Version)

	cfg, err := config.NewLoader().Load(configFlag)
	if err != nil {
		// Commands that don't need config still work; init falls back to
		// flag/env/cwd resolution.
		output.Debug("config load error", "error", err)
		cfg = config.DefaultConfig()
	}
	cliConfig = cfg

	return nil
}

// resolveBaseDir determines the consumer application directory for a run.
//
// Precedence: positional argument > --dir flag > ADDON_DOCS_DIR environment
// variable (via the config loader's env binding) > current working directory.
// The environment is read exactly once, here at the boundary; everything
// below this function takes the directory as an explicit value.
func resolveBaseDir(arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if dirFlag != "" {
		return dirFlag, nil
	}
	if cliConfig != nil && cliConfig.BaseDir != "" {
		return cliConfig.BaseDir, nil
	}
	return os.Getwd()
}

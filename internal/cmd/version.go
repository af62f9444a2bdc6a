package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/addondocs/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show addon-docs CLI version information.

Displays:
  - CLI version, commit, and build date
  - ember-cli binary version found on PATH, if any`,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, _ []string) error {
	info := version.GetInfo()
	emberInfo := version.DetectEmberBinary()

	fmt.Fprintln(cmd.OutOrStdout(), version.FullVersionString(info, emberInfo))
	return nil
}

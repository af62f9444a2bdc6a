package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/addondocs/cli/internal/output"
	"github.com/addondocs/cli/internal/scaffold"
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	var dryRunFlag bool

	c := &cobra.Command{
		Use:   "init [dir]",
		Short: "Scaffold documentation tooling into the test application",
		Long: `Scaffold documentation tooling files into the addon's test application.

The consumer application directory is taken from the positional argument,
the --dir flag, the ADDON_DOCS_DIR environment variable, or the current
working directory, in that order. The addon root is the sibling "addon"
directory of the consumer root.

Existing files are overwritten unconditionally; re-running with unchanged
inputs produces byte-identical output.

Examples:
  # Scaffold into the current directory
  addon-docs init

  # Scaffold into a specific test application
  addon-docs init ./tests/dummy

  # Preview without writing anything
  addon-docs init --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}
			return runInit(arg, dryRunFlag)
		},
	}

	c.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Print what would be written without writing")

	return c
}

func runInit(arg string, dryRun bool) error {
	baseDir, err := resolveBaseDir(arg)
	if err != nil {
		return NewExitError(fmt.Errorf("resolving base directory: %w", err), ExitGeneralError)
	}

	if cliConfig != nil && cliConfig.DryRun {
		dryRun = true
	}

	res, err := scaffold.New(scaffold.Options{
		BaseDir: baseDir,
		DryRun:  dryRun,
	}).Run()
	if err != nil {
		return err
	}

	printInitSummary(res, dryRun)
	return nil
}

// printInitSummary prints the completion banner and the tree of written files.
func printInitSummary(res *scaffold.Result, dryRun bool) {
	status := output.StatusWritten
	banner := "Documentation tooling scaffolded"
	if dryRun {
		status = output.StatusWouldWrite
		banner = "Dry run complete, nothing written"
	}

	for _, f := range res.Written {
		output.Println(output.FormatFileLine(f, status))
	}
	for _, f := range res.Skipped {
		output.Println(output.FormatFileLine(f, output.StatusSkipped))
	}

	files := make(map[string]string, len(res.Written))
	for _, f := range res.Written {
		files[f] = fileDescription(f)
	}

	output.Println("")
	output.Print(output.RenderFileTree(filepath.Base(res.Paths.ConsumerRoot), files))
	output.Println("")
	if output.IsTTY() {
		output.Println(output.FormatCheckmark(banner))
	} else {
		output.Println(banner)
	}
}

// fileDescription returns a short description for a scaffolded file.
func fileDescription(path string) string {
	descriptions := map[string]string{
		"app/router.js":                 "Documentation routes",
		"app/templates/application.hbs": "Application shell",
		"app/templates/docs/index.md":   "Docs landing page",
		"app/templates/index.hbs":       "Index layout",
		"app/templates/docs.hbs":        "Docs layout",
	}

	if desc, ok := descriptions[filepath.ToSlash(path)]; ok {
		return desc
	}

	if strings.HasPrefix(filepath.ToSlash(path), "app/templates/docs/") {
		return "Docs page"
	}

	return ""
}

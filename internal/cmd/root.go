package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for fscout
func NewRootCommand() *cobra.Command {
	var targetDir string

	cmd := &cobra.Command{
		Use:   "fscout [dir]",
		Short: "Find files and directories by name",
		Long: `fscout is a terminal file finder. It walks a directory tree in the
background, matches entry names against a case-insensitive pattern, and
lets you open or preview the results.

Run without arguments for the interactive interface, or use the search
subcommand for one-shot output.`,
		Version: Version,
		Args:    cobra.MaximumNArgs(1),
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := targetDir
			if dir == "" && len(args) > 0 {
				dir = args[0]
			}
			return runTUI(dir)
		},
	}

	cmd.Flags().StringVarP(&targetDir, "dir", "d", "", "directory to search")

	cmd.AddCommand(NewSearchCommand())

	return cmd
}

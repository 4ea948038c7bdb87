package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"fscout/internal/pattern"
	"fscout/internal/scanner"
	"fscout/internal/walker"
)

// NewSearchCommand creates the one-shot search subcommand
func NewSearchCommand() *cobra.Command {
	var countOnly bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "search PATTERN [dir]",
		Short: "Search once and print matching paths",
		Long: `Search walks the directory tree rooted at dir (default: the current
directory) and prints every file or directory whose name matches
PATTERN, a case-insensitive regular expression. An empty pattern
matches everything.`,
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 1 {
				dir = args[1]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving %s: %w", dir, err)
			}

			// A bad pattern is rejected before any traversal
			m, err := pattern.Compile(args[0])
			if err != nil {
				return err
			}

			sc := scanner.New(walker.New(osfs.New("/")))
			paths := sc.Scan(absDir, m)

			if countOnly {
				fmt.Fprintln(cmd.OutOrStdout(), len(paths))
				return nil
			}

			if noColor || !isatty.IsTerminal(os.Stdout.Fd()) {
				color.NoColor = true
			}
			dirColor := color.New(color.FgCyan)

			for _, p := range paths {
				if info, err := os.Stat(p); err == nil && info.IsDir() {
					dirColor.Fprintln(cmd.OutOrStdout(), p)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), p)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&countOnly, "count", false, "print only the number of matches")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/bankconverter/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
// Without a subcommand it watches the default base directory.
func NewRootCommand() *cobra.Command {
	var opts watchOptions

	rootCmd := &cobra.Command{
		Use:     "bankconverter",
		Short:   "Convert Rabobank CSV exports into date, amount, description files",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts)
		},
	}
	opts.bind(rootCmd)

	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}

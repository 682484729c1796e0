package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/bankconverter/internal/importer"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file.csv>...",
		Short: "Check that statements carry the required columns",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args)
		},
	}
}

func runValidate(cmd *cobra.Command, files []string) error {
	required := importer.DefaultRegistry().Get("rabobank").RequiredColumns()

	invalid := 0
	for _, f := range files {
		res, err := importer.ValidateFile(f, required)
		if err != nil {
			return err
		}
		if res.Valid {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", f)
			continue
		}
		invalid++
		fmt.Fprintln(cmd.OutOrStdout(), res.Err(f))
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d files invalid", invalid, len(files))
	}
	return nil
}

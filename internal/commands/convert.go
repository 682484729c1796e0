package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/bankconverter/internal/importer"
	"github.com/cleared-dev/bankconverter/internal/preview"
	"github.com/cleared-dev/bankconverter/internal/textio"
)

func newConvertCommand() *cobra.Command {
	var output string
	var showPreview bool

	cmd := &cobra.Command{
		Use:   "convert <file.csv>",
		Short: "Convert a single statement without moving it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], output, showPreview)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default <date>_<name> next to the input)")
	cmd.Flags().BoolVar(&showPreview, "preview", false, "print the converted rows as a table")

	return cmd
}

func runConvert(cmd *cobra.Command, input, output string, showPreview bool) error {
	conv := importer.DefaultRegistry().Get("rabobank")

	res, err := importer.ValidateFile(input, conv.RequiredColumns())
	if err != nil {
		return err
	}
	if err := res.Err(filepath.Base(input)); err != nil {
		return err
	}

	in, err := textio.Open(input)
	if err != nil {
		return err
	}
	defer in.Close()

	var buf bytes.Buffer
	sum, err := conv.Convert(in, &buf)
	if err != nil {
		return fmt.Errorf("converting %s: %w", input, err)
	}

	if output == "" {
		output = filepath.Join(filepath.Dir(input), importer.OutputName(sum.FirstDate, filepath.Base(input)))
	}

	if showPreview {
		rows, err := importer.ReadOutput(bytes.NewReader(buf.Bytes()))
		if err != nil {
			return err
		}
		for _, line := range preview.Render(rows) {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
	}

	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Converted %s (%s) to %s: %d rows, %d skipped, total %s\n",
		input, in.Encoding(), output, sum.Rows, sum.Skipped, sum.Total.StringFixed(2))
	return nil
}

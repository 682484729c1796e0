package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/bankconverter/internal/config"
	"github.com/cleared-dev/bankconverter/internal/importer"
)

func newInitCommand() *cobra.Command {
	var base string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the IN, OUT and DONE directories and a default config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := base
			if dir == "" {
				dir = config.DefaultBaseDir()
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir)
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "base directory (default ~/BankConverter)")

	return cmd
}

func runInit(out io.Writer, dir string) error {
	if err := importer.NewLayout(dir).Ensure(); err != nil {
		return err
	}

	// Keep an existing config.
	path := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		cfg := config.Default()
		cfg.BaseDir = ""
		if err := config.Save(path, cfg); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("checking config: %w", err)
	}

	fmt.Fprintf(out, "Initialized bankconverter at %s\n", dir)
	return nil
}

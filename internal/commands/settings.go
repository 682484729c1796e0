package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/bankconverter/internal/config"
	"github.com/cleared-dev/bankconverter/internal/importer"
)

// baseOptions are the flags shared by commands that work on a base directory.
type baseOptions struct {
	base       string
	configPath string
}

func (o *baseOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.base, "base", "", "base directory holding IN, OUT and DONE (default ~/BankConverter)")
	cmd.Flags().StringVar(&o.configPath, "config", "", "config file (default <base>/"+config.FileName+")")
}

// resolveConfig layers defaults, the config file, the environment and
// flags, in that order.
func resolveConfig(o baseOptions) (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}

	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.Load(o.configPath)
	} else {
		cfg, err = config.LoadOptional(filepath.Join(locateBase(o), config.FileName))
	}
	if err != nil {
		return nil, err
	}

	if err := config.ApplyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if o.base != "" {
		cfg.BaseDir = o.base
	}

	abs, err := filepath.Abs(cfg.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	cfg.BaseDir = abs

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// locateBase picks the directory the config file is looked up in.
func locateBase(o baseOptions) string {
	if o.base != "" {
		return o.base
	}
	if v := os.Getenv(config.EnvBaseDir); v != "" {
		return v
	}
	return config.DefaultBaseDir()
}

func layoutFor(cfg *config.Config) importer.Layout {
	l := importer.NewLayout(cfg.BaseDir)
	l.LogFile = cfg.LogPath()
	return l
}

package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/bankconverter/internal/applog"
	"github.com/cleared-dev/bankconverter/internal/importer"
	"github.com/cleared-dev/bankconverter/internal/watch"
)

type watchOptions struct {
	baseOptions
}

func newWatchCommand() *cobra.Command {
	var opts watchOptions

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll IN/ and convert new statements until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts)
		},
	}
	opts.bind(cmd)

	return cmd
}

func runWatch(cmd *cobra.Command, opts watchOptions) error {
	cfg, err := resolveConfig(opts.baseOptions)
	if err != nil {
		return err
	}
	layout := layoutFor(cfg)

	logger := applog.New(applog.Options{
		Stdout: cmd.OutOrStdout(),
		File:   layout.LogFile,
		Level:  cfg.Logging.Level,
	})

	w := watch.New(watch.Options{
		Layout:      layout,
		Converter:   importer.DefaultRegistry().Get("rabobank"),
		Logger:      logger,
		Pattern:     cfg.Watch.Pattern,
		Interval:    cfg.Watch.Interval.Std(),
		ForgetAfter: cfg.Watch.ForgetAfter.Std(),
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = w.Run(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

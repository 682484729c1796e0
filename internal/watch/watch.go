// Package watch polls the input directory and routes every new statement
// through validation, conversion and archiving.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cleared-dev/bankconverter/internal/applog"
	"github.com/cleared-dev/bankconverter/internal/importer"
)

// Outcome is the terminal state of one input file.
type Outcome int

const (
	// OutcomeConverted: output written to OUT, original moved to DONE.
	OutcomeConverted Outcome = iota + 1
	// OutcomeRejected: required columns missing, original moved to DONE unconverted.
	OutcomeRejected
	// OutcomeFailed: any other error; original moved to DONE when possible.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeConverted:
		return "converted"
	case OutcomeRejected:
		return "rejected"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result describes what happened to one input file.
type Result struct {
	File    string
	Outcome Outcome
	Output  string // converted file path, OutcomeConverted only
	Summary importer.Summary
	Missing []string // OutcomeRejected only
	Err     error    // cause for OutcomeRejected and OutcomeFailed
}

// Options configures a Watcher.
type Options struct {
	Layout      importer.Layout
	Converter   importer.Converter
	Logger      *applog.Logger
	Pattern     string        // default "*.csv"
	Interval    time.Duration // default 5s
	ForgetAfter time.Duration // 0 = never forget within a run
}

// Watcher owns the state of one polling run.
type Watcher struct {
	layout    importer.Layout
	conv      importer.Converter
	log       *applog.Logger
	pattern   string
	interval  time.Duration
	processed *ProcessedSet
}

// New creates a Watcher.
func New(opts Options) *Watcher {
	if opts.Pattern == "" {
		opts.Pattern = "*.csv"
	}
	if opts.Interval <= 0 {
		opts.Interval = 5 * time.Second
	}
	if opts.Converter == nil {
		opts.Converter = &importer.RabobankConverter{}
	}
	if opts.Logger == nil {
		opts.Logger = applog.New(applog.Options{File: opts.Layout.LogFile})
	}
	return &Watcher{
		layout:    opts.Layout,
		conv:      opts.Converter,
		log:       opts.Logger,
		pattern:   opts.Pattern,
		interval:  opts.Interval,
		processed: NewProcessedSet(opts.ForgetAfter),
	}
}

// Processed exposes the set of handled input paths.
func (w *Watcher) Processed() *ProcessedSet { return w.processed }

// Run creates the directory layout, then sweeps immediately and after
// every interval until ctx is done. It returns ctx.Err() on stop, or the
// error that prevented startup.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.layout.Ensure(); err != nil {
		return err
	}
	w.log.Info(fmt.Sprintf("💡 Converter actief: plaats Rabobank CSV's in %s", w.layout.In))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if _, err := w.Sweep(ctx); err != nil && ctx.Err() == nil {
			w.log.Error(fmt.Sprintf("⚠️ Fout bij scannen van %s: %v", w.layout.In, err))
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Sweep handles every matching input file not processed yet. Per-file
// failures are reported in the results; the error is only set when the
// input directory cannot be listed or ctx is done.
func (w *Watcher) Sweep(ctx context.Context) ([]Result, error) {
	w.processed.Prune()

	files, err := importer.Scan(w.layout.In, w.pattern)
	if err != nil {
		return nil, err
	}

	var results []Result
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		if w.processed.Contains(f.Path) {
			continue
		}
		results = append(results, w.process(f))
		w.processed.Add(f.Path)
	}
	return results, nil
}

func (w *Watcher) process(f importer.FileInfo) Result {
	v, err := importer.ValidateFile(f.Path, w.conv.RequiredColumns())
	if err != nil {
		return w.fail(f, fmt.Errorf("validating: %w", err))
	}
	if !v.Valid {
		return w.reject(f, v)
	}

	staged := filepath.Join(w.layout.Out, f.Name)
	sum, err := importer.ConvertFile(w.conv, f.Path, staged)
	if err != nil {
		_ = os.Remove(staged)
		return w.fail(f, fmt.Errorf("converting: %w", err))
	}

	newName := importer.OutputName(sum.FirstDate, f.Name)
	output := filepath.Join(w.layout.Out, newName)
	if err := os.Rename(staged, output); err != nil {
		return w.fail(f, fmt.Errorf("renaming output: %w", err))
	}
	if err := importer.Archive(f.Path, w.layout.Done); err != nil {
		return w.fail(f, err)
	}

	w.log.Info(fmt.Sprintf("✅ Omgezet: %s → %s/%s", f.Name, importer.OutDir, newName))
	w.log.Info(fmt.Sprintf("📦 Origineel verplaatst naar %s/%s", importer.DoneDir, f.Name))
	w.log.Debug("conversie",
		"file", f.Name,
		"rows", sum.Rows,
		"skipped", sum.Skipped,
		"total", sum.Total.StringFixed(2),
		"unparsed", sum.Unparsed,
	)

	return Result{File: f.Name, Outcome: OutcomeConverted, Output: output, Summary: sum}
}

func (w *Watcher) reject(f importer.FileInfo, v importer.ValidationResult) Result {
	w.log.Warn(fmt.Sprintf("⚠️ Bestand %s overgeslagen: ontbrekende kolommen %s",
		f.Name, importer.FormatColumnSet(v.Missing)))
	if err := importer.Archive(f.Path, w.layout.Done); err != nil {
		return w.fail(f, err)
	}
	return Result{File: f.Name, Outcome: OutcomeRejected, Missing: v.Missing, Err: v.Err(f.Name)}
}

// fail logs err and moves the original aside; a failing move is ignored.
func (w *Watcher) fail(f importer.FileInfo, err error) Result {
	w.log.Error(fmt.Sprintf("⚠️ Fout bij %s: %v", f.Name, err))
	_ = importer.Archive(f.Path, w.layout.Done)
	return Result{File: f.Name, Outcome: OutcomeFailed, Err: err}
}

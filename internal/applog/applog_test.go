package applog

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 1, 15, 9, 30, 5, 0, time.Local)
}

func TestLogger_WritesStdoutAndFile(t *testing.T) {
	var stdout bytes.Buffer
	path := filepath.Join(t.TempDir(), "log.txt")
	l := New(Options{Stdout: &stdout, File: path, Now: fixedClock})

	l.Info("Omgezet: stmt.csv → OUT/2024-01-15_stmt.csv")
	l.Warn("second")

	want := "[2024-01-15 09:30:05] Omgezet: stmt.csv → OUT/2024-01-15_stmt.csv\n" +
		"[2024-01-15 09:30:05] second\n"
	assert.Equal(t, want, stdout.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, string(data))
}

func TestLogger_AppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	require.NoError(t, os.WriteFile(path, []byte("earlier\n"), 0o644))

	l := New(Options{Stdout: &bytes.Buffer{}, File: path, Now: fixedClock})
	l.Info("later")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "earlier\n[2024-01-15 09:30:05] later\n", string(data))
}

func TestLogger_FileFailureIsSwallowed(t *testing.T) {
	var stdout bytes.Buffer
	path := filepath.Join(t.TempDir(), "missing-dir", "log.txt")
	l := New(Options{Stdout: &stdout, File: path, Now: fixedClock})

	assert.NotPanics(t, func() { l.Error("still printed") })
	assert.Equal(t, "[2024-01-15 09:30:05] still printed\n", stdout.String())
}

func TestLogger_Attributes(t *testing.T) {
	var stdout bytes.Buffer
	l := New(Options{Stdout: &stdout, Now: fixedClock}).With("file", "a.csv")

	l.Info("done", "rows", 3)
	assert.Equal(t, "[2024-01-15 09:30:05] done file=a.csv rows=3\n", stdout.String())
}

func TestLogger_Groups(t *testing.T) {
	var stdout bytes.Buffer
	l := New(Options{Stdout: &stdout, Now: fixedClock})

	l.Slog().WithGroup("sum").Info("done", "rows", 3)
	assert.Equal(t, "[2024-01-15 09:30:05] done sum.rows=3\n", stdout.String())
}

func TestLogger_Level(t *testing.T) {
	var stdout bytes.Buffer
	l := New(Options{Stdout: &stdout, Level: "warn", Now: fixedClock})

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	assert.Equal(t, "[2024-01-15 09:30:05] shown\n", stdout.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", ParseLevel("Debug").String())
	assert.Equal(t, "INFO", ParseLevel("info").String())
	assert.Equal(t, "WARN", ParseLevel("WARN").String())
	assert.Equal(t, "ERROR", ParseLevel("error").String())
	assert.Equal(t, "INFO", ParseLevel("bogus").String())
}

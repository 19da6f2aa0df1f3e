package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// newLogger creates a logger that writes to w at level, with short timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// setupLogging attaches the command's logger to its context. The TUI owns the
// terminal, so without a log file its logs are discarded instead of going to
// stderr.
func setupLogging(cmd *cobra.Command, app *App, ownsTerminal bool) error {
	level := log.DebugLevel
	if !app.Verbose {
		lv, err := log.ParseLevel(strings.TrimSpace(app.cfg.LogLevel))
		if err != nil {
			return writeErr(cmd, fmt.Errorf("log_level: %w", err))
		}
		level = lv
	}

	var w io.Writer = cmd.ErrOrStderr()
	if ownsTerminal {
		w = io.Discard
	}
	path := strings.TrimSpace(app.LogFile)
	if path == "" {
		path = strings.TrimSpace(app.cfg.LogFile)
	}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return writeErr(cmd, err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return writeErr(cmd, fmt.Errorf("open log file: %w", err))
		}
		app.logSink = f
		w = f
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, newLogger(w, level)))
	return nil
}

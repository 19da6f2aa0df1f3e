package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"blocksort-cli/internal/config"
	"blocksort-cli/internal/format"
	"blocksort-cli/internal/source"
	"blocksort-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	ConfigPath string
	Source     string
	Format     string
	PrettyJSON bool
	Verbose    bool
	LogFile    string

	cfg     config.Config
	logSink io.WriteCloser
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "blocksort",
		Short:        "Reorder a list of blocks by dragging them with the mouse",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Drag the built-in demo list around
  blocksort

  # Reorder records from a file, URL or sqlite database
  blocksort --source ./blocks.yaml
  blocksort --source https://example.com/api/blocks
  blocksort --source sqlite:./blocks.db

  # Print what a source yields, with identity keys
  blocksort list --source ./blocks.json --format yaml
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(app.ConfigPath)
		if err != nil {
			return writeErr(cmd, err)
		}
		app.cfg = cfg
		return setupLogging(cmd, app, cmd == cmd.Root())
	}

	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.logSink != nil {
			return app.logSink.Close()
		}
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("BLOCKSORT_CONFIG", ""), "Path to config.toml (default: ~/.blocksort/config.toml)")
	cmd.PersistentFlags().StringVar(&app.Source, "source", envOr("BLOCKSORT_SOURCE", ""), "Data source: demo, a file path, http(s)://..., or sqlite:path (overrides config)")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("BLOCKSORT_FORMAT", "json"), "Output format ("+strings.Join(format.Names, "|")+")")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", "", "Append logs to this file (overrides config log_file)")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	src, err := openSource(app)
	if err != nil {
		return writeErr(cmd, err)
	}
	logger := loggerFromContext(cmd.Context())
	logger.Debug("starting tui", "source", src.String())
	return tui.Run(cmd.Context(), tui.Options{
		Source:   src,
		Cooldown: app.cfg.Cooldown.Duration,
		Border:   app.cfg.TUI.Border,
		Gap:      app.cfg.TUI.Gap,
		Width:    app.cfg.TUI.Width,
		Logger:   logger,
	})
}

// sourceSpec resolves the data source: flag/env first, then config.
func sourceSpec(app *App) string {
	if s := strings.TrimSpace(app.Source); s != "" {
		return s
	}
	return app.cfg.Source
}

func openSource(app *App) (source.Source, error) {
	src, err := source.Open(sourceSpec(app))
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	return src, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}

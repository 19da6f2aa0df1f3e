package cli

import (
	"fmt"

	"blocksort-cli/internal/docs"

	"github.com/spf13/cobra"
)

func newDocsCmd(app *App) *cobra.Command {
	var (
		raw   bool
		style string
		width int
	)

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show built-in documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, map[string]any{"data": map[string]any{"topics": docs.Topics()}})
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, errNotFound("docs topic", topic))
			}
			if !raw {
				body = docs.Render(body, style, width)
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), body)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown instead of rendering it")
	cmd.Flags().StringVar(&style, "style", "dark", "Glamour style (dark|light|notty)")
	cmd.Flags().IntVar(&width, "width", 80, "Word-wrap width for rendered output")

	return cmd
}

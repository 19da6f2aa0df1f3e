package cli

import (
	"blocksort-cli/internal/dnd"
	"blocksort-cli/internal/model"

	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Load the data source and print its blocks with identity keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := openSource(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			logger := loggerFromContext(cmd.Context())
			blocks, err := src.Load(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			logger.Debug("loaded blocks", "source", src.String(), "count", len(blocks))

			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"source": src.String(),
				"blocks": keyBlocks(blocks),
			}})
		},
	}
}

// keyBlocks assigns identity keys the same way the reorder engine does:
// repeated identifiers share a key.
func keyBlocks(blocks []model.Block) []model.KeyedBlock {
	keys := dnd.NewKeyRegistry()
	out := make([]model.KeyedBlock, 0, len(blocks))
	for i, b := range blocks {
		out = append(out, model.KeyedBlock{
			Key:      string(keys.KeyFor(b.Identifier())),
			Position: i,
			Block:    b,
		})
	}
	return out
}

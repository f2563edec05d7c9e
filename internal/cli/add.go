package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"docagent/docstore"
)

var addMetadata []string

var addCmd = &cobra.Command{
	Use:   "add <collection> <text> [text...]",
	Short: "Embed texts and store them in a collection",
	Long: `Embed one or more texts and upsert them into a collection. The
collection is created automatically on first use, sized to the
embedding model's dimension.

Metadata is attached positionally: the first --metadata value pairs
with the first text, and so on. Pass either no --metadata flags at all
or exactly one per text; any other count is rejected.

Examples:
  docagent add my-docs "Qdrant is a vector database"
  docagent add my-docs "doc one" "doc two" \
    --metadata '{"source":"a.md"}' --metadata '{"source":"b.md"}'`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		collection := args[0]
		texts := args[1:]

		var metadatas []map[string]any
		if len(addMetadata) > 0 {
			if len(addMetadata) != len(texts) {
				return fmt.Errorf("%w: %d texts but %d --metadata values",
					docstore.ErrInput, len(texts), len(addMetadata))
			}
			metadatas = make([]map[string]any, len(addMetadata))
			for i, raw := range addMetadata {
				var m map[string]any
				if err := json.Unmarshal([]byte(raw), &m); err != nil {
					return fmt.Errorf("%w: --metadata %d is not a JSON object: %v",
						docstore.ErrInput, i+1, err)
				}
				metadatas[i] = m
			}
		}

		return withService(func(ctx context.Context, svc docstore.Service) error {
			ids, err := svc.AddDocuments(ctx, collection, texts, metadatas)
			if err != nil {
				return err
			}
			fmt.Printf("Added %d documents to %q:\n", len(ids), collection)
			for _, id := range ids {
				fmt.Println(id)
			}
			return nil
		})
	},
}

func init() {
	addCmd.Flags().StringArrayVar(&addMetadata, "metadata", nil, "JSON object attached to the text at the same position (repeatable)")
	rootCmd.AddCommand(addCmd)
}

package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"docagent/docstore"
)

var (
	searchQuery string
	searchTopK  int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search <collection>",
	Short: "Find the documents most similar to a query",
	Long: `Embed a query and return the k most similar documents from a
collection, best match first.

Examples:
  docagent search my-docs -q "what is qdrant"
  docagent search my-docs -q "vector similarity" -k 10 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		k := searchTopK
		if k <= 0 {
			k = docstore.DefaultTopK
		}

		return withService(func(ctx context.Context, svc docstore.Service) error {
			results, err := svc.Search(ctx, args[0], searchQuery, k)
			if err != nil {
				return err
			}

			if searchJSON {
				out, err := json.MarshalIndent(results, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}

			if len(results) == 0 {
				fmt.Println("No results.")
				return nil
			}
			for i, r := range results {
				fmt.Printf("--- [%d] score %.4f ---\n", i+1, r.Score)
				fmt.Println(r.Text)
				if len(r.Metadata) > 0 {
					meta, _ := json.Marshal(r.Metadata)
					fmt.Printf("metadata: %s\n", meta)
				}
				fmt.Println()
			}
			return nil
		})
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "query text (required)")
	searchCmd.Flags().IntVarP(&searchTopK, "top-k", "k", docstore.DefaultTopK, "number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output as JSON")
	searchCmd.MarkFlagRequired("query")
	rootCmd.AddCommand(searchCmd)
}

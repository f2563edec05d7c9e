package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"docagent/docstore"
)

var (
	createDimension uint64
	createDistance  string
)

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "Manage vector-store collections",
}

var collectionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all collections",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(ctx context.Context, svc docstore.Service) error {
			names, err := svc.ListCollections(ctx)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Println("No collections.")
				return nil
			}
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		})
	},
}

var collectionsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dimension := createDimension
		if dimension == 0 {
			dimension = uint64(cfg.Embedding.Dimension)
		}
		distanceName := createDistance
		if distanceName == "" {
			distanceName = cfg.Store.Distance
		}
		distance, err := docstore.ParseDistance(distanceName)
		if err != nil {
			return err
		}

		return withService(func(ctx context.Context, svc docstore.Service) error {
			created, err := svc.CreateCollection(ctx, args[0], dimension, distance)
			if err != nil {
				return err
			}
			if !created {
				fmt.Printf("Collection %q already exists.\n", args[0])
				return nil
			}
			fmt.Printf("Created collection %q.\n", args[0])
			return nil
		})
	},
}

var collectionsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a collection and all of its documents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(ctx context.Context, svc docstore.Service) error {
			deleted, err := svc.DeleteCollection(ctx, args[0])
			if err != nil {
				return err
			}
			if !deleted {
				fmt.Printf("Collection %q does not exist.\n", args[0])
				return nil
			}
			fmt.Printf("Deleted collection %q.\n", args[0])
			return nil
		})
	},
}

var collectionsDescribeCmd = &cobra.Command{
	Use:   "describe <name>",
	Short: "Show a collection's status, dimension and point count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(ctx context.Context, svc docstore.Service) error {
			info, err := svc.DescribeCollection(ctx, args[0])
			if err != nil {
				return err
			}
			if info == nil {
				fmt.Printf("Collection %q does not exist.\n", args[0])
				return nil
			}
			fmt.Printf("Name:      %s\n", info.Name)
			fmt.Printf("Status:    %s\n", info.Status)
			fmt.Printf("Dimension: %d\n", info.Dimension)
			fmt.Printf("Distance:  %s\n", info.Distance)
			fmt.Printf("Points:    %d\n", info.Points)
			return nil
		})
	},
}

func init() {
	collectionsCreateCmd.Flags().Uint64Var(&createDimension, "dimension", 0, "vector dimension (default from config)")
	collectionsCreateCmd.Flags().StringVar(&createDistance, "distance", "", "distance metric: cosine, dot or euclid (default from config)")

	collectionsCmd.AddCommand(
		collectionsListCmd,
		collectionsCreateCmd,
		collectionsDeleteCmd,
		collectionsDescribeCmd,
	)
	rootCmd.AddCommand(collectionsCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the vehicle service catalog",
		Long: `Create the schema, load the problem and dealership catalog, and rebuild the similarity index.

Examples:
  # Create tables and the pgvector extension
  catalog migrate

  # Load the bundled catalog
  catalog seed --file data/catalog.yaml

  # Re-embed every problem into problem_embeddings
  catalog reindex`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(NewMigrateCmd())
	rootCmd.AddCommand(NewSeedCmd())
	rootCmd.AddCommand(NewReindexCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

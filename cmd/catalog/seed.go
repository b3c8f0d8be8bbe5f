package main

import (
	"context"
	"fmt"

	"vehicle-diagnosis-be/internal/repository/unitofwork"
	"vehicle-diagnosis-be/internal/service"

	"github.com/spf13/cobra"
)

var seedFile string

func NewSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load problems, dealerships and customers from a YAML file",
		Long: `Insert the catalog in a single transaction. Nothing is written if any row fails.

Examples:
  catalog seed --file data/catalog.yaml`,
		Args: cobra.NoArgs,
		RunE: runSeed,
	}

	cmd.Flags().StringVarP(&seedFile, "file", "f", "data/catalog.yaml", "Path to the catalog YAML file")

	return cmd
}

func runSeed(cmd *cobra.Command, args []string) error {
	printHeader("Catalog seed")

	seed, err := service.LoadCatalogSeed(seedFile)
	if err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("Loaded %s", seedFile))

	_, db, err := connect()
	if err != nil {
		return err
	}

	s := newSpinner("Inserting catalog...")
	s.Start()
	counts, err := service.NewSeedService(unitofwork.NewRepositoryFactory(db)).Seed(context.Background(), seed)
	s.Stop()
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	printSuccess(fmt.Sprintf("%d problems", counts.Problems))
	printSuccess(fmt.Sprintf("%d dealerships (%d labour, %d bays, %d parts)", counts.Dealerships, counts.Labour, counts.Bays, counts.Parts))
	printSuccess(fmt.Sprintf("%d insurance rules", counts.InsuranceRules))
	printSuccess(fmt.Sprintf("%d customers with %d vehicles", counts.Customers, counts.Vehicles))
	return nil
}

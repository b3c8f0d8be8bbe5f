package main

import (
	"fmt"

	"vehicle-diagnosis-be/internal/model"

	"github.com/spf13/cobra"
)

func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the catalog, booking and session tables",
		Args:  cobra.NoArgs,
		RunE:  runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, args []string) error {
	printHeader("Catalog migration")

	_, db, err := connect()
	if err != nil {
		return err
	}

	// AutoMigrate cannot create extensions
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS vector;`).Error; err != nil {
		printWarning(fmt.Sprintf("Failed to create pgvector extension: %v", err))
	}

	models := model.All()
	s := newSpinner(fmt.Sprintf("Running AutoMigrate for %d tables...", len(models)))
	s.Start()
	err = db.AutoMigrate(models...)
	s.Stop()
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	printSuccess(fmt.Sprintf("Migrated %d tables", len(models)))
	return nil
}

package main

import (
	"fmt"
	"time"

	"vehicle-diagnosis-be/internal/config"
	"vehicle-diagnosis-be/pkg/database"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"gorm.io/gorm"
)

func newSpinner(suffix string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " " + suffix
	return s
}

func printHeader(title string) {
	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Println()
	cyan.Println(title)
	fmt.Println()
}

func printSuccess(msg string) {
	green := color.New(color.FgGreen)
	green.Printf("✓ %s\n", msg)
}

func printWarning(msg string) {
	yellow := color.New(color.FgYellow)
	yellow.Printf("! %s\n", msg)
}

// connect loads the environment and opens the database behind a spinner
func connect() (*config.Config, *gorm.DB, error) {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		return nil, nil, fmt.Errorf("DB_CONNECTION_STRING is not set")
	}

	s := newSpinner("Connecting to database...")
	s.Start()
	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.Database.Debug)
	s.Stop()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	printSuccess("Connected to database")
	return cfg, db, nil
}

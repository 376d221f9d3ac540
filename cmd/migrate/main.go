package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"

	_ "github.com/lib/pq"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/config"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/logger"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/schema"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	up := flag.Bool("up", false, "Create all tables and indexes")
	down := flag.Bool("down", false, "Drop all tables and indexes")
	status := flag.Bool("status", false, "Show which tables and indexes exist")
	flag.Parse()

	if !*up && !*down && !*status {
		log.Fatal("One of -up, -down or -status is required")
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	ctx := context.Background()
	migrator := schema.NewMigrator(db, schema.Default())

	switch {
	case *up:
		if err := migrator.Up(ctx); err != nil {
			log.Fatalf("Migration up failed: %v", err)
		}
		logger.Info("Migration up completed")
	case *down:
		if err := migrator.Down(ctx); err != nil {
			log.Fatalf("Migration down failed: %v", err)
		}
		logger.Info("Migration down completed")
	case *status:
		statuses, err := migrator.Status(ctx)
		if err != nil {
			log.Fatalf("Migration status failed: %v", err)
		}
		for _, st := range statuses {
			fmt.Printf("%-22s table=%-22s exists=%v\n", st.Model, st.Table, st.TableExists)
			for name, found := range st.IndexesFound {
				fmt.Printf("  %-40s exists=%v\n", name, found)
			}
		}
	}
}

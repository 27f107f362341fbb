package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/orgball2608/mini-insta/internal/db"
	"github.com/orgball2608/mini-insta/pkg/config"
	"github.com/orgball2608/mini-insta/pkg/logger"
	"github.com/pressly/goose/v3"
)

const usage = "Usage: migrate [up|down|status|reset|create <name>]"

// Go migrations live in internal/migrations and are compiled into this binary.
const migrationsDir = "internal/migrations"

type command struct {
	run  func(ctx context.Context, conn *sql.DB) error
	done string
}

var commands = map[string]command{
	"up": {
		run:  db.Up,
		done: "Migrations applied successfully",
	},
	"down": {
		run:  func(ctx context.Context, conn *sql.DB) error { return goose.DownContext(ctx, conn, ".") },
		done: "Migration rollback successful",
	},
	"status": {
		run: func(ctx context.Context, conn *sql.DB) error { return goose.StatusContext(ctx, conn, ".") },
	},
	"reset": {
		run:  db.Reset,
		done: "All migrations have been rolled back",
	},
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal(usage)
	}

	name := os.Args[1]
	if name == "create" {
		if len(os.Args) < 3 {
			log.Fatal("Usage: migrate create <name>")
		}
		createMigration(os.Args[2])
		return
	}

	cmd, ok := commands[name]
	if !ok {
		log.Fatalf("Unknown command: %s\n%s", name, usage)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	conn, err := db.Open(ctx, logger.New(logger.Opts{Env: cfg.App.Env}), cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Failed to set dialect: %v", err)
	}

	if err := cmd.run(ctx, conn); err != nil {
		log.Fatalf("migrate %s failed: %v", name, err)
	}
	if cmd.done != "" {
		fmt.Println(cmd.done)
	}
}

// createMigration writes a Go migration skeleton; it needs no database.
func createMigration(name string) {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("Failed to get working directory: %v", err)
	}

	dir := filepath.Join(wd, migrationsDir)
	fmt.Printf("Creating migration in: %s\n", dir)

	if err := goose.Create(nil, dir, name, "go"); err != nil {
		log.Fatalf("Failed to create migration: %v", err)
	}
}

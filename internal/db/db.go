package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/orgball2608/mini-insta/internal/migrations"
	"github.com/orgball2608/mini-insta/pkg/config"
	"github.com/orgball2608/mini-insta/pkg/logger"
	"github.com/orgball2608/mini-insta/pkg/retry"
	"github.com/pressly/goose/v3"
)

// Go migrations register themselves globally, so goose only needs an existing directory.
const migrationsDir = "."

// Open returns a database/sql handle on the lib/pq driver, used by goose only.
func Open(ctx context.Context, log logger.Logger, cfg *config.Config) (*sql.DB, error) {
	conn, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	if err := retry.Ping(ctx, log, "postgres", retry.PingFunc(conn.PingContext)); err != nil {
		conn.Close()
		return nil, fmt.Errorf("postgres is unreachable: %w", err)
	}

	return conn, nil
}

// Migrate applies every pending schema migration.
func Migrate(ctx context.Context, log logger.Logger, cfg *config.Config) error {
	conn, err := Open(ctx, log, cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	return Up(ctx, conn)
}

func Up(ctx context.Context, conn *sql.DB) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, conn, migrationsDir)
}

func Reset(ctx context.Context, conn *sql.DB) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.ResetContext(ctx, conn, migrationsDir)
}

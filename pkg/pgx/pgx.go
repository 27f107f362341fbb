package pgx

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/mini-insta/pkg/config"
	"github.com/orgball2608/mini-insta/pkg/logger"
	"github.com/orgball2608/mini-insta/pkg/retry"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In
	LC     fx.Lifecycle
	Logger logger.Logger
	Config *config.Config
}

// New builds the pool shared by every repository. Connections are opened lazily;
// OnStart waits until postgres answers.
func New(opts Opts) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(opts.Config.GetURL())
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres url: %w", err)
	}

	if opts.Config.Postgres.MaxConns > 0 {
		poolCfg.MaxConns = opts.Config.Postgres.MaxConns
	}
	poolCfg.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	log := opts.Logger.WithComponent("Postgres")
	opts.LC.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := retry.Ping(ctx, log, "pgx pool", pool); err != nil {
				return fmt.Errorf("failed to ping postgres: %w", err)
			}
			log.Info("Connected to postgres", "host", poolCfg.ConnConfig.Host, "max_conns", poolCfg.MaxConns)
			return nil
		},
		OnStop: func(context.Context) error {
			pool.Close()
			return nil
		},
	})

	return pool, nil
}

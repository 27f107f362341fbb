package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/orgball2608/mini-insta/internal/db"
	"github.com/orgball2608/mini-insta/internal/engagement"
	"github.com/orgball2608/mini-insta/internal/engagement/engagementimpl"
	"github.com/orgball2608/mini-insta/internal/feed"
	"github.com/orgball2608/mini-insta/internal/feed/feedimpl"
	"github.com/orgball2608/mini-insta/internal/graph"
	"github.com/orgball2608/mini-insta/internal/graph/graphimpl"
	"github.com/orgball2608/mini-insta/internal/posts"
	"github.com/orgball2608/mini-insta/internal/posts/postsimpl"
	"github.com/orgball2608/mini-insta/internal/profiles"
	"github.com/orgball2608/mini-insta/internal/profiles/profilesimpl"
	repositories "github.com/orgball2608/mini-insta/internal/repositories/fx"
	"github.com/orgball2608/mini-insta/internal/search"
	"github.com/orgball2608/mini-insta/internal/search/searchimpl"
	"github.com/orgball2608/mini-insta/internal/server"
	"github.com/orgball2608/mini-insta/pkg/config"
	"github.com/orgball2608/mini-insta/pkg/logger"
	"github.com/orgball2608/mini-insta/pkg/pgx"
	"github.com/orgball2608/mini-insta/pkg/ratelimit"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
		ratelimit.FxOption,
	),
	repositories.Module,
	fx.Provide(
		fx.Annotate(
			graphimpl.New,
			fx.As(new(graph.Client)),
		),
		fx.Annotate(
			feedimpl.New,
			fx.As(new(feed.Client)),
		),
		fx.Annotate(
			engagementimpl.New,
			fx.As(new(engagement.Client)),
		),
		fx.Annotate(
			searchimpl.New,
			fx.As(new(search.Client)),
		),
		fx.Annotate(
			profilesimpl.New,
			fx.As(new(profiles.Client)),
		),
		fx.Annotate(
			postsimpl.New,
			fx.As(new(posts.Client)),
		),
		server.New,
	),
	fx.Invoke(migrate),
	fx.Invoke(run),
)

func migrate(lc fx.Lifecycle, log logger.Logger, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.Migrate(ctx, log, cfg); err != nil {
				return fmt.Errorf("failed to migrate: %w", err)
			}
			log.Info("Schema is up to date")
			return nil
		},
	})
}

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, srv *server.Server) {
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go startHttpServer(log, httpServer)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down http server")
			return httpServer.Shutdown(ctx)
		},
	})
}

func startHttpServer(log logger.Logger, httpServer *http.Server) {
	log.Info(fmt.Sprintf("Starting server on %s", httpServer.Addr))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("Server failed to start", "error", err)
	}
}

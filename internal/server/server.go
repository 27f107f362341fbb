package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/orgball2608/mini-insta/internal/engagement"
	"github.com/orgball2608/mini-insta/internal/feed"
	"github.com/orgball2608/mini-insta/internal/graph"
	"github.com/orgball2608/mini-insta/internal/posts"
	"github.com/orgball2608/mini-insta/internal/profiles"
	"github.com/orgball2608/mini-insta/internal/search"
	"github.com/orgball2608/mini-insta/pkg/config"
	"github.com/orgball2608/mini-insta/pkg/logger"
	"github.com/orgball2608/mini-insta/pkg/ratelimit"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config     *config.Config
	Logger     logger.Logger
	Profiles   profiles.Client
	Posts      posts.Client
	Graph      graph.Client
	Feed       feed.Client
	Engagement engagement.Client
	Search     search.Client
	Limiter    ratelimit.Limiter
}

type Server struct {
	Config     *config.Config
	Logger     logger.Logger
	Profiles   profiles.Client
	Posts      posts.Client
	Graph      graph.Client
	Feed       feed.Client
	Engagement engagement.Client
	Search     search.Client
	Limiter    ratelimit.Limiter

	router *mux.Router
}

func New(opts Opts) *Server {
	s := &Server{
		Config:     opts.Config,
		Logger:     opts.Logger.WithComponent("HTTP"),
		Profiles:   opts.Profiles,
		Posts:      opts.Posts,
		Graph:      opts.Graph,
		Feed:       opts.Feed,
		Engagement: opts.Engagement,
		Search:     opts.Search,
		Limiter:    opts.Limiter,
		router:     mux.NewRouter(),
	}
	s.configureRouter()
	return s
}

func (s *Server) configureRouter() {
	s.router.HandleFunc("/healthz", s.handleHealthCheck()).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/profiles", s.handleListProfiles()).Methods(http.MethodGet)
	api.Handle("/profiles", s.withAccount(s.handleCreateProfile())).Methods(http.MethodPost)
	api.Handle("/profiles/me", s.withProfile(s.handleMyProfile())).Methods(http.MethodGet)
	api.Handle("/profiles/me", s.withProfile(s.limited(s.handleUpdateMyProfile()))).Methods(http.MethodPut)
	api.Handle("/profiles/{id:[0-9]+}", s.withOptionalProfile(s.handleGetProfile())).Methods(http.MethodGet)
	api.HandleFunc("/profiles/{id:[0-9]+}/followers", s.handleFollowers()).Methods(http.MethodGet)
	api.HandleFunc("/profiles/{id:[0-9]+}/following", s.handleFollowing()).Methods(http.MethodGet)
	api.Handle("/profiles/{id:[0-9]+}/follow", s.withProfile(s.limited(s.handleFollow()))).Methods(http.MethodPost)
	api.Handle("/profiles/{id:[0-9]+}/unfollow", s.withProfile(s.limited(s.handleUnfollow()))).Methods(http.MethodPost)

	api.Handle("/feed", s.withProfile(s.handleFeed())).Methods(http.MethodGet)
	api.Handle("/search", s.withProfile(s.handleSearch())).Methods(http.MethodGet)

	api.Handle("/posts", s.withProfile(s.limited(s.handleCreatePost()))).Methods(http.MethodPost)
	api.Handle("/posts/{id:[0-9]+}", s.withOptionalProfile(s.handleGetPost())).Methods(http.MethodGet)
	api.Handle("/posts/{id:[0-9]+}", s.withProfile(s.limited(s.handleUpdatePost()))).Methods(http.MethodPut)
	api.Handle("/posts/{id:[0-9]+}", s.withProfile(s.limited(s.handleDeletePost()))).Methods(http.MethodDelete)
	api.Handle("/posts/{id:[0-9]+}/comments", s.withProfile(s.limited(s.handleComment()))).Methods(http.MethodPost)
	api.Handle("/posts/{id:[0-9]+}/like", s.withProfile(s.limited(s.handleLike()))).Methods(http.MethodPost)
	api.Handle("/posts/{id:[0-9]+}/unlike", s.withProfile(s.limited(s.handleUnlike()))).Methods(http.MethodPost)

	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "route not found"})
	})
}

// Handler returns the router wrapped in recovery, access logging and CORS.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.router

	h = handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type", "X-Requested-With"}),
	)(h)

	h = handlers.CustomLoggingHandler(io.Discard, h, func(_ io.Writer, p handlers.LogFormatterParams) {
		s.Logger.Info("Request served",
			"method", p.Request.Method,
			"url", p.URL.String(),
			"status", p.StatusCode,
			"size", p.Size,
		)
	})

	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{log: s.Logger}),
		handlers.PrintRecoveryStack(false),
	)(h)
}

func (s *Server) handleHealthCheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Logger.Debug("Health check request received", "method", r.Method, "url", r.URL.String())
		w.Header().Set("Content-Type", "text/plain")
		if _, err := w.Write([]byte("ok")); err != nil {
			s.Logger.Error("Failed to write response", "error", err)
		}
	}
}

type recoveryLogger struct {
	log logger.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.log.Error("Handler panicked", "panic", fmt.Sprint(v...))
}

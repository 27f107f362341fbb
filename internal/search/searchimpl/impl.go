package searchimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/orgball2608/mini-insta/internal/domain"
	"github.com/orgball2608/mini-insta/internal/repositories/post"
	"github.com/orgball2608/mini-insta/internal/repositories/profile"
	"github.com/orgball2608/mini-insta/internal/search"
	"github.com/orgball2608/mini-insta/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	PostRepo    post.Repository
	ProfileRepo profile.Repository
	Logger      logger.Logger
}

type SearchImpl struct {
	PostRepo    post.Repository
	ProfileRepo profile.Repository
	Logger      logger.Logger
}

func New(opts Opts) *SearchImpl {
	return &SearchImpl{
		PostRepo:    opts.PostRepo,
		ProfileRepo: opts.ProfileRepo,
		Logger:      opts.Logger.WithComponent("Search"),
	}
}

var _ search.Client = (*SearchImpl)(nil)

func (s *SearchImpl) Search(ctx context.Context, query string) (*domain.SearchResult, error) {
	query = strings.TrimSpace(query)

	result := &domain.SearchResult{
		Query:    query,
		Posts:    []*domain.Post{},
		Profiles: []*domain.Profile{},
	}
	if query == "" {
		return result, nil
	}

	posts, err := s.PostRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}

	profiles, err := s.ProfileRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search profiles: %w", err)
	}

	result.Posts = posts
	result.Profiles = profiles

	s.Logger.Debug("Search done", "query", query, "posts", len(posts), "profiles", len(profiles))
	return result, nil
}

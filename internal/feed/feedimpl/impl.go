package feedimpl

import (
	"context"
	"fmt"
	"slices"

	"github.com/orgball2608/mini-insta/internal/domain"
	"github.com/orgball2608/mini-insta/internal/feed"
	"github.com/orgball2608/mini-insta/internal/graph"
	"github.com/orgball2608/mini-insta/internal/repositories/post"
	"github.com/orgball2608/mini-insta/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Graph    graph.Client
	PostRepo post.Repository
	Logger   logger.Logger
}

type FeedImpl struct {
	Graph    graph.Client
	PostRepo post.Repository
	Logger   logger.Logger
}

func New(opts Opts) *FeedImpl {
	return &FeedImpl{
		Graph:    opts.Graph,
		PostRepo: opts.PostRepo,
		Logger:   opts.Logger.WithComponent("Feed"),
	}
}

var _ feed.Client = (*FeedImpl)(nil)

func (f *FeedImpl) FeedFor(ctx context.Context, profileID int64) ([]*domain.Post, error) {
	following, err := f.Graph.Following(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if len(following) == 0 {
		return []*domain.Post{}, nil
	}

	posts, err := f.PostRepo.GetByProfileIDs(ctx, domain.ProfileIDs(following))
	if err != nil {
		return nil, fmt.Errorf("failed to load feed of %d: %w", profileID, err)
	}

	// posts arrive in id order, so a stable sort keeps insertion order among equal timestamps
	slices.SortStableFunc(posts, func(a, b *domain.Post) int {
		switch {
		case a.NewerThan(b):
			return -1
		case b.NewerThan(a):
			return 1
		}
		return 0
	})

	f.Logger.Debug("Feed built", "profile_id", profileID, "following", len(following), "posts", len(posts))
	return posts, nil
}

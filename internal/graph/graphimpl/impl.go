package graphimpl

import (
	"context"
	"fmt"

	"github.com/orgball2608/mini-insta/internal/domain"
	"github.com/orgball2608/mini-insta/internal/graph"
	"github.com/orgball2608/mini-insta/internal/repositories/follow"
	"github.com/orgball2608/mini-insta/internal/repositories/profile"
	"github.com/orgball2608/mini-insta/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	FollowRepo  follow.Repository
	ProfileRepo profile.Repository
	Logger      logger.Logger
}

type GraphImpl struct {
	FollowRepo  follow.Repository
	ProfileRepo profile.Repository
	Logger      logger.Logger
}

func New(opts Opts) *GraphImpl {
	return &GraphImpl{
		FollowRepo:  opts.FollowRepo,
		ProfileRepo: opts.ProfileRepo,
		Logger:      opts.Logger.WithComponent("Graph"),
	}
}

var _ graph.Client = (*GraphImpl)(nil)

func (g *GraphImpl) Followers(ctx context.Context, profileID int64) ([]*domain.Profile, error) {
	if _, err := g.ProfileRepo.GetByID(ctx, profileID); err != nil {
		return nil, err
	}

	followers, err := g.FollowRepo.GetFollowers(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to get followers of %d: %w", profileID, err)
	}
	return followers, nil
}

func (g *GraphImpl) Following(ctx context.Context, followerID int64) ([]*domain.Profile, error) {
	if _, err := g.ProfileRepo.GetByID(ctx, followerID); err != nil {
		return nil, err
	}

	following, err := g.FollowRepo.GetFollowing(ctx, followerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get following of %d: %w", followerID, err)
	}
	return following, nil
}

func (g *GraphImpl) FollowerCount(ctx context.Context, profileID int64) (int, error) {
	return g.FollowRepo.CountFollowers(ctx, profileID)
}

func (g *GraphImpl) FollowingCount(ctx context.Context, followerID int64) (int, error) {
	return g.FollowRepo.CountFollowing(ctx, followerID)
}

func (g *GraphImpl) IsFollowing(ctx context.Context, profileID, followerID int64) (bool, error) {
	if profileID == followerID {
		return false, nil
	}
	return g.FollowRepo.Exists(ctx, profileID, followerID)
}

func (g *GraphImpl) Follow(ctx context.Context, profileID, followerID int64) error {
	if profileID == followerID {
		g.Logger.Debug("Ignoring self follow", "profile_id", profileID)
		return nil
	}

	if _, err := g.ProfileRepo.GetByID(ctx, profileID); err != nil {
		return err
	}

	created, err := g.FollowRepo.Create(ctx, profileID, followerID)
	if err != nil {
		return fmt.Errorf("failed to follow %d: %w", profileID, err)
	}

	if created {
		g.Logger.Info("Follow created", "profile_id", profileID, "follower_id", followerID)
	}
	return nil
}

func (g *GraphImpl) Unfollow(ctx context.Context, profileID, followerID int64) error {
	if _, err := g.ProfileRepo.GetByID(ctx, profileID); err != nil {
		return err
	}

	deleted, err := g.FollowRepo.Delete(ctx, profileID, followerID)
	if err != nil {
		return fmt.Errorf("failed to unfollow %d: %w", profileID, err)
	}

	if deleted {
		g.Logger.Info("Follow removed", "profile_id", profileID, "follower_id", followerID)
	}
	return nil
}

package graph

import (
	"context"

	"github.com/orgball2608/mini-insta/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=graph.go -destination=mocks/mock.go

// Client answers questions about follow edges. In every call profileID is the
// followed side and followerID the following side.
type Client interface {
	Followers(ctx context.Context, profileID int64) ([]*domain.Profile, error)
	Following(ctx context.Context, followerID int64) ([]*domain.Profile, error)
	FollowerCount(ctx context.Context, profileID int64) (int, error)
	FollowingCount(ctx context.Context, followerID int64) (int, error)
	IsFollowing(ctx context.Context, profileID, followerID int64) (bool, error)

	// Follow makes followerID follow profileID. Self-follows and existing edges are no-ops.
	Follow(ctx context.Context, profileID, followerID int64) error

	// Unfollow removes the edge if present.
	Unfollow(ctx context.Context, profileID, followerID int64) error
}

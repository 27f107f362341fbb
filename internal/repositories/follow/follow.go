package follow

import (
	"context"

	"github.com/orgball2608/mini-insta/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=follow.go -destination=mocks/mock.go
type Repository interface {
	// Create stores the edge follower -> profile; an existing edge is left untouched
	// and reported with created == false
	Create(ctx context.Context, profileID, followerID int64) (created bool, err error)

	// Delete removes the edge if present and reports whether it existed
	Delete(ctx context.Context, profileID, followerID int64) (deleted bool, err error)

	Exists(ctx context.Context, profileID, followerID int64) (bool, error)

	// GetFollowers returns the profiles following profileID
	GetFollowers(ctx context.Context, profileID int64) ([]*domain.Profile, error)

	// GetFollowing returns the profiles followerID follows
	GetFollowing(ctx context.Context, followerID int64) ([]*domain.Profile, error)

	CountFollowers(ctx context.Context, profileID int64) (int, error)
	CountFollowing(ctx context.Context, followerID int64) (int, error)
}

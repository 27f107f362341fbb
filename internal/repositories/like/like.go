package like

import (
	"context"

	"github.com/orgball2608/mini-insta/internal/domain"
	apperrors "github.com/orgball2608/mini-insta/pkg/errors"
)

var ErrNotFound = apperrors.Wrap(apperrors.ErrNotFound, "like")

//go:generate go run go.uber.org/mock/mockgen -source=like.go -destination=mocks/mock.go
type Repository interface {
	// Create stores a like; a second like of the same post by the same profile is ignored
	Create(ctx context.Context, postID, profileID int64) (created bool, err error)

	Delete(ctx context.Context, postID, profileID int64) (deleted bool, err error)
	Exists(ctx context.Context, postID, profileID int64) (bool, error)
	CountByPostID(ctx context.Context, postID int64) (int, error)

	// GetMostRecent returns the newest like of a post or ErrNotFound
	GetMostRecent(ctx context.Context, postID int64) (*domain.Like, error)

	// GetLikers returns the distinct profiles who liked a post
	GetLikers(ctx context.Context, postID int64) ([]*domain.Profile, error)
}

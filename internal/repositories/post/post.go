package post

import (
	"context"

	"github.com/orgball2608/mini-insta/internal/domain"
	apperrors "github.com/orgball2608/mini-insta/pkg/errors"
)

var ErrNotFound = apperrors.Wrap(apperrors.ErrNotFound, "post")

//go:generate go run go.uber.org/mock/mockgen -source=post.go -destination=mocks/mock.go
type Repository interface {
	// Create inserts a post together with its photos in one transaction
	Create(ctx context.Context, post domain.Post, photos []domain.Photo) (*domain.Post, []*domain.Photo, error)

	GetByID(ctx context.Context, id int64) (*domain.Post, error)

	// GetByProfileID returns the posts of one profile, newest first
	GetByProfileID(ctx context.Context, profileID int64) ([]*domain.Post, error)

	// GetByProfileIDs returns the posts of several profiles in insertion order
	GetByProfileIDs(ctx context.Context, profileIDs []int64) ([]*domain.Post, error)

	UpdateCaption(ctx context.Context, id int64, caption string) (*domain.Post, error)

	// Delete removes the post; photos, comments and likes go with it
	Delete(ctx context.Context, id int64) error

	// Search matches query as a case sensitive substring of the caption, newest first
	Search(ctx context.Context, query string) ([]*domain.Post, error)
}

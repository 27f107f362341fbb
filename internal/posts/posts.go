package posts

import (
	"context"

	"github.com/orgball2608/mini-insta/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=posts.go -destination=mocks/mock.go
type Client interface {
	// Create stores a post with its photos; without photos the default image is attached
	Create(ctx context.Context, profileID int64, caption string, photos []domain.Photo) (*domain.Post, []*domain.Photo, error)

	Get(ctx context.Context, id int64) (*domain.Post, error)
	Photos(ctx context.Context, postID int64) ([]*domain.Photo, error)
	PhotosByPost(ctx context.Context, postIDs []int64) (map[int64][]*domain.Photo, error)

	// ByProfile returns the posts of a profile, newest first
	ByProfile(ctx context.Context, profileID int64) ([]*domain.Post, error)

	// UpdateCaption and Delete return a forbidden error unless editorID authored the post
	UpdateCaption(ctx context.Context, postID, editorID int64, caption string) (*domain.Post, error)
	Delete(ctx context.Context, postID, editorID int64) error
}

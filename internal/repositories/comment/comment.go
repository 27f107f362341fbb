package comment

import (
	"context"

	"github.com/orgball2608/mini-insta/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=comment.go -destination=mocks/mock.go

type Repository interface {
	Create(ctx context.Context, comment domain.Comment) (*domain.Comment, error)

	// GetByPostID returns the comments of a post, newest first
	GetByPostID(ctx context.Context, postID int64) ([]*domain.Comment, error)

	CountByPostID(ctx context.Context, postID int64) (int, error)
}

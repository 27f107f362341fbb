package photo

import (
	"context"

	"github.com/orgball2608/mini-insta/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=photo.go -destination=mocks/mock.go

type Repository interface {
	GetByPostID(ctx context.Context, postID int64) ([]*domain.Photo, error)
	GetByPostIDs(ctx context.Context, postIDs []int64) (map[int64][]*domain.Photo, error)
}

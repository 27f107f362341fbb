package feed

import (
	"context"

	"github.com/orgball2608/mini-insta/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=feed.go -destination=mocks/mock.go
type Client interface {
	// FeedFor returns the posts of every profile profileID follows, newest first
	FeedFor(ctx context.Context, profileID int64) ([]*domain.Post, error)
}

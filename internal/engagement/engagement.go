package engagement

import (
	"context"

	"github.com/orgball2608/mini-insta/internal/domain"
)

// Client aggregates likes and comments per post.
//
// Reads take a post the caller has already loaded and do not look it up again;
// for an unknown post they report zero counts and empty lists. Writes and
// Summary check the post first and surface not-found.
//
//go:generate go run go.uber.org/mock/mockgen -source=engagement.go -destination=mocks/mock.go
type Client interface {
	LikeCount(ctx context.Context, postID int64) (int, error)
	CommentCount(ctx context.Context, postID int64) (int, error)

	// MostRecentLike returns nil when the post has no likes
	MostRecentLike(ctx context.Context, postID int64) (*domain.Like, error)

	Likers(ctx context.Context, postID int64) ([]*domain.Profile, error)
	HasLiked(ctx context.Context, postID, profileID int64) (bool, error)

	// Like is idempotent; the author liking their own post is ignored
	Like(ctx context.Context, postID, profileID int64) error
	Unlike(ctx context.Context, postID, profileID int64) error

	Comment(ctx context.Context, postID, profileID int64, text string) (*domain.Comment, error)
	Comments(ctx context.Context, postID int64) ([]*domain.Comment, error)

	Summary(ctx context.Context, postID int64) (*domain.Engagement, error)
	SummaryOf(ctx context.Context, p *domain.Post) (*domain.Engagement, error)
}

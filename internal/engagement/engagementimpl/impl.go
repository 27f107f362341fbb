package engagementimpl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/orgball2608/mini-insta/internal/domain"
	"github.com/orgball2608/mini-insta/internal/engagement"
	"github.com/orgball2608/mini-insta/internal/repositories/comment"
	"github.com/orgball2608/mini-insta/internal/repositories/like"
	"github.com/orgball2608/mini-insta/internal/repositories/post"
	apperrors "github.com/orgball2608/mini-insta/pkg/errors"
	"github.com/orgball2608/mini-insta/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	PostRepo    post.Repository
	LikeRepo    like.Repository
	CommentRepo comment.Repository
	Logger      logger.Logger
}

type EngagementImpl struct {
	PostRepo    post.Repository
	LikeRepo    like.Repository
	CommentRepo comment.Repository
	Logger      logger.Logger
}

func New(opts Opts) *EngagementImpl {
	return &EngagementImpl{
		PostRepo:    opts.PostRepo,
		LikeRepo:    opts.LikeRepo,
		CommentRepo: opts.CommentRepo,
		Logger:      opts.Logger.WithComponent("Engagement"),
	}
}

var _ engagement.Client = (*EngagementImpl)(nil)

func (e *EngagementImpl) LikeCount(ctx context.Context, postID int64) (int, error) {
	return e.LikeRepo.CountByPostID(ctx, postID)
}

func (e *EngagementImpl) CommentCount(ctx context.Context, postID int64) (int, error) {
	return e.CommentRepo.CountByPostID(ctx, postID)
}

func (e *EngagementImpl) MostRecentLike(ctx context.Context, postID int64) (*domain.Like, error) {
	l, err := e.LikeRepo.GetMostRecent(ctx, postID)
	if errors.Is(err, like.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get most recent like of %d: %w", postID, err)
	}
	return l, nil
}

func (e *EngagementImpl) Likers(ctx context.Context, postID int64) ([]*domain.Profile, error) {
	return e.LikeRepo.GetLikers(ctx, postID)
}

func (e *EngagementImpl) HasLiked(ctx context.Context, postID, profileID int64) (bool, error) {
	return e.LikeRepo.Exists(ctx, postID, profileID)
}

func (e *EngagementImpl) Like(ctx context.Context, postID, profileID int64) error {
	p, err := e.PostRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if p.ProfileID == profileID {
		e.Logger.Debug("Ignoring like of own post", "post_id", postID, "profile_id", profileID)
		return nil
	}

	created, err := e.LikeRepo.Create(ctx, postID, profileID)
	if err != nil {
		return fmt.Errorf("failed to like post %d: %w", postID, err)
	}

	if created {
		e.Logger.Info("Post liked", "post_id", postID, "profile_id", profileID)
	}
	return nil
}

func (e *EngagementImpl) Unlike(ctx context.Context, postID, profileID int64) error {
	if _, err := e.PostRepo.GetByID(ctx, postID); err != nil {
		return err
	}

	deleted, err := e.LikeRepo.Delete(ctx, postID, profileID)
	if err != nil {
		return fmt.Errorf("failed to unlike post %d: %w", postID, err)
	}

	if deleted {
		e.Logger.Info("Post unliked", "post_id", postID, "profile_id", profileID)
	}
	return nil
}

func (e *EngagementImpl) Comment(ctx context.Context, postID, profileID int64, text string) (*domain.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.Invalid("comment text is required")
	}

	if _, err := e.PostRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	c, err := e.CommentRepo.Create(ctx, domain.Comment{
		PostID:    postID,
		ProfileID: profileID,
		Text:      text,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to comment on post %d: %w", postID, err)
	}

	e.Logger.Info("Comment created", "post_id", postID, "profile_id", profileID, "comment_id", c.ID)
	return c, nil
}

func (e *EngagementImpl) Comments(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	return e.CommentRepo.GetByPostID(ctx, postID)
}

func (e *EngagementImpl) Summary(ctx context.Context, postID int64) (*domain.Engagement, error) {
	p, err := e.PostRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return e.SummaryOf(ctx, p)
}

func (e *EngagementImpl) SummaryOf(ctx context.Context, p *domain.Post) (*domain.Engagement, error) {
	postID := p.ID

	likes, err := e.LikeCount(ctx, postID)
	if err != nil {
		return nil, err
	}

	comments, err := e.CommentCount(ctx, postID)
	if err != nil {
		return nil, err
	}

	recent, err := e.MostRecentLike(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &domain.Engagement{
		PostID:         postID,
		LikeCount:      likes,
		CommentCount:   comments,
		MostRecentLike: recent,
	}, nil
}

package postsimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/orgball2608/mini-insta/internal/domain"
	"github.com/orgball2608/mini-insta/internal/posts"
	"github.com/orgball2608/mini-insta/internal/repositories/photo"
	"github.com/orgball2608/mini-insta/internal/repositories/post"
	apperrors "github.com/orgball2608/mini-insta/pkg/errors"
	"github.com/orgball2608/mini-insta/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	PostRepo  post.Repository
	PhotoRepo photo.Repository
	Logger    logger.Logger
}

type PostsImpl struct {
	PostRepo  post.Repository
	PhotoRepo photo.Repository
	Logger    logger.Logger
}

func New(opts Opts) *PostsImpl {
	return &PostsImpl{
		PostRepo:  opts.PostRepo,
		PhotoRepo: opts.PhotoRepo,
		Logger:    opts.Logger.WithComponent("Posts"),
	}
}

var _ posts.Client = (*PostsImpl)(nil)

func (p *PostsImpl) Create(ctx context.Context, profileID int64, caption string, photos []domain.Photo) (*domain.Post, []*domain.Photo, error) {
	if strings.TrimSpace(caption) == "" {
		return nil, nil, apperrors.Invalid("caption is required")
	}

	for _, ph := range photos {
		if err := ph.Validate(); err != nil {
			return nil, nil, err
		}
	}

	if len(photos) == 0 {
		photos = []domain.Photo{{ImageFile: domain.DefaultImageFile}}
	}

	created, stored, err := p.PostRepo.Create(ctx, domain.Post{ProfileID: profileID, Caption: caption}, photos)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create post: %w", err)
	}

	p.Logger.Info("Post created", "post_id", created.ID, "profile_id", profileID, "photos", len(stored))
	return created, stored, nil
}

func (p *PostsImpl) Get(ctx context.Context, id int64) (*domain.Post, error) {
	return p.PostRepo.GetByID(ctx, id)
}

func (p *PostsImpl) Photos(ctx context.Context, postID int64) ([]*domain.Photo, error) {
	return p.PhotoRepo.GetByPostID(ctx, postID)
}

func (p *PostsImpl) PhotosByPost(ctx context.Context, postIDs []int64) (map[int64][]*domain.Photo, error) {
	return p.PhotoRepo.GetByPostIDs(ctx, postIDs)
}

func (p *PostsImpl) ByProfile(ctx context.Context, profileID int64) ([]*domain.Post, error) {
	return p.PostRepo.GetByProfileID(ctx, profileID)
}

func (p *PostsImpl) UpdateCaption(ctx context.Context, postID, editorID int64, caption string) (*domain.Post, error) {
	if strings.TrimSpace(caption) == "" {
		return nil, apperrors.Invalid("caption is required")
	}

	if _, err := p.owned(ctx, postID, editorID); err != nil {
		return nil, err
	}

	updated, err := p.PostRepo.UpdateCaption(ctx, postID, caption)
	if err != nil {
		return nil, err
	}

	p.Logger.Info("Post caption updated", "post_id", postID)
	return updated, nil
}

func (p *PostsImpl) Delete(ctx context.Context, postID, editorID int64) error {
	if _, err := p.owned(ctx, postID, editorID); err != nil {
		return err
	}

	if err := p.PostRepo.Delete(ctx, postID); err != nil {
		return err
	}

	p.Logger.Info("Post deleted", "post_id", postID)
	return nil
}

func (p *PostsImpl) owned(ctx context.Context, postID, editorID int64) (*domain.Post, error) {
	existing, err := p.PostRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if existing.ProfileID != editorID {
		return nil, apperrors.Wrap(apperrors.ErrForbidden, "only the author can change a post")
	}
	return existing, nil
}

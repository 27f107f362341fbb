package postsimpl

import (
	"context"
	"io"
	"testing"

	"github.com/orgball2608/mini-insta/internal/domain"
	mock_photo "github.com/orgball2608/mini-insta/internal/repositories/photo/mocks"
	"github.com/orgball2608/mini-insta/internal/repositories/post"
	mock_post "github.com/orgball2608/mini-insta/internal/repositories/post/mocks"
	apperrors "github.com/orgball2608/mini-insta/pkg/errors"
	"github.com/orgball2608/mini-insta/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPosts(t *testing.T) (*PostsImpl, *mock_post.MockRepository, *mock_photo.MockRepository) {
	ctrl := gomock.NewController(t)
	posts := mock_post.NewMockRepository(ctrl)
	photos := mock_photo.NewMockRepository(ctrl)

	return New(Opts{
		PostRepo:  posts,
		PhotoRepo: photos,
		Logger:    logger.New(logger.Opts{Output: io.Discard}),
	}), posts, photos
}

func TestCreateAttachesDefaultPhoto(t *testing.T) {
	svc, posts, _ := newPosts(t)
	ctx := context.Background()

	posts.EXPECT().
		Create(ctx, domain.Post{ProfileID: 1, Caption: "hello"}, []domain.Photo{{ImageFile: domain.DefaultImageFile}}).
		Return(&domain.Post{ID: 3, ProfileID: 1, Caption: "hello"}, []*domain.Photo{{ID: 9, PostID: 3, ImageFile: domain.DefaultImageFile}}, nil)

	p, photos, err := svc.Create(ctx, 1, "hello", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.ID)
	require.Len(t, photos, 1)
	assert.Equal(t, domain.DefaultImageFile, photos[0].ImageRef())
}

func TestCreateKeepsGivenPhotos(t *testing.T) {
	svc, posts, _ := newPosts(t)
	ctx := context.Background()
	given := []domain.Photo{{ImageURL: "https://img.example/1.jpg"}, {ImageFile: "2.jpg"}}

	posts.EXPECT().
		Create(ctx, domain.Post{ProfileID: 1, Caption: "two"}, given).
		Return(&domain.Post{ID: 4}, []*domain.Photo{{ID: 1}, {ID: 2}}, nil)

	_, photos, err := svc.Create(ctx, 1, "two", given)
	require.NoError(t, err)
	assert.Len(t, photos, 2)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	svc, _, _ := newPosts(t)
	ctx := context.Background()

	_, _, err := svc.Create(ctx, 1, " ", nil)
	assert.True(t, apperrors.IsInvalidInput(err))

	_, _, err = svc.Create(ctx, 1, "caption", []domain.Photo{{}})
	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestUpdateCaptionOwnerOnly(t *testing.T) {
	svc, posts, _ := newPosts(t)
	ctx := context.Background()
	existing := &domain.Post{ID: 3, ProfileID: 1, Caption: "hello"}

	posts.EXPECT().GetByID(ctx, int64(3)).Return(existing, nil).Times(2)
	posts.EXPECT().UpdateCaption(ctx, int64(3), "hi").Return(&domain.Post{ID: 3, ProfileID: 1, Caption: "hi"}, nil)

	_, err := svc.UpdateCaption(ctx, 3, 2, "hi")
	assert.True(t, apperrors.IsForbidden(err))

	updated, err := svc.UpdateCaption(ctx, 3, 1, "hi")
	require.NoError(t, err)
	assert.Equal(t, "hi", updated.Caption)
}

func TestDelete(t *testing.T) {
	svc, posts, _ := newPosts(t)
	ctx := context.Background()

	posts.EXPECT().GetByID(ctx, int64(3)).Return(&domain.Post{ID: 3, ProfileID: 1}, nil)
	posts.EXPECT().Delete(ctx, int64(3)).Return(nil)
	posts.EXPECT().GetByID(ctx, int64(4)).Return(nil, post.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, 3, 1))
	assert.True(t, apperrors.IsNotFound(svc.Delete(ctx, 4, 1)))
}

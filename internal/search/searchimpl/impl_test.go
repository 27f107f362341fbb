package searchimpl

import (
	"context"
	"io"
	"testing"

	"github.com/orgball2608/mini-insta/internal/domain"
	mock_post "github.com/orgball2608/mini-insta/internal/repositories/post/mocks"
	mock_profile "github.com/orgball2608/mini-insta/internal/repositories/profile/mocks"
	"github.com/orgball2608/mini-insta/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSearch(t *testing.T) (*SearchImpl, *mock_post.MockRepository, *mock_profile.MockRepository) {
	ctrl := gomock.NewController(t)
	posts := mock_post.NewMockRepository(ctrl)
	profiles := mock_profile.NewMockRepository(ctrl)

	return New(Opts{
		PostRepo:    posts,
		ProfileRepo: profiles,
		Logger:      logger.New(logger.Opts{Output: io.Discard}),
	}), posts, profiles
}

func TestSearchCat(t *testing.T) {
	s, posts, profiles := newSearch(t)
	ctx := context.Background()
	catPost := &domain.Post{ID: 1, Caption: "my cat"}
	catLover := &domain.Profile{ID: 2, Username: "bob", Bio: "cat lover"}

	posts.EXPECT().Search(ctx, "cat").Return([]*domain.Post{catPost}, nil)
	profiles.EXPECT().Search(ctx, "cat").Return([]*domain.Profile{catLover}, nil)

	result, err := s.Search(ctx, "  cat ")
	require.NoError(t, err)
	assert.Equal(t, "cat", result.Query)
	assert.Equal(t, []*domain.Post{catPost}, result.Posts)
	assert.Equal(t, []*domain.Profile{catLover}, result.Profiles)
}

func TestSearchEmptyQuery(t *testing.T) {
	s, _, _ := newSearch(t)

	result, err := s.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Equal(t, "", result.Query)
	assert.NotNil(t, result.Posts)
	assert.NotNil(t, result.Profiles)
	assert.True(t, result.Empty())
}

func TestSearchNoMatches(t *testing.T) {
	s, posts, profiles := newSearch(t)
	ctx := context.Background()

	posts.EXPECT().Search(ctx, "Cat").Return([]*domain.Post{}, nil)
	profiles.EXPECT().Search(ctx, "Cat").Return([]*domain.Profile{}, nil)

	result, err := s.Search(ctx, "Cat")
	require.NoError(t, err)
	assert.Equal(t, "Cat", result.Query)
	assert.True(t, result.Empty())
}

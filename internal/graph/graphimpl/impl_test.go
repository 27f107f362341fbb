package graphimpl

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/orgball2608/mini-insta/internal/domain"
	"github.com/orgball2608/mini-insta/internal/repositories"
	mock_follow "github.com/orgball2608/mini-insta/internal/repositories/follow/mocks"
	"github.com/orgball2608/mini-insta/internal/repositories/profile"
	mock_profile "github.com/orgball2608/mini-insta/internal/repositories/profile/mocks"
	apperrors "github.com/orgball2608/mini-insta/pkg/errors"
	"github.com/orgball2608/mini-insta/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	follows  *mock_follow.MockRepository
	profiles *mock_profile.MockRepository
	graph    *GraphImpl
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		follows:  mock_follow.NewMockRepository(ctrl),
		profiles: mock_profile.NewMockRepository(ctrl),
	}
	f.graph = New(Opts{
		FollowRepo:  f.follows,
		ProfileRepo: f.profiles,
		Logger:      logger.New(logger.Opts{Output: io.Discard}),
	})
	return f
}

func TestFollowCreatesEdge(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.profiles.EXPECT().GetByID(ctx, int64(1)).Return(&domain.Profile{ID: 1}, nil)
	f.follows.EXPECT().Create(ctx, int64(1), int64(2)).Return(true, nil)

	require.NoError(t, f.graph.Follow(ctx, 1, 2))
}

func TestFollowExistingEdgeIsNoop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.profiles.EXPECT().GetByID(ctx, int64(1)).Return(&domain.Profile{ID: 1}, nil)
	f.follows.EXPECT().Create(ctx, int64(1), int64(2)).Return(false, nil)

	require.NoError(t, f.graph.Follow(ctx, 1, 2))
}

func TestFollowSelfNeverTouchesStore(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.graph.Follow(context.Background(), 5, 5))
}

func TestFollowUnknownProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.profiles.EXPECT().GetByID(ctx, int64(9)).Return(nil, profile.ErrNotFound)

	err := f.graph.Follow(ctx, 9, 2)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestFollowProfileRemovedBeforeInsert(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.profiles.EXPECT().GetByID(ctx, int64(1)).Return(&domain.Profile{ID: 1}, nil)
	f.follows.EXPECT().Create(ctx, int64(1), int64(2)).Return(false, repositories.ErrMissingReference)

	err := f.graph.Follow(ctx, 1, 2)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, http.StatusNotFound, apperrors.HTTPStatus(err))
}

func TestUnfollowMissingEdgeIsNoop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.profiles.EXPECT().GetByID(ctx, int64(1)).Return(&domain.Profile{ID: 1}, nil)
	f.follows.EXPECT().Delete(ctx, int64(1), int64(2)).Return(false, nil)

	require.NoError(t, f.graph.Unfollow(ctx, 1, 2))
}

func TestFollowersAndFollowing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := &domain.Profile{ID: 1, Username: "alice"}
	bob := &domain.Profile{ID: 2, Username: "bob"}

	f.profiles.EXPECT().GetByID(ctx, int64(1)).Return(alice, nil)
	f.follows.EXPECT().GetFollowers(ctx, int64(1)).Return([]*domain.Profile{bob}, nil)
	f.profiles.EXPECT().GetByID(ctx, int64(2)).Return(bob, nil)
	f.follows.EXPECT().GetFollowing(ctx, int64(2)).Return([]*domain.Profile{alice}, nil)

	followers, err := f.graph.Followers(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []*domain.Profile{bob}, followers)

	following, err := f.graph.Following(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []*domain.Profile{alice}, following)
}

func TestIsFollowingSelf(t *testing.T) {
	f := newFixture(t)

	ok, err := f.graph.IsFollowing(context.Background(), 3, 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

package app

import (
	"context"
	"database/sql"
	"io"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/mini-insta/internal/db"
	"github.com/orgball2608/mini-insta/internal/domain"
	"github.com/orgball2608/mini-insta/internal/engagement/engagementimpl"
	"github.com/orgball2608/mini-insta/internal/feed/feedimpl"
	"github.com/orgball2608/mini-insta/internal/graph/graphimpl"
	"github.com/orgball2608/mini-insta/internal/posts/postsimpl"
	"github.com/orgball2608/mini-insta/internal/profiles/profilesimpl"
	"github.com/orgball2608/mini-insta/internal/repositories/comment"
	"github.com/orgball2608/mini-insta/internal/repositories/follow"
	"github.com/orgball2608/mini-insta/internal/repositories/like"
	"github.com/orgball2608/mini-insta/internal/repositories/photo"
	"github.com/orgball2608/mini-insta/internal/repositories/post"
	"github.com/orgball2608/mini-insta/internal/repositories/profile"
	"github.com/orgball2608/mini-insta/internal/search/searchimpl"
	apperrors "github.com/orgball2608/mini-insta/pkg/errors"
	"github.com/orgball2608/mini-insta/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stack struct {
	profiles   *profilesimpl.ProfilesImpl
	posts      *postsimpl.PostsImpl
	graph      *graphimpl.GraphImpl
	feed       *feedimpl.FeedImpl
	engagement *engagementimpl.EngagementImpl
	search     *searchimpl.SearchImpl
	likes      like.Repository
	follows    follow.Repository
	profileDB  profile.Repository
}

// newStack migrates a scratch database from POSTGRES_TEST_DSN and wires the services on it.
func newStack(t *testing.T) *stack {
	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN is not set")
	}

	ctx := context.Background()
	log := logger.New(logger.Opts{Output: io.Discard})

	conn, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	// up first so the goose version table exists before the reset
	require.NoError(t, db.Up(ctx, conn))
	require.NoError(t, db.Reset(ctx, conn))
	require.NoError(t, db.Up(ctx, conn))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	profileRepo := profile.NewPgxRepository(pool, log)
	postRepo := post.NewPgx(pool, log)
	photoRepo := photo.NewPgxRepository(pool, log)
	followRepo := follow.NewPgxRepository(pool, log)
	commentRepo := comment.NewPgxRepository(pool, log)
	likeRepo := like.NewPgxRepository(pool, log)

	g := graphimpl.New(graphimpl.Opts{FollowRepo: followRepo, ProfileRepo: profileRepo, Logger: log})

	return &stack{
		profiles:   profilesimpl.New(profilesimpl.Opts{ProfileRepo: profileRepo, Logger: log}),
		posts:      postsimpl.New(postsimpl.Opts{PostRepo: postRepo, PhotoRepo: photoRepo, Logger: log}),
		graph:      g,
		feed:       feedimpl.New(feedimpl.Opts{Graph: g, PostRepo: postRepo, Logger: log}),
		engagement: engagementimpl.New(engagementimpl.Opts{PostRepo: postRepo, LikeRepo: likeRepo, CommentRepo: commentRepo, Logger: log}),
		search:     searchimpl.New(searchimpl.Opts{PostRepo: postRepo, ProfileRepo: profileRepo, Logger: log}),
		likes:      likeRepo,
		follows:    followRepo,
		profileDB:  profileRepo,
	}
}

func (s *stack) profile(t *testing.T, accountID int64, username, bio string) *domain.Profile {
	p, err := s.profiles.Create(context.Background(), domain.Profile{AccountID: accountID, Username: username, Bio: bio})
	require.NoError(t, err)
	return p
}

func (s *stack) post(t *testing.T, author *domain.Profile, caption string) *domain.Post {
	p, _, err := s.posts.Create(context.Background(), author.ID, caption, nil)
	require.NoError(t, err)
	// keep created_at strictly increasing between posts
	time.Sleep(5 * time.Millisecond)
	return p
}

func TestIntegrationFollowAndFeed(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	a := s.profile(t, 1, "a", "")
	b := s.profile(t, 2, "b", "")

	require.NoError(t, s.graph.Follow(ctx, a.ID, b.ID))
	require.NoError(t, s.graph.Follow(ctx, a.ID, b.ID))
	require.NoError(t, s.graph.Follow(ctx, b.ID, b.ID))

	count, err := s.graph.FollowerCount(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	self, err := s.follows.Exists(ctx, b.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, self)

	s.post(t, a, "hello")
	s.post(t, a, "world")

	feed, err := s.feed.FeedFor(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "world", feed[0].Caption)
	assert.Equal(t, "hello", feed[1].Caption)

	empty, err := s.feed.FeedFor(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, s.graph.Unfollow(ctx, a.ID, b.ID))
	require.NoError(t, s.graph.Unfollow(ctx, a.ID, b.ID))

	feed, err = s.feed.FeedFor(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestIntegrationLikes(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	author := s.profile(t, 1, "author", "")
	first := s.profile(t, 2, "first", "")
	second := s.profile(t, 3, "second", "")
	p := s.post(t, author, "sunset")

	recent, err := s.engagement.MostRecentLike(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, recent)

	require.NoError(t, s.engagement.Like(ctx, p.ID, author.ID))
	require.NoError(t, s.engagement.Like(ctx, p.ID, first.ID))
	require.NoError(t, s.engagement.Like(ctx, p.ID, first.ID))
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, s.engagement.Like(ctx, p.ID, second.ID))

	summary, err := s.engagement.Summary(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.LikeCount)
	require.NotNil(t, summary.MostRecentLike)
	assert.Equal(t, second.ID, summary.MostRecentLike.ProfileID)

	require.NoError(t, s.engagement.Unlike(ctx, p.ID, second.ID))
	count, err := s.engagement.LikeCount(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestIntegrationSearchAndCascade(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	alice := s.profile(t, 1, "alice", "")
	bob := s.profile(t, 2, "bob", "cat lover")
	catPost := s.post(t, alice, "my cat")
	s.post(t, alice, "dog day")

	result, err := s.search.Search(ctx, "cat")
	require.NoError(t, err)
	require.Len(t, result.Posts, 1)
	assert.Equal(t, catPost.ID, result.Posts[0].ID)
	require.Len(t, result.Profiles, 1)
	assert.Equal(t, bob.ID, result.Profiles[0].ID)

	upper, err := s.search.Search(ctx, "Cat")
	require.NoError(t, err)
	assert.True(t, upper.Empty())

	photos, err := s.posts.Photos(ctx, catPost.ID)
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.Equal(t, domain.DefaultImageFile, photos[0].ImageRef())

	require.NoError(t, s.engagement.Like(ctx, catPost.ID, bob.ID))
	_, err = s.engagement.Comment(ctx, catPost.ID, bob.ID, "cute")
	require.NoError(t, err)

	require.NoError(t, s.posts.Delete(ctx, catPost.ID, alice.ID))

	_, err = s.posts.Get(ctx, catPost.ID)
	assert.True(t, apperrors.IsNotFound(err))

	liked, err := s.likes.Exists(ctx, catPost.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	_, err = s.profiles.Create(ctx, domain.Profile{AccountID: 9, Username: "alice"})
	assert.True(t, apperrors.IsAlreadyExists(err))
}

func TestIntegrationProfileDeleteCascades(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	carol := s.profile(t, 1, "carol", "")
	dave := s.profile(t, 2, "dave", "")
	carolPost := s.post(t, carol, "beach")
	davePost := s.post(t, dave, "hike")

	require.NoError(t, s.graph.Follow(ctx, carol.ID, dave.ID))
	require.NoError(t, s.graph.Follow(ctx, dave.ID, carol.ID))
	require.NoError(t, s.engagement.Like(ctx, carolPost.ID, dave.ID))
	require.NoError(t, s.engagement.Like(ctx, davePost.ID, carol.ID))
	_, err := s.engagement.Comment(ctx, carolPost.ID, dave.ID, "nice")
	require.NoError(t, err)
	_, err = s.engagement.Comment(ctx, davePost.ID, carol.ID, "wow")
	require.NoError(t, err)

	require.NoError(t, s.profileDB.Delete(ctx, carol.ID))

	_, err = s.profiles.Get(ctx, carol.ID)
	assert.True(t, apperrors.IsNotFound(err))
	_, err = s.posts.Get(ctx, carolPost.ID)
	assert.True(t, apperrors.IsNotFound(err))

	followed, err := s.follows.Exists(ctx, carol.ID, dave.ID)
	require.NoError(t, err)
	assert.False(t, followed)
	following, err := s.follows.Exists(ctx, dave.ID, carol.ID)
	require.NoError(t, err)
	assert.False(t, following)

	followers, err := s.graph.FollowerCount(ctx, dave.ID)
	require.NoError(t, err)
	assert.Zero(t, followers)
	followingCount, err := s.graph.FollowingCount(ctx, dave.ID)
	require.NoError(t, err)
	assert.Zero(t, followingCount)

	liked, err := s.likes.Exists(ctx, davePost.ID, carol.ID)
	require.NoError(t, err)
	assert.False(t, liked)
	likes, err := s.engagement.LikeCount(ctx, davePost.ID)
	require.NoError(t, err)
	assert.Zero(t, likes)
	comments, err := s.engagement.CommentCount(ctx, davePost.ID)
	require.NoError(t, err)
	assert.Zero(t, comments)

	// rows on the deleted post went with it
	orphanLikes, err := s.engagement.LikeCount(ctx, carolPost.ID)
	require.NoError(t, err)
	assert.Zero(t, orphanLikes)
	orphanComments, err := s.engagement.CommentCount(ctx, carolPost.ID)
	require.NoError(t, err)
	assert.Zero(t, orphanComments)

	// dave is untouched
	_, err = s.posts.Get(ctx, davePost.ID)
	require.NoError(t, err)

	err = s.profileDB.Delete(ctx, carol.ID)
	assert.True(t, apperrors.IsNotFound(err))

	// an insert that lost the race with the delete reports the missing row
	_, err = s.likes.Create(ctx, carolPost.ID, dave.ID)
	assert.True(t, apperrors.IsNotFound(err))
	_, err = s.follows.Create(ctx, carol.ID, dave.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

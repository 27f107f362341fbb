package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/orgball2608/mini-insta/internal/domain"
	mock_engagement "github.com/orgball2608/mini-insta/internal/engagement/mocks"
	mock_feed "github.com/orgball2608/mini-insta/internal/feed/mocks"
	mock_graph "github.com/orgball2608/mini-insta/internal/graph/mocks"
	mock_posts "github.com/orgball2608/mini-insta/internal/posts/mocks"
	mock_profiles "github.com/orgball2608/mini-insta/internal/profiles/mocks"
	"github.com/orgball2608/mini-insta/internal/repositories/post"
	"github.com/orgball2608/mini-insta/internal/repositories/profile"
	mock_search "github.com/orgball2608/mini-insta/internal/search/mocks"
	"github.com/orgball2608/mini-insta/pkg/config"
	apperrors "github.com/orgball2608/mini-insta/pkg/errors"
	"github.com/orgball2608/mini-insta/pkg/logger"
	"github.com/orgball2608/mini-insta/pkg/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "test-secret"

type fixture struct {
	profiles   *mock_profiles.MockClient
	posts      *mock_posts.MockClient
	graph      *mock_graph.MockClient
	feed       *mock_feed.MockClient
	engagement *mock_engagement.MockClient
	search     *mock_search.MockClient
	handler    http.Handler
}

func newFixture(t *testing.T, limiter ratelimit.Limiter) *fixture {
	ctrl := gomock.NewController(t)
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = testSecret

	if limiter == nil {
		limiter = ratelimit.NewInMemoryLimiter(1000, time.Second, 1000)
	}

	f := &fixture{
		profiles:   mock_profiles.NewMockClient(ctrl),
		posts:      mock_posts.NewMockClient(ctrl),
		graph:      mock_graph.NewMockClient(ctrl),
		feed:       mock_feed.NewMockClient(ctrl),
		engagement: mock_engagement.NewMockClient(ctrl),
		search:     mock_search.NewMockClient(ctrl),
	}
	f.handler = New(Opts{
		Config:     cfg,
		Logger:     logger.New(logger.Opts{Output: io.Discard}),
		Profiles:   f.profiles,
		Posts:      f.posts,
		Graph:      f.graph,
		Feed:       f.feed,
		Engagement: f.engagement,
		Search:     f.search,
		Limiter:    limiter,
	}).Handler()
	return f
}

func token(t *testing.T, accountID int64, secret string) string {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(accountID, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func (f *fixture) do(t *testing.T, method, target, body string, accountID int64) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if accountID != 0 {
		req.Header.Set("Authorization", "Bearer "+token(t, accountID, testSecret))
	}

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

var alice = &domain.Profile{ID: 1, AccountID: 40, Username: "alice"}

func (f *fixture) signedIn() {
	f.profiles.EXPECT().ProfileForAccount(gomock.Any(), alice.AccountID).Return(alice, nil).AnyTimes()
}

func TestHealthz(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(t, http.MethodGet, "/healthz", "", 0)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestFeedRequiresToken(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(t, http.MethodGet, "/api/feed", "", 0)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRejectsForeignSignature(t *testing.T) {
	f := newFixture(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/feed", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, alice.AccountID, "other-secret"))
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAccountWithoutProfile(t *testing.T) {
	f := newFixture(t, nil)
	f.profiles.EXPECT().ProfileForAccount(gomock.Any(), int64(77)).Return(nil, profile.ErrNotFound)

	rec := f.do(t, http.MethodGet, "/api/feed", "", 77)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFeed(t *testing.T) {
	f := newFixture(t, nil)
	f.signedIn()
	now := time.Now()
	world := &domain.Post{ID: 2, ProfileID: 5, Caption: "world", CreatedAt: now}
	hello := &domain.Post{ID: 1, ProfileID: 5, Caption: "hello", CreatedAt: now.Add(-time.Second)}

	f.feed.EXPECT().FeedFor(gomock.Any(), alice.ID).Return([]*domain.Post{world, hello}, nil)
	f.posts.EXPECT().PhotosByPost(gomock.Any(), []int64{2, 1}).Return(map[int64][]*domain.Photo{
		2: {{ID: 9, PostID: 2, ImageFile: domain.DefaultImageFile}},
	}, nil)

	rec := f.do(t, http.MethodGet, "/api/feed", "", alice.AccountID)
	require.Equal(t, http.StatusOK, rec.Code)

	var body []struct {
		Caption string          `json:"caption"`
		Photos  []*domain.Photo `json:"photos"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "world", body[0].Caption)
	assert.Equal(t, "hello", body[1].Caption)
	assert.Len(t, body[0].Photos, 1)
	assert.Empty(t, body[1].Photos)
}

func TestEmptyFeedSkipsPhotos(t *testing.T) {
	f := newFixture(t, nil)
	f.signedIn()
	f.feed.EXPECT().FeedFor(gomock.Any(), alice.ID).Return([]*domain.Post{}, nil)

	rec := f.do(t, http.MethodGet, "/api/feed", "", alice.AccountID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestFollow(t *testing.T) {
	f := newFixture(t, nil)
	f.signedIn()

	f.graph.EXPECT().Follow(gomock.Any(), int64(2), alice.ID).Return(nil)
	f.graph.EXPECT().IsFollowing(gomock.Any(), int64(2), alice.ID).Return(true, nil)
	f.graph.EXPECT().FollowerCount(gomock.Any(), int64(2)).Return(1, nil)

	rec := f.do(t, http.MethodPost, "/api/profiles/2/follow", "", alice.AccountID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"profile_id":2,"following":true,"follower_count":1}`, rec.Body.String())
}

func TestFollowUnknownProfile(t *testing.T) {
	f := newFixture(t, nil)
	f.signedIn()

	f.graph.EXPECT().Follow(gomock.Any(), int64(99), alice.ID).Return(profile.ErrNotFound)

	rec := f.do(t, http.MethodPost, "/api/profiles/99/follow", "", alice.AccountID)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMutationsAreRateLimited(t *testing.T) {
	f := newFixture(t, ratelimit.NewInMemoryLimiter(1, time.Hour, 1))
	f.signedIn()

	f.graph.EXPECT().Unfollow(gomock.Any(), int64(2), alice.ID).Return(nil)
	f.graph.EXPECT().IsFollowing(gomock.Any(), int64(2), alice.ID).Return(false, nil)
	f.graph.EXPECT().FollowerCount(gomock.Any(), int64(2)).Return(0, nil)

	first := f.do(t, http.MethodPost, "/api/profiles/2/unfollow", "", alice.AccountID)
	assert.Equal(t, http.StatusOK, first.Code)

	second := f.do(t, http.MethodPost, "/api/profiles/2/unfollow", "", alice.AccountID)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestCreatePostRequiresCaption(t *testing.T) {
	f := newFixture(t, nil)
	f.signedIn()

	rec := f.do(t, http.MethodPost, "/api/posts", `{"caption":"   "}`, alice.AccountID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTextWithNullBytesIsRejected(t *testing.T) {
	f := newFixture(t, nil)
	f.signedIn()

	created := f.do(t, http.MethodPost, "/api/posts", `{"caption":"my\u0000cat"}`, alice.AccountID)
	assert.Equal(t, http.StatusBadRequest, created.Code)

	comment := f.do(t, http.MethodPost, "/api/posts/3/comments", `{"text":"\u0000"}`, alice.AccountID)
	assert.Equal(t, http.StatusBadRequest, comment.Code)
}

func TestSearchRejectsUnstorableQuery(t *testing.T) {
	f := newFixture(t, nil)
	f.signedIn()

	for _, query := range []string{"%00", "cat%ff"} {
		rec := f.do(t, http.MethodGet, "/api/search?query="+query, "", alice.AccountID)
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}

func TestCreatePost(t *testing.T) {
	f := newFixture(t, nil)
	f.signedIn()

	f.posts.EXPECT().
		Create(gomock.Any(), alice.ID, "my cat", []domain.Photo{{ImageURL: "https://img.example/cat.jpg"}}).
		Return(&domain.Post{ID: 3, ProfileID: alice.ID, Caption: "my cat"},
			[]*domain.Photo{{ID: 4, PostID: 3, ImageURL: "https://img.example/cat.jpg"}}, nil)

	rec := f.do(t, http.MethodPost, "/api/posts",
		`{"caption":" my cat ","photos":[{"image_url":"https://img.example/cat.jpg"}]}`, alice.AccountID)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		ID     int64           `json:"id"`
		Photos []*domain.Photo `json:"photos"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(3), body.ID)
	assert.Len(t, body.Photos, 1)
}

func TestUpdatePostForbidden(t *testing.T) {
	f := newFixture(t, nil)
	f.signedIn()

	f.posts.EXPECT().UpdateCaption(gomock.Any(), int64(3), alice.ID, "edited").
		Return(nil, apperrors.Wrap(apperrors.ErrForbidden, "only the author can change a post"))

	rec := f.do(t, http.MethodPut, "/api/posts/3", `{"caption":"edited"}`, alice.AccountID)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetPostNotFound(t *testing.T) {
	f := newFixture(t, nil)
	f.posts.EXPECT().Get(gomock.Any(), int64(404)).Return(nil, post.ErrNotFound)

	rec := f.do(t, http.MethodGet, "/api/posts/404", "", 0)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPostLikedBy(t *testing.T) {
	f := newFixture(t, nil)
	p := &domain.Post{ID: 3, ProfileID: 5, Caption: "my cat"}
	bob := &domain.Profile{ID: 6, Username: "bob"}

	f.posts.EXPECT().Get(gomock.Any(), int64(3)).Return(p, nil)
	f.posts.EXPECT().Photos(gomock.Any(), int64(3)).Return([]*domain.Photo{{ID: 1, PostID: 3, ImageFile: "cat.jpg"}}, nil)
	f.engagement.EXPECT().Comments(gomock.Any(), int64(3)).Return([]*domain.Comment{}, nil)
	f.engagement.EXPECT().SummaryOf(gomock.Any(), p).Return(&domain.Engagement{
		PostID:         3,
		LikeCount:      3,
		MostRecentLike: &domain.Like{ID: 8, PostID: 3, ProfileID: bob.ID},
	}, nil)
	f.profiles.EXPECT().Get(gomock.Any(), bob.ID).Return(bob, nil)

	rec := f.do(t, http.MethodGet, "/api/posts/3", "", 0)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		LikedBy  string `json:"liked_by"`
		HasLiked bool   `json:"has_liked"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Liked by bob and 2 others", body.LikedBy)
	assert.False(t, body.HasLiked)
}

func TestLike(t *testing.T) {
	f := newFixture(t, nil)
	f.signedIn()

	f.engagement.EXPECT().Like(gomock.Any(), int64(3), alice.ID).Return(nil)
	f.engagement.EXPECT().Summary(gomock.Any(), int64(3)).Return(&domain.Engagement{PostID: 3, LikeCount: 1}, nil)

	rec := f.do(t, http.MethodPost, "/api/posts/3/like", "", alice.AccountID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"post_id":3,"like_count":1,"comment_count":0}`, rec.Body.String())
}

func TestCommentRequiresText(t *testing.T) {
	f := newFixture(t, nil)
	f.signedIn()

	rec := f.do(t, http.MethodPost, "/api/posts/3/comments", `{"text":""}`, alice.AccountID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearch(t *testing.T) {
	f := newFixture(t, nil)
	f.signedIn()

	f.search.EXPECT().Search(gomock.Any(), "cat").Return(&domain.SearchResult{
		Query:    "cat",
		Posts:    []*domain.Post{{ID: 3, Caption: "my cat"}},
		Profiles: []*domain.Profile{},
	}, nil)

	rec := f.do(t, http.MethodGet, "/api/search?query=cat", "", alice.AccountID)
	require.Equal(t, http.StatusOK, rec.Code)

	var body domain.SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "cat", body.Query)
	assert.Len(t, body.Posts, 1)
	assert.Empty(t, body.Profiles)
}

func TestCreateProfileConflict(t *testing.T) {
	f := newFixture(t, nil)

	f.profiles.EXPECT().
		Create(gomock.Any(), domain.Profile{AccountID: 50, Username: "alice"}).
		Return(nil, profile.ErrAlreadyExists)

	rec := f.do(t, http.MethodPost, "/api/profiles", `{"username":"alice"}`, 50)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateProfileValidatesImageURL(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(t, http.MethodPost, "/api/profiles", `{"username":"alice","image_url":"not a url"}`, 50)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProfileAsVisitor(t *testing.T) {
	f := newFixture(t, nil)
	f.signedIn()
	bob := &domain.Profile{ID: 6, Username: "bob"}

	f.profiles.EXPECT().Get(gomock.Any(), bob.ID).Return(bob, nil)
	f.graph.EXPECT().FollowerCount(gomock.Any(), bob.ID).Return(1, nil)
	f.graph.EXPECT().FollowingCount(gomock.Any(), bob.ID).Return(0, nil)
	f.graph.EXPECT().IsFollowing(gomock.Any(), bob.ID, alice.ID).Return(true, nil)
	f.posts.EXPECT().ByProfile(gomock.Any(), bob.ID).Return([]*domain.Post{}, nil)
	f.posts.EXPECT().PhotosByPost(gomock.Any(), []int64{}).Return(map[int64][]*domain.Photo{}, nil)

	rec := f.do(t, http.MethodGet, "/api/profiles/6", "", alice.AccountID)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Username      string `json:"username"`
		FollowerCount int    `json:"follower_count"`
		IsFollowed    bool   `json:"is_followed"`
		IsOwn         bool   `json:"is_own"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "bob", body.Username)
	assert.Equal(t, 1, body.FollowerCount)
	assert.True(t, body.IsFollowed)
	assert.False(t, body.IsOwn)
}

package profilesimpl

import (
	"context"
	"io"
	"testing"

	"github.com/orgball2608/mini-insta/internal/domain"
	"github.com/orgball2608/mini-insta/internal/repositories/profile"
	mock_profile "github.com/orgball2608/mini-insta/internal/repositories/profile/mocks"
	apperrors "github.com/orgball2608/mini-insta/pkg/errors"
	"github.com/orgball2608/mini-insta/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newProfiles(t *testing.T) (*ProfilesImpl, *mock_profile.MockRepository) {
	repo := mock_profile.NewMockRepository(gomock.NewController(t))

	return New(Opts{
		ProfileRepo: repo,
		Logger:      logger.New(logger.Opts{Output: io.Discard}),
	}), repo
}

func TestCreateTrimsUsername(t *testing.T) {
	svc, repo := newProfiles(t)
	ctx := context.Background()

	repo.EXPECT().
		Create(ctx, domain.Profile{AccountID: 4, Username: "alice", DisplayName: "Alice"}).
		Return(&domain.Profile{ID: 1, AccountID: 4, Username: "alice", DisplayName: "Alice"}, nil)

	p, err := svc.Create(ctx, domain.Profile{AccountID: 4, Username: " alice ", DisplayName: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
}

func TestCreateRejectsBlankUsername(t *testing.T) {
	svc, _ := newProfiles(t)

	_, err := svc.Create(context.Background(), domain.Profile{AccountID: 4, Username: "  "})
	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestCreateDuplicate(t *testing.T) {
	svc, repo := newProfiles(t)
	ctx := context.Background()

	repo.EXPECT().Create(ctx, gomock.Any()).Return(nil, profile.ErrAlreadyExists)

	_, err := svc.Create(ctx, domain.Profile{AccountID: 4, Username: "alice"})
	assert.True(t, apperrors.IsAlreadyExists(err))
}

func TestProfileForAccountMissing(t *testing.T) {
	svc, repo := newProfiles(t)
	ctx := context.Background()

	repo.EXPECT().GetByAccountID(ctx, int64(8)).Return(nil, profile.ErrNotFound)

	_, err := svc.ProfileForAccount(ctx, 8)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdateKeepsIdentity(t *testing.T) {
	svc, repo := newProfiles(t)
	ctx := context.Background()
	current := &domain.Profile{ID: 1, AccountID: 4, Username: "alice", DisplayName: "Alice"}
	want := domain.Profile{ID: 1, AccountID: 4, Username: "alice", DisplayName: "Al", Bio: "cats", ImageURL: "https://img.example/a.png"}

	repo.EXPECT().GetByID(ctx, int64(1)).Return(current, nil)
	repo.EXPECT().Update(ctx, want).Return(&want, nil)

	p, err := svc.Update(ctx, 1, "Al", "cats", "https://img.example/a.png")
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Username)
	assert.Equal(t, "cats", p.Bio)
}

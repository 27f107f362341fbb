package profilesimpl

import (
	"context"
	"strings"

	"github.com/orgball2608/mini-insta/internal/domain"
	"github.com/orgball2608/mini-insta/internal/profiles"
	"github.com/orgball2608/mini-insta/internal/repositories/profile"
	apperrors "github.com/orgball2608/mini-insta/pkg/errors"
	"github.com/orgball2608/mini-insta/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	ProfileRepo profile.Repository
	Logger      logger.Logger
}

type ProfilesImpl struct {
	ProfileRepo profile.Repository
	Logger      logger.Logger
}

func New(opts Opts) *ProfilesImpl {
	return &ProfilesImpl{
		ProfileRepo: opts.ProfileRepo,
		Logger:      opts.Logger.WithComponent("Profiles"),
	}
}

var _ profiles.Client = (*ProfilesImpl)(nil)

func (p *ProfilesImpl) Create(ctx context.Context, in domain.Profile) (*domain.Profile, error) {
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" {
		return nil, apperrors.Invalid("username is required")
	}
	if in.AccountID == 0 {
		return nil, apperrors.Invalid("account is required")
	}

	created, err := p.ProfileRepo.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	p.Logger.Info("Profile created", "profile_id", created.ID, "username", created.Username)
	return created, nil
}

func (p *ProfilesImpl) Get(ctx context.Context, id int64) (*domain.Profile, error) {
	return p.ProfileRepo.GetByID(ctx, id)
}

func (p *ProfilesImpl) List(ctx context.Context) ([]*domain.Profile, error) {
	return p.ProfileRepo.List(ctx)
}

func (p *ProfilesImpl) ProfileForAccount(ctx context.Context, accountID int64) (*domain.Profile, error) {
	return p.ProfileRepo.GetByAccountID(ctx, accountID)
}

func (p *ProfilesImpl) Update(ctx context.Context, profileID int64, displayName, bio, imageURL string) (*domain.Profile, error) {
	current, err := p.ProfileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	current.DisplayName = displayName
	current.Bio = bio
	current.ImageURL = imageURL

	updated, err := p.ProfileRepo.Update(ctx, *current)
	if err != nil {
		return nil, err
	}

	p.Logger.Info("Profile updated", "profile_id", profileID)
	return updated, nil
}

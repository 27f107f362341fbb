package profiles

import (
	"context"

	"github.com/orgball2608/mini-insta/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=profiles.go -destination=mocks/mock.go
type Client interface {
	// Create registers the profile of an account; one profile per account and per username
	Create(ctx context.Context, profile domain.Profile) (*domain.Profile, error)

	Get(ctx context.Context, id int64) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)

	// ProfileForAccount resolves the profile owned by an authenticated account
	ProfileForAccount(ctx context.Context, accountID int64) (*domain.Profile, error)

	Update(ctx context.Context, profileID int64, displayName, bio, imageURL string) (*domain.Profile, error)
}

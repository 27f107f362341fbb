package profile

import (
	"context"

	"github.com/orgball2608/mini-insta/internal/domain"
	apperrors "github.com/orgball2608/mini-insta/pkg/errors"
)

var (
	ErrAlreadyExists = apperrors.Wrap(apperrors.ErrAlreadyExists, "profile")
	ErrNotFound      = apperrors.Wrap(apperrors.ErrNotFound, "profile")
)

//go:generate go run go.uber.org/mock/mockgen -source=profile.go -destination=mocks/mock.go
type Repository interface {
	// Create inserts a profile; a taken account or username returns ErrAlreadyExists
	Create(ctx context.Context, profile domain.Profile) (*domain.Profile, error)

	GetByID(ctx context.Context, id int64) (*domain.Profile, error)
	GetByAccountID(ctx context.Context, accountID int64) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)

	// Update overwrites the self-service fields: display name, bio and image url
	Update(ctx context.Context, profile domain.Profile) (*domain.Profile, error)

	// Delete removes the profile; posts, follows, comments and likes go with it
	Delete(ctx context.Context, id int64) error

	// Search matches query as a case sensitive substring of username, display name or bio
	Search(ctx context.Context, query string) ([]*domain.Profile, error)
}

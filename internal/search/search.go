package search

import (
	"context"

	"github.com/orgball2608/mini-insta/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=search.go -destination=mocks/mock.go
type Client interface {
	// Search matches query as a case sensitive substring of post captions and
	// profile usernames, display names and bios
	Search(ctx context.Context, query string) (*domain.SearchResult, error)
}

package catalog

import (
	"context"
	"errors"

	"github.com/selivanovm/moviebot/internal/domain"
)

var (
	ErrUnauthorized   = errors.New("invalid catalog API key")
	ErrRateLimit      = errors.New("catalog rate limit exceeded")
	ErrSearchFailed   = errors.New("person search failed")
	ErrDiscoverFailed = errors.New("movie discovery failed")
)

// PersonSearchResult keeps candidates in the service's order, most popular
// first. A blank or unknown name yields TotalResults 0, not an error.
type PersonSearchResult struct {
	TotalResults int
	People       []domain.Person
}

type DiscoverResult struct {
	TotalResults int
	Movies       []domain.Movie
}

// Client wraps the movie catalog API. Both operations are single external
// calls with no local retry.
type Client interface {
	SearchPerson(ctx context.Context, name string) (*PersonSearchResult, error)
	DiscoverMovies(ctx context.Context, query *domain.DiscoveryQuery) (*DiscoverResult, error)
}

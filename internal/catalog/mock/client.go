package mock

import (
	"context"
	"sync"

	"github.com/selivanovm/moviebot/internal/catalog"
	"github.com/selivanovm/moviebot/internal/domain"
)

// Client is a scriptable catalog double, safe for concurrent sessions.
// People are keyed by the searched name; Movies back every discover call.
type Client struct {
	People      map[string][]domain.Person
	Movies      []domain.Movie
	SearchErr   error
	DiscoverErr error

	mu            sync.Mutex
	searchCalls   []string
	discoverCalls []*domain.DiscoveryQuery
}

func New() *Client {
	return &Client{
		People: make(map[string][]domain.Person),
	}
}

func (c *Client) WithPeople(name string, people ...domain.Person) *Client {
	c.People[name] = people
	return c
}

func (c *Client) WithMovies(movies ...domain.Movie) *Client {
	c.Movies = movies
	return c
}

func (c *Client) WithSearchError(err error) *Client {
	c.SearchErr = err
	return c
}

func (c *Client) WithDiscoverError(err error) *Client {
	c.DiscoverErr = err
	return c
}

func (c *Client) SearchPerson(ctx context.Context, name string) (*catalog.PersonSearchResult, error) {
	c.mu.Lock()
	c.searchCalls = append(c.searchCalls, name)
	c.mu.Unlock()

	if c.SearchErr != nil {
		return nil, c.SearchErr
	}
	people := c.People[name]
	return &catalog.PersonSearchResult{
		TotalResults: len(people),
		People:       people,
	}, nil
}

func (c *Client) DiscoverMovies(ctx context.Context, query *domain.DiscoveryQuery) (*catalog.DiscoverResult, error) {
	c.mu.Lock()
	c.discoverCalls = append(c.discoverCalls, query)
	c.mu.Unlock()

	if c.DiscoverErr != nil {
		return nil, c.DiscoverErr
	}
	return &catalog.DiscoverResult{
		TotalResults: len(c.Movies),
		Movies:       c.Movies,
	}, nil
}

func (c *Client) SearchCalls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.searchCalls...)
}

func (c *Client) DiscoverCalls() []*domain.DiscoveryQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*domain.DiscoveryQuery(nil), c.discoverCalls...)
}

var _ catalog.Client = (*Client)(nil)

package mock

import (
	"context"
	"sync"

	"github.com/selivanovm/moviebot/internal/domain"
	"github.com/selivanovm/moviebot/internal/nlp"
)

// Client is a scriptable extractor double, safe for concurrent sessions.
type Client struct {
	Intent *domain.Intent
	Error  error

	mu        sync.Mutex
	callCount int
	lastText  string
}

func New() *Client {
	return &Client{
		Intent: &domain.Intent{
			Actors:    []string{},
			Directors: []string{},
			Genres:    []string{},
		},
	}
}

func (c *Client) WithIntent(intent *domain.Intent) *Client {
	c.Intent = intent
	return c
}

func (c *Client) WithError(err error) *Client {
	c.Error = err
	return c
}

func (c *Client) Extract(ctx context.Context, text string) (*domain.Intent, error) {
	c.mu.Lock()
	c.callCount++
	c.lastText = text
	c.mu.Unlock()

	if c.Error != nil {
		return nil, c.Error
	}
	return c.Intent, nil
}

func (c *Client) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.callCount
}

func (c *Client) LastText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastText
}

var _ nlp.Extractor = (*Client)(nil)

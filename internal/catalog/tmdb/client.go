package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/selivanovm/moviebot/internal/catalog"
	"github.com/selivanovm/moviebot/internal/domain"
)

type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.themoviedb.org"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

type personSearchResponse struct {
	TotalResults int            `json:"total_results"`
	Results      []personResult `json:"results"`
}

type personResult struct {
	ID       int            `json:"id"`
	Name     string         `json:"name"`
	KnownFor []knownForItem `json:"known_for"`
}

// knownForItem carries "title" for movies and "name" for TV credits.
type knownForItem struct {
	Title string `json:"title"`
	Name  string `json:"name"`
}

type discoverResponse struct {
	TotalResults int           `json:"total_results"`
	Results      []movieResult `json:"results"`
}

type movieResult struct {
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	Overview    string `json:"overview"`
	PosterPath  string `json:"poster_path"`
}

func (c *Client) SearchPerson(ctx context.Context, name string) (*catalog.PersonSearchResult, error) {
	if strings.TrimSpace(name) == "" {
		return &catalog.PersonSearchResult{TotalResults: 0}, nil
	}

	q := url.Values{}
	q.Set("query", name)

	var searchResp personSearchResponse
	if err := c.get(ctx, "/3/search/person", q, &searchResp, catalog.ErrSearchFailed); err != nil {
		return nil, err
	}

	people := make([]domain.Person, len(searchResp.Results))
	for i, r := range searchResp.Results {
		people[i] = domain.Person{
			ID:       r.ID,
			Name:     r.Name,
			KnownFor: knownForTitles(r.KnownFor),
		}
	}

	return &catalog.PersonSearchResult{
		TotalResults: searchResp.TotalResults,
		People:       people,
	}, nil
}

func (c *Client) DiscoverMovies(ctx context.Context, query *domain.DiscoveryQuery) (*catalog.DiscoverResult, error) {
	q := url.Values{}
	q.Set("sort_by", query.SortBy)
	if len(query.WithPeople) > 0 {
		q.Set("with_people", joinIDs(query.WithPeople))
	}
	if len(query.WithGenres) > 0 {
		q.Set("with_genres", joinIDs(query.WithGenres))
	}

	var discoverResp discoverResponse
	if err := c.get(ctx, "/3/discover/movie", q, &discoverResp, catalog.ErrDiscoverFailed); err != nil {
		return nil, err
	}

	movies := make([]domain.Movie, len(discoverResp.Results))
	for i, r := range discoverResp.Results {
		movies[i] = domain.Movie{
			Title:       r.Title,
			ReleaseDate: r.ReleaseDate,
			Overview:    r.Overview,
			PosterPath:  r.PosterPath,
		}
	}

	return &catalog.DiscoverResult{
		TotalResults: discoverResp.TotalResults,
		Movies:       movies,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out interface{}, opErr error) error {
	q.Set("api_key", c.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", opErr, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return catalog.ErrUnauthorized
	case http.StatusTooManyRequests:
		return catalog.ErrRateLimit
	default:
		return fmt.Errorf("%w: status %d", opErr, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", opErr, err)
	}
	return nil
}

// joinIDs comma-joins ids; the catalog treats comma as AND.
func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

func knownForTitles(items []knownForItem) []string {
	titles := make([]string, 0, len(items))
	for _, item := range items {
		switch {
		case item.Title != "":
			titles = append(titles, item.Title)
		case item.Name != "":
			titles = append(titles, item.Name)
		}
	}
	return titles
}

var _ catalog.Client = (*Client)(nil)

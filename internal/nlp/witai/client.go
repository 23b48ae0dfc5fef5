package witai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/selivanovm/moviebot/internal/domain"
	"github.com/selivanovm/moviebot/internal/nlp"
)

const apiVersion = "20160227"

type Config struct {
	Token   string
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	token   string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.wit.ai"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}

	return &Client{
		token:   cfg.Token,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

type witEntity struct {
	Value string `json:"value"`
}

type witOutcome struct {
	Entities map[string][]witEntity `json:"entities"`
}

// witResponse keeps Outcomes as a pointer so an absent "outcomes" key
// (malformed body) is distinguishable from an empty outcome list.
type witResponse struct {
	Outcomes *[]witOutcome `json:"outcomes"`
}

func (c *Client) Extract(ctx context.Context, text string) (*domain.Intent, error) {
	q := url.Values{}
	q.Set("v", apiVersion)
	q.Set("q", text)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/message?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.token)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", nlp.ErrExtractionFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", nlp.ErrExtractionFailed, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, nlp.ErrUnauthorized
	case http.StatusTooManyRequests:
		return nil, nlp.ErrRateLimit
	default:
		return nil, fmt.Errorf("%w: status %d", nlp.ErrExtractionFailed, resp.StatusCode)
	}

	var witResp witResponse
	if err := json.Unmarshal(body, &witResp); err != nil {
		return nil, fmt.Errorf("%w: %v", nlp.ErrMalformedBody, err)
	}
	if witResp.Outcomes == nil {
		return nil, nlp.ErrMalformedBody
	}

	return toIntent(*witResp.Outcomes), nil
}

// toIntent flattens the first outcome into an Intent. Every category the
// service omitted becomes an empty slice or empty string, never an error.
func toIntent(outcomes []witOutcome) *domain.Intent {
	intent := &domain.Intent{
		Actors:    []string{},
		Directors: []string{},
		Genres:    []string{},
	}
	if len(outcomes) == 0 {
		return intent
	}

	entities := outcomes[0].Entities
	intent.Actors = entityValues(entities, "actor")
	intent.Directors = entityValues(entities, "director")
	intent.Genres = entityValues(entities, "genre")
	intent.Year = firstValue(entities, "year")
	intent.Title = firstValue(entities, "movie")
	return intent
}

func entityValues(entities map[string][]witEntity, key string) []string {
	values := []string{}
	for _, e := range entities[key] {
		if e.Value != "" {
			values = append(values, e.Value)
		}
	}
	return values
}

func firstValue(entities map[string][]witEntity, key string) string {
	if list := entities[key]; len(list) > 0 {
		return list[0].Value
	}
	return ""
}

var _ nlp.Extractor = (*Client)(nil)

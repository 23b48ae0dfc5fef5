package nlp

import (
	"context"
	"errors"

	"github.com/selivanovm/moviebot/internal/domain"
)

var (
	ErrUnauthorized     = errors.New("invalid NLP API token")
	ErrRateLimit        = errors.New("NLP rate limit exceeded")
	ErrExtractionFailed = errors.New("intent extraction failed")
	ErrMalformedBody    = errors.New("malformed NLP response")
)

// Extractor turns raw user text into a typed Intent. One external call,
// no retries; retry policy belongs to the caller.
type Extractor interface {
	Extract(ctx context.Context, text string) (*domain.Intent, error)
}

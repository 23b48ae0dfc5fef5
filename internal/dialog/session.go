package dialog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/selivanovm/moviebot/internal/catalog"
	"github.com/selivanovm/moviebot/internal/domain"
	"github.com/selivanovm/moviebot/internal/metrics"
	"github.com/selivanovm/moviebot/internal/nlp"
)

// Session owns the state of one trigger message: the extracted intent, the
// in-progress resolutions and the remaining movie queue. It lives on the
// goroutine that runs it and shares nothing with other sessions.
type Session struct {
	id        string
	conv      Conversation
	extractor nlp.Extractor
	catalog   catalog.Client
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

type Deps struct {
	Conversation Conversation
	Extractor    nlp.Extractor
	Catalog      catalog.Client
	Logger       *zap.Logger
	Metrics      *metrics.Metrics
}

func NewSession(deps Deps) *Session {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Session{
		id:        uuid.NewString(),
		conv:      deps.Conversation,
		extractor: deps.Extractor,
		catalog:   deps.Catalog,
		logger:    logger,
		metrics:   deps.Metrics,
	}
}

// ID is the session correlation id used in logs.
func (s *Session) ID() string {
	return s.id
}

// Run drives one conversation end to end: extract, disambiguate, compose,
// discover, browse. Every terminal path sends exactly one closing report,
// except cancellation, which drops the session silently so nothing is queued
// past the cancellation point.
func (s *Session) Run(ctx context.Context, rawText string) {
	startTime := time.Now()
	status := "ok"

	if s.metrics != nil {
		s.metrics.IncActiveSessions()
		defer func() {
			s.metrics.DecActiveSessions()
			s.metrics.RecordTrigger(status, time.Since(startTime))
		}()
	}

	s.logger.Info("session started",
		zap.String("session_id", s.id),
		zap.String("text", rawText),
	)

	s.conv.Say(msgAck)

	intent, err := s.extract(ctx, rawText)
	if err != nil {
		status = s.reportFailure(ctx, "extraction failed", err)
		return
	}

	resolutions, err := s.resolvePeople(ctx, intent.PersonNames())
	if err != nil {
		status = s.reportFailure(ctx, "person resolution failed", err)
		return
	}

	query, err := composeQuery(resolutions, resolveGenres(intent.Genres))
	if err != nil {
		status = s.reportComposeFailure(err)
		return
	}

	movies, err := s.discover(ctx, query)
	if err != nil {
		if errors.Is(err, domain.ErrNoResults) {
			s.conv.Say(msgNoResults)
			status = "no_results"
			return
		}
		status = s.reportFailure(ctx, "discovery failed", err)
		return
	}

	if err := s.browse(ctx, movies); err != nil {
		status = s.reportFailure(ctx, "browsing failed", err)
		return
	}

	s.logger.Info("session finished", zap.String("session_id", s.id))
}

func (s *Session) extract(ctx context.Context, rawText string) (*domain.Intent, error) {
	extractStart := time.Now()
	intent, err := s.extractor.Extract(ctx, rawText)
	if s.metrics != nil {
		extractStatus := "ok"
		if err != nil {
			extractStatus = "error"
		}
		s.metrics.RecordExtractorRequest(extractStatus, time.Since(extractStart))
	}
	return intent, err
}

func (s *Session) discover(ctx context.Context, query *domain.DiscoveryQuery) ([]domain.Movie, error) {
	discoverStart := time.Now()
	result, err := s.catalog.DiscoverMovies(ctx, query)
	if s.metrics != nil {
		discoverStatus := "ok"
		if err != nil {
			discoverStatus = "error"
		}
		s.metrics.RecordCatalogRequest("discover_movies", discoverStatus, time.Since(discoverStart))
	}
	if err != nil {
		return nil, err
	}
	if len(result.Movies) == 0 {
		return nil, domain.ErrNoResults
	}
	return result.Movies, nil
}

// reportFailure maps an unexpected failure to the generic apology, unless the
// session was cancelled, in which case nothing more is sent.
func (s *Session) reportFailure(ctx context.Context, event string, err error) string {
	if ctx.Err() != nil {
		s.logger.Info("session cancelled", zap.String("session_id", s.id))
		return "cancelled"
	}

	s.logger.Error(event,
		zap.String("session_id", s.id),
		zap.Error(err),
	)
	s.conv.Say(msgGenericFailure)
	return "error"
}

// reportComposeFailure surfaces the expected, user-correctable composition
// outcomes with every offending name or genre enumerated.
func (s *Session) reportComposeFailure(err error) string {
	var unresolvedErr *domain.UnresolvedPeopleError
	if errors.As(err, &unresolvedErr) {
		s.conv.Say(msgUnresolvedPeople(unresolvedErr.Names))
		return "unresolved_people"
	}

	var unknownErr *domain.UnknownGenresError
	if errors.As(err, &unknownErr) {
		s.conv.Say(msgUnknownGenres(unknownErr.Genres))
		return "unknown_genres"
	}

	s.conv.Say(msgGenericFailure)
	return "error"
}

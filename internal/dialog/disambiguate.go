package dialog

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// personResolution binds one extracted name to a confirmed catalog id, or
// records it as unresolved when the search found nobody or the user rejected
// every candidate.
type personResolution struct {
	Name     string
	ID       int
	Resolved bool
}

// resolvePeople disambiguates names strictly one after another so the
// conversation never has more than one pending question.
func (s *Session) resolvePeople(ctx context.Context, names []string) ([]personResolution, error) {
	resolutions := make([]personResolution, 0, len(names))
	for _, name := range names {
		id, ok, err := s.resolvePerson(ctx, name)
		if err != nil {
			return nil, err
		}
		resolutions = append(resolutions, personResolution{Name: name, ID: id, Resolved: ok})
	}
	return resolutions, nil
}

// resolvePerson walks the candidate list front to back with an index cursor,
// most popular first, asking one confirmation question per candidate. The
// candidates are never reordered or re-queried; an exhausted cursor means the
// name stays unresolved. Ask is the only suspension point, so dropping the
// context abandons the cursor with no further side effects.
func (s *Session) resolvePerson(ctx context.Context, name string) (int, bool, error) {
	searchStart := time.Now()
	result, err := s.catalog.SearchPerson(ctx, name)
	if s.metrics != nil {
		status := "ok"
		if err != nil {
			status = "error"
		}
		s.metrics.RecordCatalogRequest("search_person", status, time.Since(searchStart))
	}
	if err != nil {
		return 0, false, err
	}

	if result.TotalResults == 0 {
		s.logger.Info("no candidates found",
			zap.String("session_id", s.id),
			zap.String("name", name),
		)
		return 0, false, nil
	}

	for cursor := 0; cursor < len(result.People); cursor++ {
		candidate := result.People[cursor]

		if s.metrics != nil {
			s.metrics.RecordQuestion()
		}
		answer, err := s.conv.Ask(ctx, msgConfirmPerson(candidate))
		if err != nil {
			return 0, false, err
		}

		if isAffirmative(answer) {
			s.logger.Info("candidate confirmed",
				zap.String("session_id", s.id),
				zap.String("name", name),
				zap.Int("person_id", candidate.ID),
				zap.Int("questions", cursor+1),
			)
			return candidate.ID, true, nil
		}
	}

	s.logger.Info("all candidates rejected",
		zap.String("session_id", s.id),
		zap.String("name", name),
		zap.Int("candidates", len(result.People)),
	)
	return 0, false, nil
}

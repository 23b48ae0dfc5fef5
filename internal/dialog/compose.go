package dialog

import (
	"github.com/selivanovm/moviebot/internal/domain"
)

type genreResolution struct {
	Text  string
	ID    int
	Known bool
}

func resolveGenres(texts []string) []genreResolution {
	resolutions := make([]genreResolution, 0, len(texts))
	for _, text := range texts {
		id, ok := domain.GenreID(text)
		resolutions = append(resolutions, genreResolution{Text: text, ID: id, Known: ok})
	}
	return resolutions
}

// composeQuery merges confirmed people and genres into a single discovery
// query. Unresolved people are checked first and short-circuit; each failure
// enumerates every offending entry of its category so the user gets one
// complete correction message. composeQuery performs no I/O.
func composeQuery(people []personResolution, genres []genreResolution) (*domain.DiscoveryQuery, error) {
	var unresolved []string
	for _, p := range people {
		if !p.Resolved {
			unresolved = append(unresolved, p.Name)
		}
	}
	if len(unresolved) > 0 {
		return nil, &domain.UnresolvedPeopleError{Names: unresolved}
	}

	var unknown []string
	for _, g := range genres {
		if !g.Known {
			unknown = append(unknown, g.Text)
		}
	}
	if len(unknown) > 0 {
		return nil, &domain.UnknownGenresError{Genres: unknown}
	}

	query := &domain.DiscoveryQuery{SortBy: domain.SortPopularityDesc}
	for _, p := range people {
		query.WithPeople = append(query.WithPeople, p.ID)
	}
	for _, g := range genres {
		query.WithGenres = append(query.WithGenres, g.ID)
	}
	return query, nil
}

package dialog

import (
	"context"

	"github.com/selivanovm/moviebot/internal/domain"
)

// browse walks the result queue one movie per turn. After each movie except
// the last it asks whether to continue; a negative answer stops early naming
// the movie just shown, an exhausted queue gets its own closing line. For M
// movies the all-affirmative path asks exactly M-1 questions.
func (s *Session) browse(ctx context.Context, movies []domain.Movie) error {
	for i, movie := range movies {
		s.conv.Say(renderMovie(movie))

		if i == len(movies)-1 {
			break
		}

		if s.metrics != nil {
			s.metrics.RecordQuestion()
		}
		answer, err := s.conv.Ask(ctx, msgAnotherMovie)
		if err != nil {
			return err
		}
		if !isAffirmative(answer) {
			s.conv.Say(msgStoppedEarly(movie.Title))
			return nil
		}
	}

	s.conv.Say(msgAllShown(movies[len(movies)-1].Title))
	return nil
}

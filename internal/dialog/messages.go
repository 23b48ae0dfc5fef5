package dialog

import (
	"fmt"
	"strings"

	"github.com/selivanovm/moviebot/internal/domain"
)

const posterBaseURL = "https://image.tmdb.org/t/p/w500"

const (
	msgAck            = "On it! Give me a moment to find you something to watch."
	msgGenericFailure = "Sorry, something went wrong on my end. Please try again later."
	msgNoResults      = "I couldn't find any movies matching that. Maybe loosen the request a bit?"
	msgAnotherMovie   = "Do you want another movie? (yes/no)"
)

func msgUnresolvedPeople(names []string) string {
	return fmt.Sprintf("I couldn't figure out who you meant by %s. Try rephrasing the name.",
		strings.Join(names, ", "))
}

func msgUnknownGenres(genres []string) string {
	return fmt.Sprintf("I don't know the genre %s. Try something like action, drama or thriller.",
		strings.Join(genres, ", "))
}

func msgConfirmPerson(p domain.Person) string {
	if len(p.KnownFor) == 0 {
		return fmt.Sprintf("Did you mean %s? (yes/no)", p.Name)
	}
	return fmt.Sprintf("Did you mean %s, known for %s? (yes/no)",
		p.Name, strings.Join(p.KnownFor, ", "))
}

func msgAllShown(lastTitle string) string {
	return fmt.Sprintf("No more for now. Enjoy %s!", lastTitle)
}

func msgStoppedEarly(lastTitle string) string {
	return fmt.Sprintf("Alright, I'll stop here. Enjoy %s!", lastTitle)
}

// renderMovie is the one-movie card shown per browsing turn.
func renderMovie(m domain.Movie) string {
	var sb strings.Builder

	if year := m.Year(); year != "" {
		fmt.Fprintf(&sb, "%s (%s)", m.Title, year)
	} else {
		sb.WriteString(m.Title)
	}
	if m.Overview != "" {
		sb.WriteString("\n")
		sb.WriteString(m.Overview)
	}
	if m.PosterPath != "" {
		sb.WriteString("\n")
		sb.WriteString(posterBaseURL + m.PosterPath)
	}

	return sb.String()
}

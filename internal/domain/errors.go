package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNoResults = errors.New("no results found")

// UnresolvedPeopleError lists every extracted name that could not be bound to
// a catalog person, either because the search found nobody or because the
// user rejected all candidates. It is a reportable outcome, not a fault.
type UnresolvedPeopleError struct {
	Names []string
}

func (e *UnresolvedPeopleError) Error() string {
	return fmt.Sprintf("unresolved people: %s", strings.Join(e.Names, ", "))
}

// UnknownGenresError lists every extracted genre with no catalog id,
// symmetric to UnresolvedPeopleError.
type UnknownGenresError struct {
	Genres []string
}

func (e *UnknownGenresError) Error() string {
	return fmt.Sprintf("unknown genres: %s", strings.Join(e.Genres, ", "))
}

package domain

import "strings"

// Person is one candidate returned by the catalog person search.
type Person struct {
	ID       int
	Name     string
	KnownFor []string
}

// Movie is a single discovery result. ReleaseDate keeps the catalog's raw
// YYYY-MM-DD form; Year derives the display year from it.
type Movie struct {
	Title       string
	ReleaseDate string
	Overview    string
	PosterPath  string
}

// Year returns the leading segment of the release date, or "" when the
// catalog omitted the date.
func (m Movie) Year() string {
	if m.ReleaseDate == "" {
		return ""
	}
	return strings.SplitN(m.ReleaseDate, "-", 2)[0]
}

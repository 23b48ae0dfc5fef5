package domain

import "strings"

// Intent is the structured extraction of a single trigger message.
// It is built once by the NLP adapter and never mutated afterwards.
type Intent struct {
	Actors    []string
	Directors []string
	Genres    []string
	Year      string
	Title     string
}

// PersonNames returns every extracted person name, actors first and then
// directors, in extraction order. Duplicates (case-insensitive) are kept once
// so each name is disambiguated a single time.
func (i *Intent) PersonNames() []string {
	seen := make(map[string]struct{}, len(i.Actors)+len(i.Directors))
	names := make([]string, 0, len(i.Actors)+len(i.Directors))

	add := func(name string) {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			return
		}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		names = append(names, name)
	}

	for _, name := range i.Actors {
		add(name)
	}
	for _, name := range i.Directors {
		add(name)
	}

	return names
}

// HasEntities reports whether the extractor found anything to search on.
func (i *Intent) HasEntities() bool {
	return len(i.PersonNames()) > 0 || len(i.Genres) > 0
}

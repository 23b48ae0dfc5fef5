package domain

// SortPopularityDesc is the only sort the bot ever requests.
const SortPopularityDesc = "popularity.desc"

// DiscoveryQuery is the composed discovery request. It is built once by the
// query composer, sent once, and never mutated after the discovery call.
// People and genres are each AND-combined by the catalog service.
type DiscoveryQuery struct {
	SortBy     string
	WithPeople []int
	WithGenres []int
}

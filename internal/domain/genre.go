package domain

import "strings"

// genreIDs maps normalized genre names to catalog genre identifiers.
var genreIDs = map[string]int{
	"action":          28,
	"adventure":       12,
	"animation":       16,
	"comedy":          35,
	"crime":           80,
	"documentary":     99,
	"drama":           18,
	"family":          10751,
	"fantasy":         14,
	"foreign":         10769,
	"history":         36,
	"horror":          27,
	"music":           10402,
	"mystery":         9648,
	"romance":         10749,
	"science fiction": 878,
	"tv movie":        10770,
	"thriller":        53,
	"war":             10752,
	"western":         37,
}

// GenreID resolves free-text genre to its catalog id. Input is trimmed and
// lowercased before lookup; unknown text returns ok=false.
func GenreID(text string) (int, bool) {
	id, ok := genreIDs[strings.ToLower(strings.TrimSpace(text))]
	return id, ok
}

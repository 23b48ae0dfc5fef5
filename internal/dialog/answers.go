package dialog

import "strings"

var affirmatives = map[string]struct{}{
	"y":    {},
	"yes":  {},
	"yeah": {},
	"yep":  {},
	"sure": {},
	"ok":   {},
	"okay": {},
	"da":   {},
}

// isAffirmative treats a short list of consent words as "yes" and everything
// else, including silence-breaking noise, as "no".
func isAffirmative(answer string) bool {
	normalized := strings.ToLower(strings.TrimSpace(answer))
	normalized = strings.Trim(normalized, ".,!?")
	_, ok := affirmatives[normalized]
	return ok
}

package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Filter returns the movies whose title contains term, ignoring case, in
// their original order. An empty term returns movies unchanged.
func Filter(movies []Movie, term string) []Movie {
	if term == "" {
		return movies
	}
	// Casers carry state and must not be shared across goroutines.
	lower := cases.Lower(language.Und)
	needle := lower.String(term)

	out := make([]Movie, 0, len(movies))
	for _, m := range movies {
		if strings.Contains(lower.String(m.Title), needle) {
			out = append(out, m)
		}
	}
	return out
}

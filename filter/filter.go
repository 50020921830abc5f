package filter

import (
	"strings"

	"github.com/s0up4200/tmdb-cli/tmdb"
)

// matchAll is used when no expression is given
type matchAll struct{}

func (matchAll) Evaluate(tmdb.Movie) bool { return true }
func (matchAll) Expression() string       { return "" }

// ParseAndCreateFilter compiles an expression. An empty expression matches
// every movie.
func ParseAndCreateFilter(expression string) (CompiledFilter, error) {
	if strings.TrimSpace(expression) == "" {
		return matchAll{}, nil
	}

	return NewExprCompiler().Compile(expression)
}

// Apply returns the movies matching f, preserving order
func Apply(movies []tmdb.Movie, f Filter) []tmdb.Movie {
	if f == nil {
		return movies
	}

	matched := make([]tmdb.Movie, 0, len(movies))
	for _, movie := range movies {
		if f.Evaluate(movie) {
			matched = append(matched, movie)
		}
	}
	return matched
}

// Limit truncates movies to at most n entries; n <= 0 keeps all
func Limit(movies []tmdb.Movie, n int) []tmdb.Movie {
	if n <= 0 || n >= len(movies) {
		return movies
	}
	return movies[:n]
}

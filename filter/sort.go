package filter

import (
	"cmp"
	"slices"
	"strings"

	"github.com/s0up4200/tmdb-cli/tmdb"
)

// SortKey names the field movies are ordered by
type SortKey string

const (
	// SortNone keeps TMDB's order
	SortNone       SortKey = ""
	SortRating     SortKey = "rating"
	SortVotes      SortKey = "votes"
	SortTitle      SortKey = "title"
	SortDate       SortKey = "date"
	SortPopularity SortKey = "popularity"
)

// ParseSortKey validates a sort key name
func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case SortNone, SortRating, SortVotes, SortTitle, SortDate, SortPopularity:
		return key, nil
	default:
		return "", &OptionError{
			Option: "sort key",
			Value:  s,
			Reason: "must be one of rating, votes, title, date, popularity",
		}
	}
}

// Sort orders movies in place. Numeric and date keys sort descending,
// title ascending; ties keep their original order.
func Sort(movies []tmdb.Movie, key SortKey) {
	var compare func(a, b tmdb.Movie) int

	switch key {
	case SortRating:
		compare = func(a, b tmdb.Movie) int { return cmp.Compare(b.VoteAverage, a.VoteAverage) }
	case SortVotes:
		compare = func(a, b tmdb.Movie) int { return cmp.Compare(b.VoteCount, a.VoteCount) }
	case SortPopularity:
		compare = func(a, b tmdb.Movie) int { return cmp.Compare(b.Popularity, a.Popularity) }
	case SortDate:
		compare = func(a, b tmdb.Movie) int { return b.ReleaseDate.Compare(a.ReleaseDate.Time) }
	case SortTitle:
		compare = func(a, b tmdb.Movie) int {
			return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	default:
		return
	}

	slices.SortStableFunc(movies, compare)
}

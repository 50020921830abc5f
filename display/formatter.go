package display

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/s0up4200/tmdb-cli/tmdb"
)

// EmptyMessage is printed instead of a table when there is nothing to show
const EmptyMessage = "No movies to display."

const (
	// TitleWidth is the title column width; longer titles are truncated
	TitleWidth  = 40
	yearWidth   = 6
	ratingWidth = 6
	votesWidth  = 10

	ellipsis = "..."
)

// TableFormatter renders movies as a fixed-width text table
type TableFormatter struct {
	titleWidth int
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{titleWidth: TitleWidth}
}

// FormatMovieTable formats a list of movies for console display
func (f *TableFormatter) FormatMovieTable(movies []tmdb.Movie) string {
	if len(movies) == 0 {
		return EmptyMessage + "\n"
	}

	var sb strings.Builder

	// Header
	fmt.Fprintf(&sb, "%-*s %*s %*s %*s\n",
		f.titleWidth, "Title",
		yearWidth, "Year",
		ratingWidth, "Rating",
		votesWidth, "Votes")
	sb.WriteString(strings.Repeat("-", f.titleWidth+1+yearWidth+1+ratingWidth+1+votesWidth))
	sb.WriteString("\n")

	for _, movie := range movies {
		fmt.Fprintf(&sb, "%-*s %*s %*s %*s\n",
			f.titleWidth, TruncateTitle(movie.Title, f.titleWidth),
			yearWidth, FormatYear(movie),
			ratingWidth, FormatRating(movie.VoteAverage),
			votesWidth, FormatVotes(movie.VoteCount))
	}

	return sb.String()
}

// PrintMovieTable writes the table to w
func (f *TableFormatter) PrintMovieTable(w io.Writer, movies []tmdb.Movie) error {
	_, err := io.WriteString(w, f.FormatMovieTable(movies))
	return err
}

// TruncateTitle shortens titles longer than width runes, keeping
// width-3 runes followed by "...".
func TruncateTitle(title string, width int) string {
	runes := []rune(title)
	if len(runes) <= width {
		return title
	}
	if width <= len(ellipsis) {
		return string(runes[:width])
	}
	return string(runes[:width-len(ellipsis)]) + ellipsis
}

// FormatYear returns the release year, or an empty string when unknown
func FormatYear(movie tmdb.Movie) string {
	year := movie.Year()
	if year == 0 {
		return ""
	}
	return strconv.Itoa(year)
}

// FormatRating formats the vote average with one decimal, rounding halves
// away from zero
func FormatRating(rating float64) string {
	return strconv.FormatFloat(math.Round(rating*10)/10, 'f', 1, 64)
}

// FormatVotes formats the vote count with thousands separators
func FormatVotes(votes int64) string {
	return humanize.Comma(votes)
}

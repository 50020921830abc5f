package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/s0up4200/tmdb-cli/tmdb"
)

// Format selects how a movie list is written
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates an output format name. Empty means table.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("invalid output format: %s (must be 'table', 'json' or 'yaml')", s)
	}
}

// Render writes movies to w in the requested format
func Render(w io.Writer, format Format, movies []tmdb.Movie) error {
	if movies == nil {
		movies = []tmdb.Movie{}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(movies); err != nil {
			return fmt.Errorf("failed to encode movies as json: %w", err)
		}
		return nil

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(movies); err != nil {
			return fmt.Errorf("failed to encode movies as yaml: %w", err)
		}
		return enc.Close()

	case FormatTable, "":
		return NewTableFormatter().PrintMovieTable(w, movies)

	default:
		return fmt.Errorf("invalid output format: %s", format)
	}
}

package tmdb

import (
	"encoding/json"
	"strings"
	"time"
)

// DateLayout is the calendar date format TMDB uses for release dates.
const DateLayout = "2006-01-02"

// Endpoint is the path segment under /movie selecting a list.
type Endpoint string

const (
	EndpointNowPlaying Endpoint = "now_playing"
	EndpointPopular    Endpoint = "popular"
	EndpointTopRated   Endpoint = "top_rated"
	EndpointUpcoming   Endpoint = "upcoming"
)

// Date is a calendar date. Empty, null or malformed values decode to the
// zero date.
type Date struct {
	time.Time
}

// NewDate returns the Date for the given day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		d.Time = time.Time{}
		return nil
	}
	d.Time = t
	return nil
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// MarshalYAML implements yaml.Marshaler
func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}

// String returns the date as YYYY-MM-DD, or an empty string for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// Movie is a single entry of a TMDB movie list
type Movie struct {
	ID               int64   `json:"id" yaml:"id"`
	Title            string  `json:"title" yaml:"title"`
	OriginalTitle    string  `json:"original_title" yaml:"original_title,omitempty"`
	OriginalLanguage string  `json:"original_language" yaml:"original_language,omitempty"`
	Overview         string  `json:"overview" yaml:"overview,omitempty"`
	ReleaseDate      Date    `json:"release_date" yaml:"release_date"`
	VoteAverage      float64 `json:"vote_average" yaml:"vote_average"`
	VoteCount        int64   `json:"vote_count" yaml:"vote_count"`
	Popularity       float64 `json:"popularity" yaml:"popularity"`
	Adult            bool    `json:"adult" yaml:"adult"`
}

// Year returns the release year, or 0 when the release date is unknown.
func (m Movie) Year() int {
	if m.ReleaseDate.IsZero() {
		return 0
	}
	return m.ReleaseDate.Year()
}

// DateRange is the release window TMDB attaches to now_playing and upcoming
type DateRange struct {
	Minimum Date `json:"minimum" yaml:"minimum"`
	Maximum Date `json:"maximum" yaml:"maximum"`
}

// MovieListResponse is one page of a movie list
type MovieListResponse struct {
	Page         int        `json:"page"`
	Results      []Movie    `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
	Dates        *DateRange `json:"dates,omitempty"`
}

// statusResponse is the body TMDB sends alongside error statuses
type statusResponse struct {
	Code    int    `json:"status_code"`
	Message string `json:"status_message"`
}

func decodeStatus(body []byte) (statusResponse, bool) {
	var status statusResponse
	if len(body) == 0 {
		return status, false
	}
	if err := json.Unmarshal(body, &status); err != nil {
		return status, false
	}
	return status, status.Message != ""
}

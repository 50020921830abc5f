package tmdb

import (
	"context"
)

// MovieLister defines the TMDB operations the CLI depends on
type MovieLister interface {
	// GetMovieList retrieves page 1 of a movie list
	GetMovieList(ctx context.Context, endpoint Endpoint) (*MovieListResponse, error)
}

var _ MovieLister = (*Client)(nil)

// Package tmdb provides a small client for The Movie Database v3 API.
//
// Only the movie list endpoints are covered (now_playing, popular, top_rated
// and upcoming), and only their first page.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := tmdb.NewClient(
//		tmdb.DefaultBaseURL,
//		os.Getenv("TMDB_ACCESS_TOKEN"),
//		logger,
//		tmdb.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	list, err := client.GetMovieList(ctx, tmdb.EndpointPopular)
//
// # Error Handling
//
// Non-success responses are returned as *APIError, which unwraps to one of:
//
//   - ErrNotFound: 404, the list endpoint does not exist
//   - ErrUnauthorized: 401 or 403, the access token is missing or rejected
//   - ErrRateLimited: 429
//   - ErrNetwork: any other status, or a transport failure
//
// Use errors.Is to branch on the class:
//
//	if errors.Is(err, tmdb.ErrUnauthorized) {
//		// prompt for a new token
//	}
package tmdb

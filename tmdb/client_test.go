package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name    string
		baseURL string
		token   string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			baseURL: DefaultBaseURL,
			token:   "test-token",
		},
		{
			name:    "missing URL",
			baseURL: "",
			token:   "test-token",
			wantErr: true,
			errMsg:  "base URL is required",
		},
		{
			name:    "missing token",
			baseURL: DefaultBaseURL,
			token:   "   ",
			wantErr: true,
			errMsg:  "access token is required",
		},
		{
			name:    "relative URL",
			baseURL: "api.themoviedb.org",
			token:   "test-token",
			wantErr: true,
			errMsg:  "invalid base URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.baseURL, tt.token, logger)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.baseURL, client.baseURL)
			assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
			assert.Equal(t, DefaultLanguage, client.language)
		})
	}
}

func TestClientOptions(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient(DefaultBaseURL, "test-token", logger, WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 3 * time.Second}
		client, err := NewClient(DefaultBaseURL, "test-token", logger, WithHTTPClient(customClient), WithTimeout(time.Minute))
		require.NoError(t, err)
		assert.Same(t, customClient, client.httpClient)
	})

	t.Run("with language and user agent", func(t *testing.T) {
		client, err := NewClient(DefaultBaseURL+"/", "test-token", logger, WithLanguage("de-DE"), WithUserAgent("custom/1.0"))
		require.NoError(t, err)
		assert.Equal(t, "de-DE", client.language)
		assert.Equal(t, "custom/1.0", client.userAgent)
		assert.Equal(t, DefaultBaseURL, client.baseURL)
	})
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, "test-token", zerolog.Nop())
	require.NoError(t, err)
	return client
}

func TestGetMovieList_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/movie/now_playing", r.URL.Path)
		assert.Equal(t, "en-US", r.URL.Query().Get("language"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"dates": {"maximum": "1999-04-07", "minimum": "1999-03-01"},
			"page": 1,
			"results": [
				{
					"id": 603,
					"title": "The Matrix",
					"release_date": "1999-03-31",
					"vote_average": 8.7,
					"vote_count": 20000
				}
			],
			"total_pages": 3,
			"total_results": 57
		}`))
	})

	result, err := client.GetMovieList(context.Background(), EndpointNowPlaying)
	require.NoError(t, err)
	require.Len(t, result.Results, 1)

	movie := result.Results[0]
	assert.Equal(t, int64(603), movie.ID)
	assert.Equal(t, "The Matrix", movie.Title)
	assert.Equal(t, 1999, movie.Year())
	assert.Equal(t, 8.7, movie.VoteAverage)
	assert.Equal(t, int64(20000), movie.VoteCount)

	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, 57, result.TotalResults)
	require.NotNil(t, result.Dates)
	assert.Equal(t, "1999-03-01", result.Dates.Minimum.String())
	assert.Equal(t, "1999-04-07", result.Dates.Maximum.String())
}

func TestGetMovieList_CaseInsensitiveFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Results": [{"Title": "Heat", "Release_Date": "1995-12-15", "Vote_Average": 7.9, "VOTE_COUNT": 7000}]}`))
	})

	result, err := client.GetMovieList(context.Background(), EndpointPopular)
	require.NoError(t, err)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "Heat", result.Results[0].Title)
	assert.Equal(t, 1995, result.Results[0].Year())
	assert.Equal(t, int64(7000), result.Results[0].VoteCount)
	assert.Nil(t, result.Dates)
}

func TestGetMovieList_StatusClassification(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		retryAfter string
		sentinel   error
		errMsg     string
	}{
		{
			name:     "not found",
			status:   http.StatusNotFound,
			body:     `{"status_code":34,"status_message":"The resource you requested could not be found.","success":false}`,
			sentinel: ErrNotFound,
			errMsg:   "tmdb resource for 'made_up_type' not found",
		},
		{
			name:     "unauthorized",
			status:   http.StatusUnauthorized,
			body:     `{"status_code":7,"status_message":"Invalid API key: You must be granted a valid key.","success":false}`,
			sentinel: ErrUnauthorized,
			errMsg:   "check your access token",
		},
		{
			name:     "forbidden",
			status:   http.StatusForbidden,
			sentinel: ErrUnauthorized,
			errMsg:   "status 403",
		},
		{
			name:       "rate limited",
			status:     http.StatusTooManyRequests,
			retryAfter: "10",
			sentinel:   ErrRateLimited,
			errMsg:     "rate limit exceeded: retry after 10",
		},
		{
			name:     "server error",
			status:   http.StatusInternalServerError,
			sentinel: ErrNetwork,
			errMsg:   "network/API error: status 500: Internal Server Error",
		},
		{
			name:     "server error with tmdb message",
			status:   http.StatusServiceUnavailable,
			body:     `{"status_code":43,"status_message":"Service offline.","success":false}`,
			sentinel: ErrNetwork,
			errMsg:   "status 503: Service offline. (tmdb code 43)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if tt.retryAfter != "" {
					w.Header().Set("Retry-After", tt.retryAfter)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			result, err := client.GetMovieList(context.Background(), "made_up_type")
			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Contains(t, err.Error(), tt.errMsg)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, Endpoint("made_up_type"), apiErr.Endpoint)
		})
	}
}

func TestAPIError_TMDBStatusCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status_code":22,"status_message":"Invalid page."}`))
	})

	_, err := client.GetMovieList(context.Background(), EndpointPopular)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 22, apiErr.Code)
	assert.Equal(t, "Invalid page.", apiErr.Message)
	assert.EqualError(t, err, "network/API error: status 400: Invalid page. (tmdb code 22)")
}

func TestGetMovieList_SentinelsAreDistinct(t *testing.T) {
	notFound := &APIError{StatusCode: http.StatusNotFound}
	unauthorized := &APIError{StatusCode: http.StatusUnauthorized}
	limited := &APIError{StatusCode: http.StatusTooManyRequests}
	generic := &APIError{StatusCode: http.StatusBadGateway}

	assert.NotErrorIs(t, notFound, ErrUnauthorized)
	assert.NotErrorIs(t, unauthorized, ErrNotFound)
	assert.NotErrorIs(t, limited, ErrNetwork)
	assert.NotErrorIs(t, generic, ErrRateLimited)
	assert.ErrorIs(t, generic, ErrNetwork)
}

func TestGetMovieList_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": [`))
	})

	_, err := client.GetMovieList(context.Background(), EndpointTopRated)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse response")
	assert.NotErrorIs(t, err, ErrNetwork)
}

func TestGetMovieList_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client, err := NewClient(serverURL, "test-token", zerolog.Nop(), WithTimeout(time.Second))
	require.NoError(t, err)

	_, err = client.GetMovieList(context.Background(), EndpointUpcoming)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.Contains(t, err.Error(), "request failed")
}

func TestGetMovieList_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	client, err := NewClient(server.URL, "test-token", zerolog.Nop(), WithTimeout(50*time.Millisecond))
	require.NoError(t, err)

	_, err = client.GetMovieList(context.Background(), EndpointPopular)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
}

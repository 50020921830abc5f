package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the TMDB v3 API root
	DefaultBaseURL = "https://api.themoviedb.org/3"
	// DefaultLanguage is sent as the language query parameter
	DefaultLanguage = "en-US"
	// DefaultTimeout bounds the whole request, body included
	DefaultTimeout = 10 * time.Second
	// DefaultUserAgent identifies the client to TMDB
	DefaultUserAgent = "tmdb-cli"

	maxBodySize = 4 << 20
)

// Client represents a TMDB API client
type Client struct {
	baseURL     string
	accessToken string
	language    string
	userAgent   string
	httpClient  *http.Client
	logger      zerolog.Logger
}

// NewClient creates a new TMDB client authenticating with a v4 read access token
func NewClient(baseURL, accessToken string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: tmdb base URL is required", ErrInvalidConfig)
	}
	if strings.TrimSpace(accessToken) == "" {
		return nil, fmt.Errorf("%w: tmdb access token is required", ErrInvalidConfig)
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("%w: invalid base URL %q: %w", ErrInvalidConfig, baseURL, err)
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: options.timeout,
		}
	}

	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: strings.TrimSpace(accessToken),
		language:    options.language,
		userAgent:   options.userAgent,
		httpClient:  httpClient,
		logger:      logger.With().Str("module", "tmdb").Logger(),
	}, nil
}

// doRequest performs an authenticated GET and classifies non-2xx responses
func (c *Client) doRequest(ctx context.Context, endpoint Endpoint, path string, params url.Values) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug().
		Str("method", req.Method).
		Str("url", reqURL).
		Msg("Making TMDB API request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %w", ErrNetwork, err)
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("elapsed", time.Since(start)).
		Msg("TMDB API responded")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(endpoint, resp, body)
	}

	return body, nil
}

// GetMovieList fetches the first page of the given movie list
func (c *Client) GetMovieList(ctx context.Context, endpoint Endpoint) (*MovieListResponse, error) {
	params := url.Values{}
	params.Set("language", c.language)
	params.Set("page", "1")

	body, err := c.doRequest(ctx, endpoint, "/movie/"+url.PathEscape(string(endpoint)), params)
	if err != nil {
		return nil, err
	}

	var response MovieListResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	c.logger.Debug().
		Str("endpoint", string(endpoint)).
		Int("count", len(response.Results)).
		Int("total_results", response.TotalResults).
		Int("total_pages", response.TotalPages).
		Msg("Retrieved movie list from TMDB")

	return &response, nil
}

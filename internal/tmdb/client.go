package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// =====================================================
// TMDB CLIENT
// =====================================================

// API is the read-only surface of the metadata provider consumed by the
// catalog services. Kept as an interface so services can be tested against
// a fake provider.
type API interface {
	// FetchMovie returns the primary record for a TMDB movie id.
	// Errors: ErrNotFound if the id is unknown, ErrUnavailable otherwise.
	FetchMovie(ctx context.Context, movieID int64) (*MovieDetails, error)

	// FetchMovieCredits returns cast ids and crew entries for a movie.
	FetchMovieCredits(ctx context.Context, movieID int64) (*Credits, error)

	// FetchMovieTrailers returns the trailer candidates for a movie.
	FetchMovieTrailers(ctx context.Context, movieID int64) (*VideoList, error)

	// FetchPerson returns the person record for a cast member id.
	// Errors: ErrNotFound if the id is unknown.
	FetchPerson(ctx context.Context, personID int64) (*Person, error)

	// SearchMovies runs a free-text movie search.
	SearchMovies(ctx context.Context, query string) (*SearchResults, error)
}

// Config holds provider connection settings, injected once at startup.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("tmdb base url is required")
	}
	// APIKey may be empty; requests will fail with ErrMissingAPIKey instead
	// of preventing startup.
	return nil
}

type Client struct {
	config     *Config
	httpClient *http.Client
}

func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid TMDB config: %w", err)
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

func (c *Client) FetchMovie(ctx context.Context, movieID int64) (*MovieDetails, error) {
	var details MovieDetails
	if err := c.get(ctx, fmt.Sprintf("movie/%d", movieID), nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (c *Client) FetchMovieCredits(ctx context.Context, movieID int64) (*Credits, error) {
	var credits Credits
	if err := c.get(ctx, fmt.Sprintf("movie/%d/credits", movieID), nil, &credits); err != nil {
		return nil, err
	}
	return &credits, nil
}

func (c *Client) FetchMovieTrailers(ctx context.Context, movieID int64) (*VideoList, error) {
	var videos VideoList
	if err := c.get(ctx, fmt.Sprintf("movie/%d/videos", movieID), nil, &videos); err != nil {
		return nil, err
	}
	return &videos, nil
}

func (c *Client) FetchPerson(ctx context.Context, personID int64) (*Person, error) {
	var person Person
	if err := c.get(ctx, fmt.Sprintf("person/%d", personID), nil, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

func (c *Client) SearchMovies(ctx context.Context, query string) (*SearchResults, error) {
	params := url.Values{}
	params.Set("query", query)

	var results SearchResults
	if err := c.get(ctx, "search/movie", params, &results); err != nil {
		return nil, err
	}
	return &results, nil
}

// get performs an authenticated GET and decodes the JSON body into dest.
// Error mapping: 404 -> ErrNotFound, any other failure -> ErrUnavailable.
func (c *Client) get(ctx context.Context, path string, params url.Values, dest interface{}) error {
	if c.config.APIKey == "" {
		return ErrMissingAPIKey
	}

	endpoint := strings.TrimRight(c.config.BaseURL, "/") + "/" + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build tmdb request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeouts and connection failures included.
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 400:
		return fmt.Errorf("%w: unexpected status %d for %s", ErrUnavailable, resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}
	return nil
}

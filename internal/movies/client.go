// Package movies proxies the external movie catalogue. Response bodies are
// passed through verbatim; the proxy only adds caching and a circuit breaker.
package movies

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"cineclub/internal/movies/metrics"
	"cineclub/internal/platform/config"
	id "cineclub/pkg/domain"
	dErrors "cineclub/pkg/domain-errors"
)

const (
	MaxSearchQueryLength = 200
	// MaxPage is the highest page the upstream catalogue serves.
	MaxPage = 500

	breakerName     = "movies-api"
	maxResponseSize = 5 << 20
)

var errUpstreamNotFound = errors.New("upstream returned 404")

type upstreamStatusError struct {
	status int
}

func (e *upstreamStatusError) Error() string {
	return "upstream returned status " + strconv.Itoa(e.status)
}

// Client calls the upstream movie API behind a cache and a circuit breaker.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      Cache
	cacheTTL   time.Duration
	breaker    *gobreaker.CircuitBreaker[[]byte]
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

type Option func(*Client)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithCache sets the response cache. A nil cache disables caching.
func WithCache(cache Cache) Option {
	return func(c *Client) { c.cache = cache }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func New(cfg config.Movies, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cacheTTL:   cfg.CacheTTL,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 5
	}
	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     cfg.BreakerOpenDelay,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		// A missing movie or a caller giving up says nothing about upstream health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errUpstreamNotFound) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("movie api circuit breaker state change",
				"breaker", name,
				"from", stateToString(from),
				"to", stateToString(to),
			)
			if c.metrics != nil {
				c.metrics.ObserveBreaker(name, stateToString(from), stateToString(to), stateToFloat(to))
			}
		},
	})
	return c
}

// Popular returns one page of the upstream popular list.
func (c *Client) Popular(ctx context.Context, page int) (json.RawMessage, error) {
	if err := validatePage(page); err != nil {
		return nil, err
	}
	return c.fetch(ctx, "/movie/popular", url.Values{"page": {strconv.Itoa(page)}})
}

// Search runs a title search. The query is trimmed and must be non-empty.
func (c *Client) Search(ctx context.Context, query string, page int) (json.RawMessage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "query is required")
	}
	if len(query) > MaxSearchQueryLength {
		return nil, dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("query must be at most %d characters", MaxSearchQueryLength))
	}
	if err := validatePage(page); err != nil {
		return nil, err
	}
	return c.fetch(ctx, "/search/movie", url.Values{
		"query":         {query},
		"page":          {strconv.Itoa(page)},
		"include_adult": {"false"},
	})
}

// Details returns the upstream record for one movie.
func (c *Client) Details(ctx context.Context, movieID id.MovieID) (json.RawMessage, error) {
	if movieID <= 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "movie id must be positive")
	}
	return c.fetch(ctx, "/movie/"+movieID.String(), nil)
}

func validatePage(page int) error {
	if page < 1 || page > MaxPage {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("page must be between 1 and %d", MaxPage))
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	key := path
	if len(query) > 0 {
		key += "?" + query.Encode()
	}

	if body, ok := c.cacheGet(ctx, key); ok {
		return json.RawMessage(body), nil
	}

	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.call(ctx, path, query)
	})
	if err != nil {
		return nil, c.translate(ctx, path, err)
	}
	c.observeUpstream("success")

	c.cacheSet(ctx, key, body)
	return json.RawMessage(body), nil
}

func (c *Client) call(ctx context.Context, path string, query url.Values) ([]byte, error) {
	params := url.Values{}
	for k, v := range query {
		params[k] = v
	}
	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, errUpstreamNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &upstreamStatusError{status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if !json.Valid(body) {
		return nil, errors.New("upstream returned invalid json")
	}
	return body, nil
}

// translate maps breaker and transport failures onto coded errors.
func (c *Client) translate(ctx context.Context, path string, err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		c.observeUpstream("rejected")
		c.logger.WarnContext(ctx, "movie api request rejected by circuit breaker", "path", path)
		return dErrors.Wrap(err, dErrors.CodeUpstream, "movie service is temporarily unavailable")
	case errors.Is(err, errUpstreamNotFound):
		c.observeUpstream("not_found")
		return dErrors.Wrap(err, dErrors.CodeNotFound, "movie not found")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled),
		errors.As(err, &netErr) && netErr.Timeout():
		c.observeUpstream("failure")
		c.logger.WarnContext(ctx, "movie api request timed out", "path", path, "error", err)
		return dErrors.Wrap(err, dErrors.CodeTimeout, "movie service timed out")
	default:
		c.observeUpstream("failure")
		c.logger.WarnContext(ctx, "movie api request failed", "path", path, "error", err)
		return dErrors.Wrap(err, dErrors.CodeUpstream, "movie service is unavailable")
	}
}

func (c *Client) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}
	body, ok, err := c.cache.Get(ctx, key)
	switch {
	case err != nil:
		c.observeCache("error")
		c.logger.WarnContext(ctx, "movie cache read failed", "key", key, "error", err)
		return nil, false
	case ok:
		c.observeCache("hit")
		return body, true
	default:
		c.observeCache("miss")
		return nil, false
	}
}

func (c *Client) cacheSet(ctx context.Context, key string, body []byte) {
	if c.cache == nil || c.cacheTTL <= 0 {
		return
	}
	if err := c.cache.Set(ctx, key, body, c.cacheTTL); err != nil {
		c.logger.WarnContext(ctx, "movie cache write failed", "key", key, "error", err)
	}
}

func (c *Client) observeCache(result string) {
	if c.metrics != nil {
		c.metrics.ObserveCache(result)
	}
}

func (c *Client) observeUpstream(outcome string) {
	if c.metrics != nil {
		c.metrics.ObserveUpstream(outcome)
	}
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Package pubg is a thin client for the PUBG stats API. It decodes the
// provider's JSON:API documents into explicit schemas, validates them on
// ingress and returns models. Each call makes exactly one request attempt.
package pubg

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://api.pubg.com/shards"
	mediaType      = "application/vnd.api+json"

	// maxBodySize caps provider responses at 8MB
	maxBodySize = 8 << 20
)

// Prometheus metrics
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pubg_requests_total",
		Help: "Total number of requests sent to the PUBG API",
	}, []string{"endpoint", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pubg_request_duration_seconds",
		Help:    "Duration of PUBG API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	rateWait = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pubg_rate_wait_seconds",
		Help:    "Time spent waiting for the outbound request budget",
		Buckets: []float64{0.01, 0.1, 0.5, 1, 2, 5, 10, 30},
	})
)

// Doer is satisfied by *http.Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config configures the client
type Config struct {
	BaseURL           string
	APIKey            string
	Timeout           time.Duration
	RequestsPerMinute int
	HTTPClient        Doer
	Logger            *zap.Logger
}

// Client talks to the provider's shard-scoped REST endpoints.
type Client struct {
	baseURL  string
	apiKey   string
	http     Doer
	limiter  *rate.Limiter
	validate *validator.Validate
	logger   *zap.SugaredLogger
}

// NewClient creates a provider client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), cfg.RequestsPerMinute)
	}

	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:   cfg.APIKey,
		http:     cfg.HTTPClient,
		limiter:  limiter,
		validate: validator.New(),
		logger:   cfg.Logger.Sugar(),
	}
}

// get issues one GET against {baseURL}/{shard}/{path} and decodes a 2xx body into out.
func (c *Client) get(ctx context.Context, endpoint, shard, path string, query url.Values, out interface{}) error {
	u := c.baseURL + "/" + url.PathEscape(shard) + "/" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", mediaType)

	waitStart := time.Now()
	if err := c.limiter.Wait(ctx); err != nil {
		requestsTotal.WithLabelValues(endpoint, "throttled").Inc()
		return &NetworkError{Err: err}
	}
	rateWait.Observe(time.Since(waitStart).Seconds())

	start := time.Now()
	resp, err := c.http.Do(req)
	requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(endpoint, "error").Inc()
		c.logger.Warnw("PUBG request failed", "endpoint", endpoint, "shard", shard, "error", err)
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()
	requestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Detail: errorDetail(resp.StatusCode, body)}
		c.logger.Infow("PUBG API error", "endpoint", endpoint, "shard", shard, "status", resp.StatusCode, "detail", apiErr.Detail)
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedResponse, endpoint, err)
	}
	if err := c.validate.Struct(out); err != nil {
		c.logger.Warnw("PUBG payload failed validation", "endpoint", endpoint, "error", err)
		return fmt.Errorf("%w: %s: %v", ErrMalformedResponse, endpoint, err)
	}
	return nil
}

// errorDetail extracts the first detail from a provider error document.
func errorDetail(status int, body []byte) string {
	var doc errorDocument
	if err := json.Unmarshal(body, &doc); err == nil && len(doc.Errors) > 0 {
		if doc.Errors[0].Detail != "" {
			return doc.Errors[0].Detail
		}
		if doc.Errors[0].Title != "" {
			return doc.Errors[0].Title
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("HTTP %d", status)
}

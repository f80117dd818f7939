// Package githubapi issues rate-limited GET requests against the GitHub
// REST API with status-aware retry and backoff. A single Executor is
// shared by all concurrent fetches in a pipeline run so retries consume
// the same budget as first attempts.
package githubapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jonathan/founder-scout/internal/ratelimit"
)

// DefaultTimeout is the per-request HTTP timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for API requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; FounderScout/1.0)"

// DefaultMaxRetries bounds hard retry attempts per request.
const DefaultMaxRetries = 3

// defaultRetryAfter is used when a 429 response carries no parseable
// Retry-After header. GitHub quotas reset hourly.
const defaultRetryAfter = 3600 * time.Second

// response captures the parts of an HTTP response the retry loop needs.
type response struct {
	status     int
	body       []byte
	retryAfter string
}

// Executor performs rate-limited GETs with retries. All waits observe
// context cancellation.
type Executor struct {
	Client     *http.Client
	Limiter    *ratelimit.Limiter
	UserAgent  string
	Token      string
	MaxRetries int
	Logger     *slog.Logger

	// sleep is swappable for tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewExecutor creates an Executor gated by limiter. token may be empty;
// when set it is attached to every request as a GitHub token header.
func NewExecutor(limiter *ratelimit.Limiter, token string) *Executor {
	return &Executor{
		Client:     &http.Client{Timeout: DefaultTimeout},
		Limiter:    limiter,
		UserAgent:  DefaultUserAgent,
		Token:      token,
		MaxRetries: DefaultMaxRetries,
		Logger:     slog.Default(),
		sleep:      sleepContext,
	}
}

// Execute issues a GET against rawURL for the given source and returns the
// response body on a 200. Behavior by status:
//
//   - 429: wait the Retry-After duration (default one hour) and re-enter
//     the same attempt; these waits do not consume the retry budget but
//     are bounded to MaxRetries re-entries so no wait is unbounded.
//   - 401/403: terminal, returns *AuthorizationError without retrying.
//   - anything else, or a transport error: exponential backoff (2^attempt
//     seconds) then retry, up to MaxRetries attempts.
//
// Every attempt, including 429 re-entries, acquires a rate-limit slot
// first so retries are themselves rate limited.
func (e *Executor) Execute(ctx context.Context, source, rawURL string, headers map[string]string, params url.Values) (json.RawMessage, error) {
	attempts := 0
	rateLimitWaits := 0

	for attempts < e.MaxRetries {
		if err := e.Limiter.Acquire(ctx, source); err != nil {
			return nil, err
		}

		resp, err := e.attempt(ctx, rawURL, headers, params)

		switch {
		case err != nil:
			e.Logger.Warn("request failed", "url", rawURL, "error", err)
		case resp.status == http.StatusOK:
			return resp.body, nil
		case resp.status == http.StatusTooManyRequests:
			rateLimitWaits++
			if rateLimitWaits >= e.MaxRetries {
				return nil, ErrExhaustedRetries
			}
			wait := parseRetryAfter(resp.retryAfter)
			e.Logger.Warn("rate limited by remote, waiting", "source", source, "wait", wait)
			if err := e.sleep(ctx, wait); err != nil {
				return nil, err
			}
			continue
		case resp.status == http.StatusUnauthorized || resp.status == http.StatusForbidden:
			e.Logger.Error("authorization rejected", "url", rawURL, "status", resp.status)
			return nil, &AuthorizationError{URL: rawURL, StatusCode: resp.status}
		default:
			e.Logger.Warn("unexpected status", "url", rawURL, "status", resp.status)
		}

		// Transient failure: back off before the next attempt.
		if attempts < e.MaxRetries-1 {
			backoff := time.Duration(1<<uint(attempts)) * time.Second
			if err := e.sleep(ctx, backoff); err != nil {
				return nil, err
			}
		}
		attempts++
	}

	return nil, ErrExhaustedRetries
}

// attempt performs exactly one GET against rawURL with params merged into
// the query string.
func (e *Executor) attempt(ctx context.Context, rawURL string, headers map[string]string, params url.Values) (response, error) {
	target := rawURL
	if len(params) > 0 {
		u, err := url.Parse(rawURL)
		if err != nil {
			return response{}, &RequestError{URL: rawURL, Message: "invalid URL", Cause: err}
		}
		q := u.Query()
		for key, values := range params {
			for _, v := range values {
				q.Add(key, v)
			}
		}
		u.RawQuery = q.Encode()
		target = u.String()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return response{}, &RequestError{URL: target, Message: "failed to create request", Cause: err}
	}

	// Caller headers first, then defaults; defaults win on conflict.
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	req.Header.Set("User-Agent", e.UserAgent)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if e.Token != "" {
		req.Header.Set("Authorization", "token "+e.Token)
	}

	resp, err := e.Client.Do(req)
	if err != nil {
		return response{}, &RequestError{URL: target, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return response{}, &RequestError{URL: target, Message: "failed to read response body", Cause: err}
	}

	return response{
		status:     resp.StatusCode,
		body:       body,
		retryAfter: resp.Header.Get("Retry-After"),
	}, nil
}

// parseRetryAfter interprets a Retry-After header value in seconds,
// defaulting to one hour when missing or unparseable.
func parseRetryAfter(raw string) time.Duration {
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds < 0 {
		return defaultRetryAfter
	}
	return time.Duration(seconds) * time.Second
}

// sleepContext waits for d or until ctx is canceled.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

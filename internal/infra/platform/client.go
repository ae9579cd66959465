// Package platform is the REST client of the booking platform.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"booking-console/internal/domain/session"
	"booking-console/internal/pkg/config"
	"booking-console/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	headerRequestID = "X-Request-ID"
	maxErrorBody    = 64 << 10
)

// TokenReader yields the persisted access token; "" means none.
type TokenReader interface {
	Get(ctx context.Context, key string) (string, error)
}

// Client performs one HTTP request per call. Failed requests are never retried.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	limiter    *rate.Limiter
	tokens     TokenReader
	logger     *slog.Logger

	mu             sync.RWMutex
	onUnauthorized func(token string)
}

func NewClient(cfg config.APIConfig, tokens TokenReader, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(cfg.BaseURLWithSlash())
	if err != nil {
		return nil, errs.Wrap(err, "parse API_BASE_URL")
	}

	limit := rate.Limit(cfg.RateLimit)
	if cfg.RateLimit <= 0 {
		limit = rate.Inf
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(limit, burst),
		tokens:     tokens,
		logger:     logger,
	}, nil
}

// OnUnauthorized registers the callback run when an authenticated request is answered
// with 401. It receives the token that was rejected.
func (c *Client) OnUnauthorized(fn func(token string)) {
	c.mu.Lock()
	c.onUnauthorized = fn
	c.mu.Unlock()
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
	// authenticated requests carry the bearer token and report 401 globally.
	authenticated bool
	// unauthorizedKind replaces ErrUnauthorized for 401 answers.
	unauthorizedKind error
}

// do sends r and decodes a 2xx JSON body into out when out is non-nil. It reports
// whether a body was present.
func (c *Client) do(ctx context.Context, r request, out any) (bool, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return false, &TransportError{Method: r.method, Path: r.path, Err: err}
	}

	target := c.baseURL.ResolveReference(&url.URL{Path: r.path})
	if len(r.query) > 0 {
		target.RawQuery = r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		buf, err := json.Marshal(r.body)
		if err != nil {
			return false, errs.Wrap(err, "encode request body")
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target.String(), body)
	if err != nil {
		return false, errs.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set(headerRequestID, requestID)

	var token string
	if r.authenticated {
		token, err = c.tokens.Get(ctx, session.KeyAccess)
		if err != nil {
			return false, errs.Wrap(err, "read access token")
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Platform request failed",
			slog.String("request_id", requestID),
			slog.String("method", r.method),
			slog.String("path", r.path),
			slog.String("error", err.Error()),
		)
		return false, &TransportError{Method: r.method, Path: r.path, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("Platform request",
		slog.String("request_id", requestID),
		slog.String("method", r.method),
		slog.String("path", r.path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return c.decodeSuccess(resp, r, out)
	}

	apiErr := &Error{Method: r.method, Path: r.path, Status: resp.StatusCode, Kind: classify(resp.StatusCode, r)}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	decodeErrorBody(raw, apiErr)

	if apiErr.Kind == errs.ErrUnauthorized && token != "" {
		c.notifyUnauthorized(token)
	}
	return false, apiErr
}

func (c *Client) decodeSuccess(resp *http.Response, r request, out any) (bool, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, &TransportError{Method: r.method, Path: r.path, Err: err}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return false, nil
	}
	if out == nil {
		return true, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, &Error{Method: r.method, Path: r.path, Status: resp.StatusCode, Kind: errs.ErrUnknown,
			Detail: "Unexpected response from the booking service."}
	}
	return true, nil
}

func classify(status int, r request) error {
	switch {
	case status == http.StatusUnauthorized:
		if r.unauthorizedKind != nil {
			return r.unauthorizedKind
		}
		return errs.ErrUnauthorized
	case status >= 400 && status < 500:
		return errs.ErrValidationFailed
	default:
		return errs.ErrUnknown
	}
}

func (c *Client) notifyUnauthorized(token string) {
	c.mu.RLock()
	fn := c.onUnauthorized
	c.mu.RUnlock()
	if fn != nil {
		fn(token)
	}
}

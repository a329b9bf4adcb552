// Package backend implements the REST clients for the SmartHR backend and
// the assistant backend. Every request is a single attempt: no retries, no
// implicit timeout beyond what the caller configures.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/smarthr/hr-gateway/internal/api/metrics"
	"github.com/smarthr/hr-gateway/internal/core/domain"
)

// restClient is the shared request machinery: it attaches the bearer token
// when one is present and classifies failures into the two halves of the
// error taxonomy: transport errors (domain.ErrBackendUnreachable) and
// non-2xx responses (domain.BackendError, carrying the body text).
type restClient struct {
	baseURL string
	name    string
	client  *http.Client
	log     zerolog.Logger
}

func newRESTClient(baseURL, name string, timeout time.Duration, log zerolog.Logger) restClient {
	return restClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		name:    name,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

// do issues one request. A non-nil body is sent as JSON; a non-nil out has
// the response body decoded into it. The token is omitted when empty.
func (c *restClient) do(ctx context.Context, method, path string, query url.Values, tok string, body, out any) error {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	started := time.Now()
	resp, err := c.client.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(c.name).Observe(time.Since(started).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(c.name, "unreachable").Inc()
		return fmt.Errorf("%w: %s %s: %v", domain.ErrBackendUnreachable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.UpstreamRequestsTotal.WithLabelValues(c.name, "rejected").Inc()
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 8<<10))
		c.log.Debug().
			Int("status", resp.StatusCode).
			Str("method", method).
			Str("path", path).
			Msg("backend rejected request")
		return &domain.BackendError{
			Status: resp.StatusCode,
			Detail: strings.TrimSpace(string(detail)),
		}
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(c.name, "ok").Inc()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", path, err)
	}
	return nil
}

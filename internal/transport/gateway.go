// Package transport implements the HTTPS gateway boundary of the client.
package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/intacct-go/intacct-client/internal/constants"
	"github.com/intacct-go/intacct-client/pkg/intacct"
)

// Gateway posts serialized requests to the XML gateway with automatic
// retries on transient failures (>=500, 429, and connection errors). It
// implements intacct.Gateway.
type Gateway struct {
	endpoint  string
	client    *retryablehttp.Client
	userAgent string
	logger    intacct.Logger
	debug     bool
}

// Option configures gateway construction.
type Option func(*Gateway)

// WithLogger sets the structured logger used for debug output.
func WithLogger(logger intacct.Logger) Option {
	return func(g *Gateway) {
		g.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(g *Gateway) {
		g.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(g *Gateway) {
		g.userAgent = userAgent
	}
}

// WithRetryConfig tunes the retry policy.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(g *Gateway) {
		g.client.RetryMax = retryMax
		g.client.RetryWaitMin = waitMin
		g.client.RetryWaitMax = waitMax
	}
}

// WithTimeout bounds each HTTP attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(g *Gateway) {
		g.client.HTTPClient.Timeout = timeout
	}
}

// WithTLSConfig replaces the TLS configuration of the underlying client.
func WithTLSConfig(config *tls.Config) Option {
	return func(g *Gateway) {
		g.client.HTTPClient.Transport = &http.Transport{TLSClientConfig: config}
	}
}

// New creates a gateway for the given endpoint URL.
func New(endpoint string, opts ...Option) *Gateway {
	client := retryablehttp.NewClient()
	client.RetryMax = constants.DefaultRetryMax
	client.RetryWaitMin = constants.DefaultRetryWaitMin
	client.RetryWaitMax = constants.DefaultRetryWaitMax
	client.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	client.Logger = nil

	gateway := &Gateway{
		endpoint:  endpoint,
		client:    client,
		userAgent: constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(gateway)
	}

	return gateway
}

// Endpoint returns the gateway URL.
func (g *Gateway) Endpoint() string {
	return g.endpoint
}

// Send implements intacct.Gateway. The reply body is fully buffered; non-2xx
// outcomes are reported through RawResponse.Status, not as a Send error.
func (g *Gateway) Send(ctx context.Context, body []byte) (*intacct.RawResponse, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building gateway request: %w", err)
	}

	req.Header.Set("Content-Type", constants.ContentTypeXMLRequest)
	req.Header.Set("User-Agent", g.userAgent)

	if g.debug && g.logger != nil {
		g.logger.Debug("gateway request", map[string]interface{}{
			"endpoint": g.endpoint,
			"bytes":    len(body),
		})
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("posting to gateway: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading gateway response: %w", err)
	}

	if g.debug && g.logger != nil {
		g.logger.Debug("gateway response", map[string]interface{}{
			"status": resp.StatusCode,
			"bytes":  len(payload),
		})
	}

	return &intacct.RawResponse{StatusCode: resp.StatusCode, Body: payload}, nil
}

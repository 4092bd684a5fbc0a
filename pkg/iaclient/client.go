package iaclient

import (
	"context"
	"crypto/tls"
	"fmt"
	"os"
	"strings"

	"github.com/intacct-go/intacct-client/internal/client"
	"github.com/intacct-go/intacct-client/internal/constants"
	"github.com/intacct-go/intacct-client/internal/transport"
	"github.com/intacct-go/intacct-client/pkg/intacct"
)

// New creates a gateway client from config. The endpoint is normalized by
// trimming a trailing slash and adding "https://" when no scheme is present;
// an empty endpoint targets the production gateway. Credentials are not
// validated here; validation is lazy and happens when a request is sent.
func New(ctx context.Context, config *intacct.Config) (intacct.Client, error) {
	if config == nil {
		return nil, intacct.ErrConfigRequired
	}

	endpoint := strings.TrimSuffix(config.Endpoint, "/")
	if endpoint == "" {
		endpoint = constants.DefaultEndpoint
	}

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	config.Endpoint = endpoint

	opts, err := gatewayOptions(config)
	if err != nil {
		return nil, err
	}

	gateway := transport.New(endpoint, opts...)

	impl, err := client.New(config, gateway)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return impl, nil
}

// gatewayOptions builds transport options from config.
func gatewayOptions(config *intacct.Config) ([]transport.Option, error) {
	var opts []transport.Option

	if config.Logger != nil {
		opts = append(opts, transport.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, transport.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, transport.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, transport.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		opts = append(opts, transport.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.SkipTLSVerify {
		// Only allow insecure TLS in explicit development environments.
		if !isDevelopmentEnvironment() {
			return nil, fmt.Errorf("%w (set INTACCT_DEV_MODE=true)", intacct.ErrSkipTLSOnlyInDev)
		}

		opts = append(opts, transport.WithTLSConfig(&tls.Config{InsecureSkipVerify: true})) // #nosec G402 -- Protected by development environment check above
	}

	return opts, nil
}

// isDevelopmentEnvironment checks if we're in a development environment.
func isDevelopmentEnvironment() bool {
	devMode := os.Getenv("INTACCT_DEV_MODE")

	return devMode == "true" || devMode == "1"
}

// NewWithCredentials creates a client against the production gateway.
func NewWithCredentials(ctx context.Context, creds intacct.Credentials) (intacct.Client, error) {
	return New(ctx, &intacct.Config{Credentials: creds})
}

// NewWithEndpoint creates a client for a non-production gateway endpoint.
func NewWithEndpoint(ctx context.Context, endpoint string, creds intacct.Credentials) (intacct.Client, error) {
	return New(ctx, &intacct.Config{Endpoint: endpoint, Credentials: creds})
}

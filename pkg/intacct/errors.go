package intacct

import (
	"errors"
	"fmt"
	"strings"
)

// Static errors that can be wrapped with context.
var (
	ErrEmptyRequest       = errors.New("request contains no functions")
	ErrConfigRequired     = errors.New("config is required")
	ErrGatewayRequired    = errors.New("gateway is required")
	ErrSkipTLSOnlyInDev   = errors.New("skipTLS is only allowed in development environments")
	ErrSessionUnavailable = errors.New("gateway returned no session id")
)

// InsufficientCredentialsError reports the required authentication keys that
// were missing when a request was validated. It is raised locally and never
// reaches the network.
type InsufficientCredentialsError struct {
	Missing []string
}

// Error implements the error interface.
func (e *InsufficientCredentialsError) Error() string {
	return "insufficient credentials: missing " + strings.Join(e.Missing, ", ")
}

// HTTPStatusError reports a non-2xx gateway outcome.
type HTTPStatusError struct {
	StatusCode int
	Body       []byte
}

// Error implements the error interface.
func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("gateway returned HTTP %d", e.StatusCode)
}

// FunctionFailureError reports an API-level rejection of one or more
// requested functions, found inside an otherwise HTTP-successful reply. Its
// message is the function error strings joined by newlines, in document
// order.
type FunctionFailureError struct {
	Messages []string
}

// Error implements the error interface.
func (e *FunctionFailureError) Error() string {
	return strings.Join(e.Messages, "\n")
}

// IsInsufficientCredentials checks if the error is a credential validation failure.
func IsInsufficientCredentials(err error) bool {
	target := &InsufficientCredentialsError{}

	return errors.As(err, &target)
}

// IsEmptyRequest checks if the error reports a request with zero functions.
func IsEmptyRequest(err error) bool {
	return errors.Is(err, ErrEmptyRequest)
}

// IsHTTPStatus checks if the error is a non-2xx gateway outcome.
func IsHTTPStatus(err error) bool {
	target := &HTTPStatusError{}

	return errors.As(err, &target)
}

// IsFunctionFailure checks if the error is an API-level function rejection.
func IsFunctionFailure(err error) bool {
	target := &FunctionFailureError{}

	return errors.As(err, &target)
}

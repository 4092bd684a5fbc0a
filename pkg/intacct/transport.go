package intacct

import "context"

// Gateway delivers a serialized request body to the vendor endpoint and
// returns the raw reply. Implementations own endpoint, TLS, timeout, and
// retry concerns; the core assumes bodies are delivered byte-for-byte.
type Gateway interface {
	Send(ctx context.Context, body []byte) (*RawResponse, error)
}

// RawResponse is the unparsed gateway reply. It is produced by a Gateway and
// consumed exactly once by ParseResponse.
type RawResponse struct {
	StatusCode int
	Body       []byte

	// Err records a transport-level failure observed while producing this
	// reply. It takes precedence over StatusCode and is surfaced unchanged.
	Err error
}

// Status returns the transport-level failure for this reply, if any: Err
// unchanged when set, an *HTTPStatusError for non-2xx status codes, nil
// otherwise.
func (r *RawResponse) Status() error {
	if r.Err != nil {
		return r.Err
	}

	if r.StatusCode < 200 || r.StatusCode >= 300 {
		return &HTTPStatusError{StatusCode: r.StatusCode, Body: r.Body}
	}

	return nil
}

package intacct

import (
	"context"
	"time"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client is the high-level gateway client. All methods build a single
// request, send it, and return the parsed reply; errors follow the package
// taxonomy.
type Client interface {
	// Execute sends the supplied functions as one request, in order.
	Execute(ctx context.Context, functions ...Function) (*Response, error)

	Create(ctx context.Context, objectType string, args ...Argument) (*Response, error)
	Read(ctx context.Context, objectType string, args ...Argument) (*Response, error)
	Update(ctx context.Context, objectType string, args ...Argument) (*Response, error)
	Delete(ctx context.Context, objectType string, args ...Argument) (*Response, error)
	Inspect(ctx context.Context, objectType string) (*Response, error)
	ReadByQuery(ctx context.Context, objectType, query string) (*Response, error)

	// GetAPISession returns a server-side API session, reusing a cached one
	// while it is still live.
	GetAPISession(ctx context.Context) (*Session, error)
}

// Session is an authenticated server-side API session.
type Session struct {
	ID        string    `json:"id"`
	Endpoint  string    `json:"endpoint"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Config represents client configuration for building an intacct.Client.
//
// Credential validation is lazy: a client can be constructed with an
// incomplete credential set, and the missing keys are reported the first
// time a request is sent.
type Config struct {
	// Endpoint is the XML gateway URL. iaclient.New fills in the production
	// gateway when empty and normalizes a missing scheme to https.
	Endpoint string

	// Credentials carries the five required authentication keys.
	Credentials Credentials

	// Overrides applies to every request the client builds. Callers needing
	// per-request control can still use NewRequest/WithOverrides directly.
	Overrides Overrides

	// HTTPTimeout: default timeout for gateway requests. Most calls should
	// rely on context deadlines; this bounds the underlying HTTP client.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures (>=500,
	// 429, and connection errors). If 0, the transport default is used.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// UserAgent overrides the default User-Agent header sent by the client.
	UserAgent string
	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the transport.
	Logger Logger

	// SkipTLSVerify is honored only when INTACCT_DEV_MODE is set to "true"
	// or "1"; do not use it in production.
	SkipTLSVerify bool

	// Cache configures session caching. Nil keeps the default in-memory
	// cache; CacheTypeNone disables caching.
	Cache *CacheConfig

	// SessionTTL bounds how long an acquired API session is reused.
	SessionTTL time.Duration
}

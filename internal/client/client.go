// Package client implements the intacct.Client interface.
package client

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/intacct-go/intacct-client/internal/constants"
	"github.com/intacct-go/intacct-client/pkg/intacct"
)

// Client implements intacct.Client on top of an injected gateway. It holds
// no mutable state besides the session cache, so a single instance is safe
// for concurrent use.
type Client struct {
	gateway    intacct.Gateway
	creds      intacct.Credentials
	overrides  intacct.Overrides
	cache      intacct.Cache
	sessionTTL time.Duration
	logger     intacct.Logger
}

// New creates a client from config and a gateway.
func New(config *intacct.Config, gateway intacct.Gateway) (*Client, error) {
	if config == nil {
		return nil, intacct.ErrConfigRequired
	}

	if gateway == nil {
		return nil, intacct.ErrGatewayRequired
	}

	cache, err := intacct.NewCacheFromConfig(config.Cache)
	if err != nil {
		return nil, fmt.Errorf("building session cache: %w", err)
	}

	sessionTTL := config.SessionTTL
	if sessionTTL == 0 {
		sessionTTL = constants.DefaultSessionTTL
	}

	return &Client{
		gateway:    gateway,
		creds:      config.Credentials,
		overrides:  config.Overrides,
		cache:      cache,
		sessionTTL: sessionTTL,
		logger:     config.Logger,
	}, nil
}

// Execute implements intacct.Client.Execute.
func (c *Client) Execute(ctx context.Context, functions ...intacct.Function) (*intacct.Response, error) {
	request := intacct.NewRequest(c.creds, functions...).WithOverrides(c.overrides)

	return request.Send(ctx, c.gateway)
}

// Create implements intacct.Client.Create.
func (c *Client) Create(ctx context.Context, objectType string, args ...intacct.Argument) (*intacct.Response, error) {
	return c.Execute(ctx, intacct.NewFunction(intacct.OperationCreate, objectType, args...))
}

// Read implements intacct.Client.Read.
func (c *Client) Read(ctx context.Context, objectType string, args ...intacct.Argument) (*intacct.Response, error) {
	return c.Execute(ctx, intacct.NewFunction(intacct.OperationRead, objectType, args...))
}

// Update implements intacct.Client.Update.
func (c *Client) Update(ctx context.Context, objectType string, args ...intacct.Argument) (*intacct.Response, error) {
	return c.Execute(ctx, intacct.NewFunction(intacct.OperationUpdate, objectType, args...))
}

// Delete implements intacct.Client.Delete.
func (c *Client) Delete(ctx context.Context, objectType string, args ...intacct.Argument) (*intacct.Response, error) {
	return c.Execute(ctx, intacct.NewFunction(intacct.OperationDelete, objectType, args...))
}

// Inspect implements intacct.Client.Inspect.
func (c *Client) Inspect(ctx context.Context, objectType string) (*intacct.Response, error) {
	return c.Execute(ctx, intacct.NewFunction(intacct.OperationInspect, objectType))
}

// ReadByQuery implements intacct.Client.ReadByQuery.
func (c *Client) ReadByQuery(ctx context.Context, objectType, query string) (*intacct.Response, error) {
	return c.Execute(ctx, intacct.NewFunction(intacct.OperationReadByQuery, objectType,
		intacct.Arg("query", query)))
}

// GetAPISession implements intacct.Client.GetAPISession. A cached session is
// reused while it is still live; otherwise a fresh one is acquired from the
// gateway and cached with the configured TTL.
func (c *Client) GetAPISession(ctx context.Context) (*intacct.Session, error) {
	key := c.sessionKey()

	entry, err := c.cache.Get(ctx, key)
	if err == nil {
		var session intacct.Session

		err = json.Unmarshal(entry.Data, &session)
		if err == nil {
			return &session, nil
		}
	}

	resp, err := c.Execute(ctx, intacct.NewFunction(intacct.OperationGetSession, ""))
	if err != nil {
		return nil, err
	}

	session, err := parseSession(resp)
	if err != nil {
		return nil, err
	}

	session.ExpiresAt = time.Now().Add(c.sessionTTL)

	data, err := json.Marshal(session)
	if err == nil {
		cacheErr := c.cache.Set(ctx, key, &intacct.CacheEntry{Data: data, ExpiresAt: session.ExpiresAt})
		if cacheErr != nil && c.logger != nil {
			c.logger.Warn("caching session failed", map[string]interface{}{"error": cacheErr.Error()})
		}
	}

	return session, nil
}

// sessionKey derives a cache key from the credential identity. Hashing keeps
// the key within the character set every cache backend accepts.
func (c *Client) sessionKey() string {
	sum := sha256.Sum256([]byte(c.creds.SenderID + "\x00" + c.creds.CompanyID + "\x00" + c.creds.UserID))

	return fmt.Sprintf("session-%x", sum[:8])
}

// parseSession extracts the session payload from a getAPISession result.
func parseSession(resp *intacct.Response) (*intacct.Session, error) {
	if len(resp.Results) == 0 {
		return nil, intacct.ErrSessionUnavailable
	}

	var payload struct {
		API struct {
			SessionID string `xml:"sessionid"`
			Endpoint  string `xml:"endpoint"`
		} `xml:"api"`
	}

	// Result data is the inner XML of <data>; re-wrap it so it decodes as
	// one document.
	wrapped := make([]byte, 0, len(resp.Results[0].Data)+len("<data></data>"))
	wrapped = append(wrapped, "<data>"...)
	wrapped = append(wrapped, resp.Results[0].Data...)
	wrapped = append(wrapped, "</data>"...)

	err := xml.Unmarshal(wrapped, &payload)
	if err != nil {
		return nil, fmt.Errorf("parsing session payload: %w", err)
	}

	if payload.API.SessionID == "" {
		return nil, intacct.ErrSessionUnavailable
	}

	return &intacct.Session{ID: payload.API.SessionID, Endpoint: payload.API.Endpoint}, nil
}

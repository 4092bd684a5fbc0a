package transport_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intacct-go/intacct-client/internal/transport"
	"github.com/intacct-go/intacct-client/pkg/intacct"
)

func TestGateway_Send(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodPost, request.Method)
		assert.Equal(t, "x-intacct-xml-request", request.Header.Get("Content-Type"))
		assert.Equal(t, "intacct-client-go", request.Header.Get("User-Agent"))

		body, err := io.ReadAll(request.Body)
		require.NoError(t, err)
		assert.Equal(t, "<request/>", string(body))

		writer.Header().Set("Content-Type", "text/xml")
		_, _ = writer.Write([]byte("<response/>"))
	}))
	defer server.Close()

	gateway := transport.New(server.URL)

	raw, err := gateway.Send(context.Background(), []byte("<request/>"))
	require.NoError(t, err)
	require.NoError(t, raw.Status())
	assert.Equal(t, http.StatusOK, raw.StatusCode)
	assert.Equal(t, "<response/>", string(raw.Body))
}

func TestGateway_Send_CustomUserAgent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "books/2.0", request.Header.Get("User-Agent"))
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	gateway := transport.New(server.URL, transport.WithUserAgent("books/2.0"))

	raw, err := gateway.Send(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, raw.StatusCode)
}

func TestGateway_Send_NonSuccessStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		http.Error(writer, "no such gateway", http.StatusNotFound)
	}))
	defer server.Close()

	gateway := transport.New(server.URL)

	// A non-2xx outcome is carried in the raw response, not as a Send error.
	raw, err := gateway.Send(context.Background(), []byte("<request/>"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, raw.StatusCode)

	statusErr := raw.Status()
	require.Error(t, statusErr)
	assert.True(t, intacct.IsHTTPStatus(statusErr))
}

func TestGateway_Send_RetriesTransientFailures(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if attempts.Add(1) < 3 {
			writer.WriteHeader(http.StatusBadGateway)

			return
		}

		_, _ = writer.Write([]byte("<response/>"))
	}))
	defer server.Close()

	gateway := transport.New(server.URL,
		transport.WithRetryConfig(5, time.Millisecond, 5*time.Millisecond))

	raw, err := gateway.Send(context.Background(), []byte("<request/>"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, raw.StatusCode)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestGateway_Send_ContextCancelled(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		time.Sleep(time.Second)
	}))
	defer server.Close()

	gateway := transport.New(server.URL, transport.WithRetryConfig(0, time.Millisecond, time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := gateway.Send(ctx, []byte("<request/>"))
	require.Error(t, err)
}

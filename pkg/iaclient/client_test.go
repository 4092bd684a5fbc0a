package iaclient_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intacct-go/intacct-client/pkg/iaclient"
	"github.com/intacct-go/intacct-client/pkg/intacct"
)

func testCredentials() intacct.Credentials {
	return intacct.Credentials{
		SenderID:       "sender",
		SenderPassword: "sender-pass",
		UserID:         "user",
		CompanyID:      "company",
		UserPassword:   "user-pass",
	}
}

func TestNew_RequiresConfig(t *testing.T) {
	t.Parallel()

	_, err := iaclient.New(context.Background(), nil)
	require.ErrorIs(t, err, intacct.ErrConfigRequired)
}

func TestNew_NormalizesEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint string
		want     string
	}{
		{"empty defaults to production", "", "https://api.intacct.com/ia/xml/xmlgw.phtml"},
		{"trailing slash trimmed", "https://gw.example.com/xmlgw/", "https://gw.example.com/xmlgw"},
		{"scheme added when missing", "gw.example.com/xmlgw", "https://gw.example.com/xmlgw"},
		{"http left alone", "http://localhost:8080/xmlgw", "http://localhost:8080/xmlgw"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			config := &intacct.Config{Endpoint: tt.endpoint, Credentials: testCredentials()}

			_, err := iaclient.New(context.Background(), config)
			require.NoError(t, err)
			assert.Equal(t, tt.want, config.Endpoint)
		})
	}
}

func TestNew_SkipTLSVerifyRequiresDevMode(t *testing.T) {
	config := &intacct.Config{Credentials: testCredentials(), SkipTLSVerify: true}

	t.Setenv("INTACCT_DEV_MODE", "")

	_, err := iaclient.New(context.Background(), config)
	require.ErrorIs(t, err, intacct.ErrSkipTLSOnlyInDev)

	t.Setenv("INTACCT_DEV_MODE", "true")

	_, err = iaclient.New(context.Background(), config)
	require.NoError(t, err)
}

func TestClient_RoundTrip(t *testing.T) {
	t.Parallel()

	var received []byte

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		body, err := io.ReadAll(request.Body)
		require.NoError(t, err)
		received = body

		_, _ = writer.Write([]byte(`<response>
  <control><status>success</status></control>
  <operation>
    <authentication><status>success</status></authentication>
    <result>
      <status>success</status>
      <function>read</function>
      <controlid>read-customer</controlid>
      <data><customer><recordno>42</recordno></customer></data>
    </result>
  </operation>
</response>`))
	}))
	defer server.Close()

	c, err := iaclient.NewWithEndpoint(context.Background(), server.URL, testCredentials())
	require.NoError(t, err)

	resp, err := c.Read(context.Background(), "customer", intacct.Arg("keys", "42"))
	require.NoError(t, err)

	require.Len(t, resp.Results, 1)
	assert.Contains(t, string(resp.Results[0].Data), "<recordno>42</recordno>")

	assert.Contains(t, string(received), "<senderid>sender</senderid>")
	assert.Contains(t, string(received), `<function controlid="read-customer"><read><customer><keys>42</keys></customer></read></function>`)
}

func TestClient_RoundTrip_FunctionFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`<response>
  <control><status>success</status></control>
  <operation>
    <authentication><status>success</status></authentication>
    <result>
      <status>failure</status>
      <function>create</function>
      <controlid>create-customer</controlid>
      <errormessage>
        <error><errorno>BL01</errorno><description2>required field missing</description2></error>
      </errormessage>
    </result>
  </operation>
</response>`))
	}))
	defer server.Close()

	c, err := iaclient.NewWithEndpoint(context.Background(), server.URL, testCredentials())
	require.NoError(t, err)

	_, err = c.Create(context.Background(), "customer")
	require.Error(t, err)
	assert.True(t, intacct.IsFunctionFailure(err))
	assert.Equal(t, "required field missing", err.Error())
}

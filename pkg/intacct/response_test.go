package intacct_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intacct-go/intacct-client/pkg/intacct"
)

func TestParseResponse_TransportErrorPropagatesUnchanged(t *testing.T) {
	t.Parallel()

	transportErr := errors.New("Some HTTP Error")
	raw := &intacct.RawResponse{Err: transportErr}

	_, err := intacct.ParseResponse(raw)
	require.Error(t, err)

	// The exact error, not a wrapped or translated one.
	assert.Equal(t, transportErr, err)
}

func TestParseResponse_NonSuccessStatus(t *testing.T) {
	t.Parallel()

	raw := &intacct.RawResponse{StatusCode: 502, Body: []byte("bad gateway")}

	_, err := intacct.ParseResponse(raw)
	require.Error(t, err)
	assert.True(t, intacct.IsHTTPStatus(err))

	httpErr := &intacct.HTTPStatusError{}
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 502, httpErr.StatusCode)
}

func TestParseResponse_FunctionErrors(t *testing.T) {
	t.Parallel()

	body := `<?xml version="1.0" encoding="UTF-8"?>
<response>
  <control><status>success</status></control>
  <operation>
    <authentication><status>success</status></authentication>
    <result>
      <status>failure</status>
      <function>create</function>
      <controlid>create-customer</controlid>
      <errormessage>
        <error><errorno>BL01</errorno><description2>error1</description2></error>
        <error><errorno>BL02</errorno><description2>error2</description2></error>
      </errormessage>
    </result>
  </operation>
</response>`

	_, err := intacct.ParseResponse(&intacct.RawResponse{StatusCode: 200, Body: []byte(body)})
	require.Error(t, err)
	assert.True(t, intacct.IsFunctionFailure(err))
	assert.Equal(t, "error1\nerror2", err.Error())
}

func TestParseResponse_ErrorsAcrossResults(t *testing.T) {
	t.Parallel()

	// Any function error fails the whole parse, even when sibling results
	// nominally succeeded.
	body := `<response>
  <control><status>success</status></control>
  <operation>
    <authentication><status>success</status></authentication>
    <result>
      <status>success</status>
      <function>create</function>
      <controlid>create-customer</controlid>
      <data/>
    </result>
    <result>
      <status>failure</status>
      <function>update</function>
      <controlid>update-vendor</controlid>
      <errormessage>
        <error><errorno>BL03</errorno><description2>no such vendor</description2></error>
      </errormessage>
    </result>
  </operation>
</response>`

	_, err := intacct.ParseResponse(&intacct.RawResponse{StatusCode: 200, Body: []byte(body)})
	require.Error(t, err)
	assert.True(t, intacct.IsFunctionFailure(err))
	assert.Equal(t, "no such vendor", err.Error())
}

func TestParseResponse_ControlLevelError(t *testing.T) {
	t.Parallel()

	body := `<response>
  <control><status>failure</status></control>
  <errormessage>
    <error><errorno>XL03000006</errorno><description2>Incorrect Intacct XML Partner ID or password.</description2></error>
  </errormessage>
</response>`

	_, err := intacct.ParseResponse(&intacct.RawResponse{StatusCode: 200, Body: []byte(body)})
	require.Error(t, err)
	assert.True(t, intacct.IsFunctionFailure(err))
	assert.Contains(t, err.Error(), "Partner ID")
}

func TestParseResponse_DescriptionFallback(t *testing.T) {
	t.Parallel()

	body := `<response>
  <operation>
    <result>
      <status>failure</status>
      <errormessage>
        <error><errorno>BL04</errorno><description>short description</description></error>
      </errormessage>
    </result>
  </operation>
</response>`

	_, err := intacct.ParseResponse(&intacct.RawResponse{StatusCode: 200, Body: []byte(body)})
	require.Error(t, err)
	assert.Equal(t, "short description", err.Error())
}

func TestParseResponse_Success(t *testing.T) {
	t.Parallel()

	body := `<response>
  <control><status>success</status></control>
  <operation>
    <authentication><status>success</status></authentication>
    <result>
      <status>success</status>
      <function>read</function>
      <controlid>read-customer</controlid>
      <data><customer><recordno>7</recordno></customer></data>
    </result>
  </operation>
</response>`

	resp, err := intacct.ParseResponse(&intacct.RawResponse{StatusCode: 200, Body: []byte(body)})
	require.NoError(t, err)

	assert.Empty(t, resp.FunctionErrors())
	assert.Equal(t, "success", resp.ControlStatus)

	require.Len(t, resp.Results, 1)
	assert.Equal(t, "read", resp.Results[0].Function)
	assert.Equal(t, "read-customer", resp.Results[0].ControlID)
	assert.Contains(t, string(resp.Results[0].Data), "<recordno>7</recordno>")
}

func TestParseResponse_MalformedBody(t *testing.T) {
	t.Parallel()

	_, err := intacct.ParseResponse(&intacct.RawResponse{StatusCode: 200, Body: []byte("not xml at all <")})
	require.Error(t, err)
	assert.False(t, intacct.IsFunctionFailure(err))
}

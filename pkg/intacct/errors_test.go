package intacct_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/intacct-go/intacct-client/pkg/intacct"
)

func TestInsufficientCredentialsError_Message(t *testing.T) {
	t.Parallel()

	err := &intacct.InsufficientCredentialsError{Missing: []string{"senderid", "userpassword"}}
	assert.Equal(t, "insufficient credentials: missing senderid, userpassword", err.Error())
}

func TestFunctionFailureError_Message(t *testing.T) {
	t.Parallel()

	err := &intacct.FunctionFailureError{Messages: []string{"error1", "error2"}}
	assert.Equal(t, "error1\nerror2", err.Error())
}

func TestHTTPStatusError_Message(t *testing.T) {
	t.Parallel()

	err := &intacct.HTTPStatusError{StatusCode: 503}
	assert.Equal(t, "gateway returned HTTP 503", err.Error())
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	credErr := fmt.Errorf("sending: %w", &intacct.InsufficientCredentialsError{Missing: []string{"userid"}})
	assert.True(t, intacct.IsInsufficientCredentials(credErr))
	assert.False(t, intacct.IsFunctionFailure(credErr))

	emptyErr := fmt.Errorf("sending: %w", intacct.ErrEmptyRequest)
	assert.True(t, intacct.IsEmptyRequest(emptyErr))

	httpErr := fmt.Errorf("sending: %w", &intacct.HTTPStatusError{StatusCode: 500})
	assert.True(t, intacct.IsHTTPStatus(httpErr))

	fnErr := fmt.Errorf("sending: %w", &intacct.FunctionFailureError{Messages: []string{"x"}})
	assert.True(t, intacct.IsFunctionFailure(fnErr))

	plain := errors.New("some error")
	assert.False(t, intacct.IsInsufficientCredentials(plain))
	assert.False(t, intacct.IsEmptyRequest(plain))
	assert.False(t, intacct.IsHTTPStatus(plain))
	assert.False(t, intacct.IsFunctionFailure(plain))
}

func TestCredentials_Missing(t *testing.T) {
	t.Parallel()

	creds := intacct.Credentials{SenderID: "s", UserID: "u"}
	assert.Equal(t, []string{"senderpassword", "companyid", "userpassword"}, creds.Missing())

	complete := intacct.Credentials{
		SenderID:       "s",
		SenderPassword: "sp",
		UserID:         "u",
		CompanyID:      "c",
		UserPassword:   "up",
	}
	assert.Empty(t, complete.Missing())
	assert.NoError(t, complete.Validate())
}

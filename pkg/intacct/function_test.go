package intacct_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intacct-go/intacct-client/pkg/intacct"
)

func TestFunction_XML(t *testing.T) {
	t.Parallel()

	fn := intacct.NewFunction(intacct.OperationCreate, "customer",
		intacct.Arg("name", "Acme"),
		intacct.Arg("status", "active"),
	)

	out, err := fn.XML()
	require.NoError(t, err)

	expected := `<function controlid="create-customer">` +
		`<create><customer>` +
		`<name>Acme</name><status>active</status>` +
		`</customer></create>` +
		`</function>`
	assert.Equal(t, expected, out)
}

func TestFunction_XML_EscapesValues(t *testing.T) {
	t.Parallel()

	fn := intacct.NewFunction(intacct.OperationUpdate, "vendor",
		intacct.Arg("name", `Fish & Chips <"fresh">`),
	)

	out, err := fn.XML()
	require.NoError(t, err)

	assert.Contains(t, out, "Fish &amp; Chips")
	assert.Contains(t, out, "&lt;")
	assert.NotContains(t, out, `<"`)
}

func TestFunction_XML_ArgumentOrder(t *testing.T) {
	t.Parallel()

	args := make([]intacct.Argument, 0, 10)
	for i := 0; i < 10; i++ {
		args = append(args, intacct.Arg(fmt.Sprintf("field_%d", i), fmt.Sprintf("value_%d", i)))
	}

	fn := intacct.NewFunction(intacct.OperationCreate, "glentry", args...)

	out, err := fn.XML()
	require.NoError(t, err)

	last := -1
	for i := 0; i < 10; i++ {
		idx := strings.Index(out, fmt.Sprintf("<field_%d>", i))
		require.Greater(t, idx, last, "field_%d out of order", i)
		last = idx
	}
}

func TestFunction_XML_NoObjectType(t *testing.T) {
	t.Parallel()

	fn := intacct.NewFunction(intacct.OperationGetSession, "")

	out, err := fn.XML()
	require.NoError(t, err)

	assert.Equal(t, `<function controlid="getAPISession"><getAPISession></getAPISession></function>`, out)
}

func TestFunction_Accessors(t *testing.T) {
	t.Parallel()

	fn := intacct.NewFunction(intacct.OperationRead, "customer", intacct.Arg("key", "1"))

	assert.Equal(t, intacct.OperationRead, fn.Kind())
	assert.Equal(t, "customer", fn.ObjectType())
	assert.Equal(t, "read-customer", fn.ControlID())

	// Mutating the returned slice must not affect the function.
	args := fn.Arguments()
	args[0] = intacct.Arg("other", "2")
	assert.Equal(t, []intacct.Argument{{Name: "key", Value: "1"}}, fn.Arguments())
}

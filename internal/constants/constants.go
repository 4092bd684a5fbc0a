package constants

import "time"

// Gateway defaults.
const (
	// DefaultEndpoint is the production XML gateway URL.
	DefaultEndpoint = "https://api.intacct.com/ia/xml/xmlgw.phtml"

	// ContentTypeXMLRequest is the request content type the gateway expects.
	ContentTypeXMLRequest = "x-intacct-xml-request"

	// DefaultUserAgent is sent when the caller does not override it.
	DefaultUserAgent = "intacct-client-go"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for gateway requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Session handling.
const (
	// DefaultSessionTTL bounds how long an API session is reused. Gateway
	// sessions stay valid longer; the margin absorbs clock skew.
	DefaultSessionTTL = 25 * time.Minute
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

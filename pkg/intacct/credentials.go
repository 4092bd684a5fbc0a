package intacct

// Credentials carries the five keys the gateway requires on every request.
// All five must be non-empty before a request can be serialized or sent.
type Credentials struct {
	SenderID       string
	SenderPassword string
	UserID         string
	CompanyID      string
	UserPassword   string
}

// Missing returns the names of required keys that are empty, in schema order.
func (c Credentials) Missing() []string {
	required := []struct {
		name  string
		value string
	}{
		{"senderid", c.SenderID},
		{"senderpassword", c.SenderPassword},
		{"userid", c.UserID},
		{"companyid", c.CompanyID},
		{"userpassword", c.UserPassword},
	}

	var missing []string

	for _, key := range required {
		if key.value == "" {
			missing = append(missing, key.name)
		}
	}

	return missing
}

// Validate returns an *InsufficientCredentialsError naming every missing key,
// or nil when the set is complete.
func (c Credentials) Validate() error {
	missing := c.Missing()
	if len(missing) > 0 {
		return &InsufficientCredentialsError{Missing: missing}
	}

	return nil
}

// Overrides replaces selected control and operation defaults. An empty field
// keeps the default; a non-empty value is emitted verbatim. The struct closes
// the configuration surface: there is no open key set and therefore no
// unrecognized-key behavior to choose.
type Overrides struct {
	UniqueID          string
	DTDVersion        string
	IncludeWhitespace string
	Transaction       string
}

// Defaults is the control and operation default table, keyed by schema field
// name. The control id is not here: it is freshly generated per serialization
// and never overridable.
var Defaults = map[string]string{
	"uniqueid":          "false",
	"dtdversion":        "3.0",
	"includewhitespace": "false",
	"transaction":       "false",
}

func (o Overrides) uniqueID() string          { return orDefault(o.UniqueID, "uniqueid") }
func (o Overrides) dtdVersion() string        { return orDefault(o.DTDVersion, "dtdversion") }
func (o Overrides) includeWhitespace() string { return orDefault(o.IncludeWhitespace, "includewhitespace") }
func (o Overrides) transaction() string       { return orDefault(o.Transaction, "transaction") }

func orDefault(value, key string) string {
	if value != "" {
		return value
	}

	return Defaults[key]
}

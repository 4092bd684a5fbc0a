package intacct

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"time"
)

// Request composes one or more functions with credentials and control
// overrides into a single gateway document. It stays mutable until sent;
// the completeness invariants are enforced lazily at serialization time so
// callers can assemble functions incrementally.
//
// A Request holds no shared state and may be built and sent concurrently
// with other requests.
type Request struct {
	creds     Credentials
	overrides Overrides
	functions []Function

	now func() time.Time
}

// NewRequest builds a request for the given credentials and functions.
func NewRequest(creds Credentials, functions ...Function) *Request {
	return &Request{
		creds:     creds,
		functions: append([]Function(nil), functions...),
		now:       time.Now,
	}
}

// WithOverrides replaces the control and operation overrides. It returns the
// request for chaining.
func (r *Request) WithOverrides(overrides Overrides) *Request {
	r.overrides = overrides

	return r
}

// Add appends functions to the request. Order of addition is serialization
// order.
func (r *Request) Add(functions ...Function) *Request {
	r.functions = append(r.functions, functions...)

	return r
}

// Functions returns a copy of the ordered function list.
func (r *Request) Functions() []Function {
	return append([]Function(nil), r.functions...)
}

// validate enforces the pre-send invariants: all five credential keys
// present and at least one function supplied.
func (r *Request) validate() error {
	err := r.creds.Validate()
	if err != nil {
		return err
	}

	if len(r.functions) == 0 {
		return ErrEmptyRequest
	}

	return nil
}

// The envelope structure is fixed by the gateway DTD: a control block with
// sender identity and schema metadata, then an operation block with the user
// login and the function content.
type requestEnvelope struct {
	XMLName   xml.Name       `xml:"request"`
	Control   controlBlock   `xml:"control"`
	Operation operationBlock `xml:"operation"`
}

type controlBlock struct {
	SenderID          string `xml:"senderid"`
	Password          string `xml:"password"`
	ControlID         string `xml:"controlid"`
	UniqueID          string `xml:"uniqueid"`
	DTDVersion        string `xml:"dtdversion"`
	IncludeWhitespace string `xml:"includewhitespace"`
}

type operationBlock struct {
	Transaction    string       `xml:"transaction,attr"`
	Authentication authBlock    `xml:"authentication"`
	Content        contentBlock `xml:"content"`
}

type authBlock struct {
	Login loginBlock `xml:"login"`
}

type loginBlock struct {
	UserID    string `xml:"userid"`
	Password  string `xml:"password"`
	CompanyID string `xml:"companyid"`
}

type contentBlock struct {
	Functions []Function `xml:"function"`
}

// XML validates the request and serializes it to the gateway document. The
// control id is freshly generated on every call as an RFC 3339 UTC timestamp
// and is never user-overridable.
func (r *Request) XML() ([]byte, error) {
	err := r.validate()
	if err != nil {
		return nil, err
	}

	envelope := requestEnvelope{
		Control: controlBlock{
			SenderID:          r.creds.SenderID,
			Password:          r.creds.SenderPassword,
			ControlID:         r.now().UTC().Format(time.RFC3339),
			UniqueID:          r.overrides.uniqueID(),
			DTDVersion:        r.overrides.dtdVersion(),
			IncludeWhitespace: r.overrides.includeWhitespace(),
		},
		Operation: operationBlock{
			Transaction: r.overrides.transaction(),
			Authentication: authBlock{
				Login: loginBlock{
					UserID:    r.creds.UserID,
					Password:  r.creds.UserPassword,
					CompanyID: r.creds.CompanyID,
				},
			},
			Content: contentBlock{Functions: r.functions},
		},
	}

	var buf bytes.Buffer

	buf.WriteString(xml.Header)

	err = xml.NewEncoder(&buf).Encode(envelope)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	return buf.Bytes(), nil
}

// Send validates and serializes the request, posts it through the gateway,
// and parses the raw reply into a Response. When validation fails the
// gateway is never invoked, so a malformed request has no network side
// effect. Transport failures from the gateway are returned unchanged.
func (r *Request) Send(ctx context.Context, gateway Gateway) (*Response, error) {
	body, err := r.XML()
	if err != nil {
		return nil, err
	}

	raw, err := gateway.Send(ctx, body)
	if err != nil {
		return nil, err
	}

	return ParseResponse(raw)
}

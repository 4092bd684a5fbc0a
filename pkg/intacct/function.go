package intacct

import (
	"encoding/xml"
	"fmt"
)

// OperationKind identifies the verb of an API function.
type OperationKind string

// Operation kinds understood by the gateway.
const (
	OperationCreate      OperationKind = "create"
	OperationRead        OperationKind = "read"
	OperationUpdate      OperationKind = "update"
	OperationDelete      OperationKind = "delete"
	OperationInspect     OperationKind = "inspect"
	OperationReadByName  OperationKind = "readByName"
	OperationReadByQuery OperationKind = "readByQuery"
	OperationGetSession  OperationKind = "getAPISession"
)

// Argument is a single named function argument. Arguments render as child
// elements in the order they were supplied.
type Argument struct {
	Name  string
	Value string
}

// Arg constructs an Argument.
func Arg(name, value string) Argument {
	return Argument{Name: name, Value: value}
}

// Function is one API operation targeting a single object type. It is an
// immutable value: construct it, serialize it, discard it.
type Function struct {
	kind       OperationKind
	objectType string
	args       []Argument
}

// NewFunction builds a function for the given operation kind and object type.
// Argument values are passed through verbatim; XML-unsafe characters are
// escaped by the serializer, never by the caller.
func NewFunction(kind OperationKind, objectType string, args ...Argument) Function {
	return Function{
		kind:       kind,
		objectType: objectType,
		args:       append([]Argument(nil), args...),
	}
}

// Kind returns the operation kind.
func (f Function) Kind() OperationKind { return f.kind }

// ObjectType returns the target object type.
func (f Function) ObjectType() string { return f.objectType }

// Arguments returns a copy of the ordered argument list.
func (f Function) Arguments() []Argument {
	return append([]Argument(nil), f.args...)
}

// ControlID identifies this function inside a multi-function request.
func (f Function) ControlID() string {
	if f.objectType == "" {
		return string(f.kind)
	}

	return string(f.kind) + "-" + f.objectType
}

// MarshalXML implements xml.Marshaler. The element is always named
// "function" regardless of the enclosing field, so a function embedded in a
// request content block serializes byte-for-byte like a standalone one.
func (f Function) MarshalXML(enc *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{
		Name: xml.Name{Local: "function"},
		Attr: []xml.Attr{{Name: xml.Name{Local: "controlid"}, Value: f.ControlID()}},
	}

	err := enc.EncodeToken(start)
	if err != nil {
		return err
	}

	kind := xml.StartElement{Name: xml.Name{Local: string(f.kind)}}

	err = enc.EncodeToken(kind)
	if err != nil {
		return err
	}

	// Session-style functions carry no object type; arguments then sit
	// directly under the operation element.
	object := xml.StartElement{Name: xml.Name{Local: f.objectType}}
	if f.objectType != "" {
		err = enc.EncodeToken(object)
		if err != nil {
			return err
		}
	}

	for _, arg := range f.args {
		err = enc.EncodeElement(arg.Value, xml.StartElement{Name: xml.Name{Local: arg.Name}})
		if err != nil {
			return err
		}
	}

	if f.objectType != "" {
		err = enc.EncodeToken(object.End())
		if err != nil {
			return err
		}
	}

	err = enc.EncodeToken(kind.End())
	if err != nil {
		return err
	}

	return enc.EncodeToken(start.End())
}

// XML renders the function as a standalone fragment.
func (f Function) XML() (string, error) {
	out, err := xml.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("marshaling function: %w", err)
	}

	return string(out), nil
}

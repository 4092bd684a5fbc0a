package intacct

import (
	"encoding/xml"
	"fmt"
)

// Result is the outcome of a single function within a request.
type Result struct {
	Status    string
	Function  string
	ControlID string

	// Data is the raw inner XML of the result's <data> element. Its shape
	// is defined by the vendor schema per object type.
	Data []byte
}

// Response is a fully parsed, error-free gateway reply. Construction is
// all-or-nothing: if the envelope carries any function-level error the parse
// fails with a *FunctionFailureError and no Response is produced, even when
// other functions in the same request nominally succeeded.
type Response struct {
	ControlStatus string
	Results       []Result
}

// FunctionError is one entry of a gateway error list.
type FunctionError struct {
	Number       string `xml:"errorno"`
	Description  string `xml:"description"`
	Description2 string `xml:"description2"`
	Correction   string `xml:"correction"`
}

// Message returns the human-readable text of the entry.
func (e FunctionError) Message() string {
	if e.Description2 != "" {
		return e.Description2
	}

	return e.Description
}

type responseEnvelope struct {
	XMLName      xml.Name          `xml:"response"`
	Control      responseControl   `xml:"control"`
	ErrorMessage *errorMessage     `xml:"errormessage"`
	Operation    responseOperation `xml:"operation"`
}

type responseControl struct {
	Status    string `xml:"status"`
	SenderID  string `xml:"senderid"`
	ControlID string `xml:"controlid"`
}

type responseOperation struct {
	Authentication struct {
		Status string `xml:"status"`
	} `xml:"authentication"`
	ErrorMessage *errorMessage   `xml:"errormessage"`
	Results      []resultElement `xml:"result"`
}

type resultElement struct {
	Status       string        `xml:"status"`
	Function     string        `xml:"function"`
	ControlID    string        `xml:"controlid"`
	Data         innerXML      `xml:"data"`
	ErrorMessage *errorMessage `xml:"errormessage"`
}

type innerXML struct {
	Raw []byte `xml:",innerxml"`
}

type errorMessage struct {
	Errors []FunctionError `xml:"error"`
}

// ParseResponse consumes a raw gateway reply. Transport-level failures
// reported by raw.Status are returned unchanged; the core never wraps or
// reinterprets them. An HTTP-successful reply whose envelope carries one or
// more function errors yields a *FunctionFailureError with the messages
// newline-joined in document order.
func ParseResponse(raw *RawResponse) (*Response, error) {
	err := raw.Status()
	if err != nil {
		return nil, err
	}

	var envelope responseEnvelope

	err = xml.Unmarshal(raw.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing response envelope: %w", err)
	}

	messages := envelope.errorMessages()
	if len(messages) > 0 {
		return nil, &FunctionFailureError{Messages: messages}
	}

	response := &Response{ControlStatus: envelope.Control.Status}

	for _, result := range envelope.Operation.Results {
		response.Results = append(response.Results, Result{
			Status:    result.Status,
			Function:  result.Function,
			ControlID: result.ControlID,
			Data:      result.Data.Raw,
		})
	}

	return response, nil
}

// errorMessages collects every function-level error message in the envelope,
// in document order. The gateway reports errors at the control level, the
// operation level, or inside individual results depending on where the
// failure occurred.
func (e *responseEnvelope) errorMessages() []string {
	var messages []string

	appendFrom := func(em *errorMessage) {
		if em == nil {
			return
		}

		for _, entry := range em.Errors {
			if msg := entry.Message(); msg != "" {
				messages = append(messages, msg)
			}
		}
	}

	appendFrom(e.ErrorMessage)
	appendFrom(e.Operation.ErrorMessage)

	for _, result := range e.Operation.Results {
		appendFrom(result.ErrorMessage)
	}

	return messages
}

// FunctionErrors returns the function-level error list of the reply. It is
// always empty on a Response that parsed successfully; any error entry fails
// the whole parse instead.
func (r *Response) FunctionErrors() []string {
	return []string{}
}

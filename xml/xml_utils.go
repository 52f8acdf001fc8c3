package xml

import (
	encxml "encoding/xml"
	"fmt"
	"io"
	"io/ioutil"
)

// GetResponseErrorCode returns the error code from an xml error response body
func GetResponseErrorCode(r io.Reader, noErrorWrapping bool) (string, error) {
	rb, err := ioutil.ReadAll(r)
	if err != nil {
		return "", err
	}

	if noErrorWrapping {
		var errResponse errorBody
		err := encxml.Unmarshal(rb, &errResponse)
		if err != nil {
			return "", fmt.Errorf("error while fetching xml error response code: %w", err)
		}
		return errResponse.Code, err
	}

	var errResponse errorResponse
	if err := encxml.Unmarshal(rb, &errResponse); err != nil {
		return "", fmt.Errorf("error while fetching xml error response code: %w", err)
	}
	return errResponse.Err.Code, nil
}

// errorResponse represents the outer error response body
// i.e. <ErrorResponse>...</ErrorResponse>
type errorResponse struct {
	Err errorBody `xml:"Error"`
}

// errorBody represents the inner error body is wrapped by <ErrorResponse> tag
// eg. if error response is <ErrorResponse><Error>...</Error><ErrorResponse>
// here errorBody represents <Error>...</Error>
type errorBody struct {
	Code string `xml:"Code"`
}

// escQuot is how the stdlib xml encoder escapes a literal `"`, used by
// tests that assert against escaped output without hard-coding the
// entity.
const escQuot = "&#34;"

// escapeString escapes s per XML text/attribute-value escaping rules and
// writes it to w.
func escapeString(w writer, s string) {
	encxml.EscapeText(w, []byte(s))
}

// escapeText is the []byte analog of escapeString, used by Value.Write
// when the caller asks for escaped raw text.
func escapeText(w writer, b []byte) {
	encxml.EscapeText(w, b)
}

// qualifiedName renders a Name as `prefix:local`, or just `local`/`prefix`
// when the other half is empty.
func qualifiedName(n Name) string {
	switch {
	case n.Space == "":
		return n.Local
	case n.Local == "":
		return n.Space
	default:
		return n.Space + ":" + n.Local
	}
}

// writeStartElement writes `<name attr="val" ...>`. A nil element is a
// no-op, matching a Value with no wrapping tag (top-level scalar).
func writeStartElement(w writer, e *StartElement) {
	if e == nil {
		return
	}
	w.WriteRune('<')
	w.WriteString(qualifiedName(e.Name))
	for _, a := range e.Attr {
		w.WriteRune(' ')
		w.WriteString(qualifiedName(a.Name))
		w.WriteString(`="`)
		escapeString(w, a.Value)
		w.WriteRune('"')
	}
	w.WriteRune('>')
}

// writeEndElement writes `</name>`. A nil element is a no-op.
func writeEndElement(w writer, e *EndElement) {
	if e == nil {
		return
	}
	w.WriteString("</")
	w.WriteString(qualifiedName(e.Name))
	w.WriteRune('>')
}

// NewAttribute returns a plain (non-namespace) XML attribute.
func NewAttribute(name, value string) *Attr {
	return &Attr{Name: Name{Local: name}, Value: value}
}

// NewNamespaceAttribute returns an `xmlns="uri"` (empty prefix) or
// `xmlns:prefix="uri"` attribute.
func NewNamespaceAttribute(prefix, uri string) *Attr {
	return &Attr{Name: Name{Space: "xmlns", Local: prefix}, Value: uri}
}

package json

import "bytes"

// writer interface used by the json encoder to write an encoded json
// document to a writer.
type writer interface {
	// Write takes in a byte slice and returns number of bytes written and error
	Write(p []byte) (n int, err error)

	// WriteRune takes in a rune and returns number of bytes written and error
	WriteRune(r rune) (n int, err error)

	// WriteString takes in a string and returns number of bytes written and error
	WriteString(s string) (n int, err error)

	// String method returns a string
	String() string

	// Bytes return a byte slice.
	Bytes() []byte
}

// Encoder is a JSON encoder that supports construction of JSON values using
// method chaining. It embeds Value so a caller can write a root-level scalar
// directly, or call Object()/Array() to start a composite root value.
type Encoder struct {
	w writer
	Value
}

// NewEncoder returns a JSON encoder with a fresh internal buffer.
func NewEncoder() *Encoder {
	buf := &bytes.Buffer{}
	return &Encoder{w: buf, Value: newValue(buf)}
}

// String returns the string output of the JSON encoder.
func (e *Encoder) String() string {
	return e.w.String()
}

// Bytes returns the []byte output of the JSON encoder.
func (e *Encoder) Bytes() []byte {
	return e.w.Bytes()
}

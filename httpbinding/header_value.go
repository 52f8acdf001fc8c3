package httpbinding

import (
	"encoding/base64"
	"fmt"
	"math"
	"net/http"
	"strconv"
)

// HeaderValue encodes a scalar Go value into a single HTTP header, either
// replacing or appending to any existing values for that header's key.
type HeaderValue struct {
	header http.Header
	key    string
	append bool
}

func newHeaderValue(header http.Header, key string, appendValue bool) HeaderValue {
	return HeaderValue{header: header, key: key, append: appendValue}
}

func (h HeaderValue) modifyHeader(value string) {
	if h.append {
		h.header.Add(h.key, value)
	} else {
		h.header.Set(h.key, value)
	}
}

// String sets or appends a string header value.
func (h HeaderValue) String(v string) {
	h.modifyHeader(v)
}

// Boolean sets or appends a boolean header value ("true"/"false").
func (h HeaderValue) Boolean(v bool) {
	h.modifyHeader(strconv.FormatBool(v))
}

// Long sets or appends an int64 header value.
func (h HeaderValue) Long(v int64) {
	h.modifyHeader(strconv.FormatInt(v, 10))
}

// Double sets or appends a float64 header value, spelling out the special
// IEEE 754 values the way the JSON/XML codecs do.
func (h HeaderValue) Double(v float64) {
	switch {
	case math.IsNaN(v):
		h.modifyHeader("NaN")
	case math.IsInf(v, 1):
		h.modifyHeader("Infinity")
	case math.IsInf(v, -1):
		h.modifyHeader("-Infinity")
	default:
		h.modifyHeader(strconv.FormatFloat(v, 'f', -1, 64))
	}
}

// Blob base64-encodes v into a single header value.
func (h HeaderValue) Blob(v []byte) {
	h.modifyHeader(base64.StdEncoding.EncodeToString(v))
}

// Headers writes map-valued members as one header per entry, named
// `prefix+key`.
type Headers struct {
	header http.Header
	prefix string
}

// AddHeader returns a HeaderValue for the header named prefix+key.
func (h Headers) AddHeader(key string) HeaderValue {
	return newHeaderValue(h.header, fmt.Sprintf("%s%s", h.prefix, key), true)
}

// SetHeader returns a HeaderValue overwriting the header named prefix+key.
func (h Headers) SetHeader(key string) HeaderValue {
	return newHeaderValue(h.header, fmt.Sprintf("%s%s", h.prefix, key), false)
}

// Package httpbinding implements the scalar half of Smithy's HTTP binding
// traits: httpHeader, httpPrefixHeaders, httpQuery, and httpLabel. It's shared
// by the restJson1 and restXml protocols, which both serialize the same
// bound members the same way and differ only in how the remaining,
// unbound members are carried in the body.
package httpbinding

import (
	"encoding/base64"
	"math/big"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/smithygen/smithy-codegen"
	"github.com/smithygen/smithy-codegen/encoding"
	"github.com/smithygen/smithy-codegen/traits"
	smithyhttp "github.com/smithygen/smithy-codegen/transport/http"
)

// ShapeSerializer serializes shapes to HTTP request components (headers,
// query parameters, and URI labels) based on HTTP binding traits. Members
// with none of these traits are silently ignored; the caller is expected to
// also run the member through a body codec to cover those.
type ShapeSerializer struct {
	req     *smithyhttp.Request
	labels  map[string]string
	scratch []byte
}

var _ smithy.ShapeSerializer = (*ShapeSerializer)(nil)

// New returns a new HTTP binding shape serializer.
func New(req *smithyhttp.Request) *ShapeSerializer {
	return &ShapeSerializer{
		req:     req,
		labels:  make(map[string]string),
		scratch: make([]byte, 64),
	}
}

// Labels returns the httpLabel-bound values collected during serialization,
// keyed by member name, for substitution into a URI template.
func (s *ShapeSerializer) Labels() map[string]string {
	return s.labels
}

// Bytes returns nil as HTTP binding serialization writes directly to the
// request rather than to a byte buffer.
func (s *ShapeSerializer) Bytes() []byte {
	return nil
}

func (s *ShapeSerializer) setQuery(name, value string) {
	q := s.req.URL.Query()
	q.Set(name, value)
	s.req.URL.RawQuery = q.Encode()
}

// bind routes a formatted scalar value to whichever binding trait the
// member carries. Members with none of httpHeader, httpQuery, or httpLabel
// are left for the body codec.
func (s *ShapeSerializer) bind(schema *smithy.Schema, str string) {
	if h, ok := smithy.SchemaTrait[*traits.HTTPHeader](schema); ok {
		s.req.Header.Set(h.Name, str)
		return
	}
	if q, ok := smithy.SchemaTrait[*traits.HTTPQuery](schema); ok {
		s.setQuery(q.Name, str)
		return
	}
	if _, ok := smithy.SchemaTrait[*traits.HTTPLabel](schema); ok {
		s.labels[schema.ID.Member] = str
		return
	}
}

func (s *ShapeSerializer) WriteInt8(schema *smithy.Schema, v int8)   { s.writeInt(schema, int64(v)) }
func (s *ShapeSerializer) WriteInt16(schema *smithy.Schema, v int16) { s.writeInt(schema, int64(v)) }
func (s *ShapeSerializer) WriteInt32(schema *smithy.Schema, v int32) { s.writeInt(schema, int64(v)) }
func (s *ShapeSerializer) WriteInt64(schema *smithy.Schema, v int64) { s.writeInt(schema, v) }

func (s *ShapeSerializer) writeInt(schema *smithy.Schema, v int64) {
	s.bind(schema, strconv.FormatInt(v, 10))
}

func (s *ShapeSerializer) WriteInt8Ptr(schema *smithy.Schema, v *int8) {
	if v != nil {
		s.WriteInt8(schema, *v)
	}
}

func (s *ShapeSerializer) WriteInt16Ptr(schema *smithy.Schema, v *int16) {
	if v != nil {
		s.WriteInt16(schema, *v)
	}
}

func (s *ShapeSerializer) WriteInt32Ptr(schema *smithy.Schema, v *int32) {
	if v != nil {
		s.WriteInt32(schema, *v)
	}
}

func (s *ShapeSerializer) WriteInt64Ptr(schema *smithy.Schema, v *int64) {
	if v != nil {
		s.WriteInt64(schema, *v)
	}
}

func (s *ShapeSerializer) WriteFloat32(schema *smithy.Schema, v float32) {
	s.writeFloat(schema, float64(v), 32)
}

func (s *ShapeSerializer) WriteFloat64(schema *smithy.Schema, v float64) {
	s.writeFloat(schema, v, 64)
}

func (s *ShapeSerializer) writeFloat(schema *smithy.Schema, v float64, bits int) {
	s.scratch = encoding.EncodeFloat(s.scratch[:0], v, bits)
	s.bind(schema, string(s.scratch))
}

func (s *ShapeSerializer) WriteFloat32Ptr(schema *smithy.Schema, v *float32) {
	if v != nil {
		s.WriteFloat32(schema, *v)
	}
}

func (s *ShapeSerializer) WriteFloat64Ptr(schema *smithy.Schema, v *float64) {
	if v != nil {
		s.WriteFloat64(schema, *v)
	}
}

func (s *ShapeSerializer) WriteBool(schema *smithy.Schema, v bool) {
	s.bind(schema, strconv.FormatBool(v))
}

func (s *ShapeSerializer) WriteBoolPtr(schema *smithy.Schema, v *bool) {
	if v != nil {
		s.WriteBool(schema, *v)
	}
}

func (s *ShapeSerializer) WriteString(schema *smithy.Schema, v string) {
	if p, ok := smithy.SchemaTrait[*traits.HTTPPrefixHeaders](schema); ok {
		s.req.Header.Set(p.Prefix+schema.ID.Member, v)
		return
	}
	s.bind(schema, v)
}

func (s *ShapeSerializer) WriteStringPtr(schema *smithy.Schema, v *string) {
	if v != nil {
		s.WriteString(schema, *v)
	}
}

// WriteBigInteger panics as BigInteger is not supported as an HTTP binding.
func (s *ShapeSerializer) WriteBigInteger(schema *smithy.Schema, v big.Int) {
	panic("BigInteger is not supported")
}

// WriteBigDecimal panics as BigDecimal is not supported as an HTTP binding.
func (s *ShapeSerializer) WriteBigDecimal(schema *smithy.Schema, v big.Float) {
	panic("BigDecimal is not supported")
}

func (s *ShapeSerializer) WriteBlob(schema *smithy.Schema, v []byte) {
	s.bind(schema, base64.StdEncoding.EncodeToString(v))
}

func (s *ShapeSerializer) WriteTime(schema *smithy.Schema, v time.Time) {
	format := "http-date"
	if tf, ok := smithy.SchemaTrait[*traits.TimestampFormat](schema); ok {
		format = tf.Format
	}
	s.bind(schema, formatTime(v, format))
}

func (s *ShapeSerializer) WriteTimePtr(schema *smithy.Schema, v *time.Time) {
	if v != nil {
		s.WriteTime(schema, *v)
	}
}

func formatTime(v time.Time, format string) string {
	switch format {
	case "date-time":
		return v.Format(time.RFC3339)
	case "epoch-seconds":
		return strconv.FormatInt(v.Unix(), 10)
	default:
		return v.Format(time.RFC1123)
	}
}

// WriteStruct is a no-op: struct-typed members never carry header, query,
// or label bindings, so they're left entirely to the body codec.
func (s *ShapeSerializer) WriteStruct(schema *smithy.Schema, v smithy.Serializable) {}

// WriteUnion is a no-op for the same reason as WriteStruct.
func (s *ShapeSerializer) WriteUnion(schema, variant *smithy.Schema, v smithy.Serializable) {}

// WriteDocument is a no-op: document-shaped values aren't valid HTTP
// bindings and are left to the body codec.
func (s *ShapeSerializer) WriteDocument(schema *smithy.Schema, v smithy.Document2) {}

func (s *ShapeSerializer) WriteNil(schema *smithy.Schema) {}

// WriteList does nothing: list members are not written as query or header
// values by this serializer.
func (s *ShapeSerializer) WriteList(schema *smithy.Schema) {}

func (s *ShapeSerializer) CloseList() {}

func (s *ShapeSerializer) WriteMap(schema *smithy.Schema) {
	if _, ok := smithy.SchemaTrait[*traits.HTTPQueryParams](schema); ok {
		return
	}
}

func (s *ShapeSerializer) WriteKey(schema *smithy.Schema, key string) {}

func (s *ShapeSerializer) CloseMap() {}

// ExpandLabels substitutes {name} and {name+} URI template labels in uri
// with their bound values, percent-encoding each segment (greedy labels,
// marked with a trailing +, are not re-encoded so embedded slashes survive).
func ExpandLabels(uri string, labels map[string]string) string {
	var b strings.Builder
	b.Grow(len(uri))

	for i := 0; i < len(uri); i++ {
		if uri[i] != '{' {
			b.WriteByte(uri[i])
			continue
		}
		end := strings.IndexByte(uri[i:], '}')
		if end < 0 {
			b.WriteByte(uri[i])
			continue
		}
		end += i

		name := uri[i+1 : end]
		greedy := strings.HasSuffix(name, "+")
		name = strings.TrimSuffix(name, "+")

		if v, ok := labels[name]; ok {
			if greedy {
				// Greedy labels may span multiple path segments, so only
				// the individual segments get escaped, not the slashes.
				segs := strings.Split(v, "/")
				for i, seg := range segs {
					segs[i] = url.PathEscape(seg)
				}
				b.WriteString(strings.Join(segs, "/"))
			} else {
				b.WriteString(url.PathEscape(v))
			}
		}

		i = end
	}

	return b.String()
}

// Package xmlshape is the shared XML shape (de)serializer used by the
// restXml protocol. It implements smithy.ShapeSerializer / ShapeDeserializer
// against the shared encoding/xml-flavored low-level encoder in the xml
// package, and is the one place that knows about XML-specific concerns:
// xmlName renaming, xmlNamespace, xmlFlattened, and timestampFormat.
package xmlshape

import (
	"bytes"
	"fmt"
	"math/big"
	"time"

	"github.com/smithygen/smithy-codegen"
	smithytime "github.com/smithygen/smithy-codegen/time"
	"github.com/smithygen/smithy-codegen/traits"
	smithyxml "github.com/smithygen/smithy-codegen/xml"
)

// ShapeSerializer implements marshaling of Smithy shapes to XML.
type ShapeSerializer struct {
	buf  *bytes.Buffer
	root *smithyxml.Encoder
	head stack
}

var _ smithy.ShapeSerializer = (*ShapeSerializer)(nil)

// NewShapeSerializer returns an XML shape serializer that wraps each
// top-level struct/union in an element named after its schema (the xmlName
// trait if present, else the shape name).
func NewShapeSerializer() *ShapeSerializer {
	buf := &bytes.Buffer{}
	return &ShapeSerializer{buf: buf, root: smithyxml.NewEncoder(buf)}
}

func (ss *ShapeSerializer) Bytes() []byte {
	return ss.buf.Bytes()
}

// mapEntry is pushed by WriteKey: it carries the already-open <entry>
// element (so it can be closed once the matching value is written) and the
// Value slot for the <value> child itself.
type mapEntry struct {
	entry *smithyxml.Object
	value smithyxml.Value
}

// listFrame/mapFrame pair a pushed container with the cleanup callback
// openValue produced when the container itself was opened as a map entry's
// value (see mapEntry); it runs in CloseList/CloseMap once the whole
// container, not just one scalar, has been written.
type listFrame struct {
	arr  *smithyxml.Array
	done func()
}

type mapFrame struct {
	m    *smithyxml.Map
	done func()
}

// elementName resolves the element name a schema writes as: an xmlName
// trait override, else the member name for a member schema, else the
// shape's own name for a top-level (non-member) schema reference.
func elementName(s *smithy.Schema) string {
	if n, ok := smithy.SchemaTrait[*traits.XMLName](s); ok {
		return n.Name
	}
	if s.ID.Member != "" {
		return s.ID.Member
	}
	return s.ID.Name
}

func rootAttrs(s *smithy.Schema) *[]smithyxml.Attr {
	ns, ok := smithy.SchemaTrait[*traits.XMLNamespace](s)
	if !ok {
		return nil
	}
	attrs := []smithyxml.Attr{*smithyxml.NewNamespaceAttribute(ns.Prefix, ns.URI)}
	return &attrs
}

// openValue resolves the Value slot the next write should target, along
// with a callback that must run once that value (and everything nested
// under it, for composite writes) is fully written.
func (ss *ShapeSerializer) openValue(s *smithy.Schema) (smithyxml.Value, func()) {
	noop := func() {}
	switch enc := ss.head.Top().(type) {
	case *smithyxml.Object:
		return enc.Key(elementName(s), nil), noop
	case *listFrame:
		return enc.arr.Member(), noop
	case smithyxml.Value:
		ss.head.Pop()
		return enc, noop
	case *mapEntry:
		ss.head.Pop()
		return enc.value, func() { enc.entry.Close() }
	default:
		return ss.root.RootElement(elementName(s), rootAttrs(s)), noop
	}
}

func (ss *ShapeSerializer) WriteInt8(s *smithy.Schema, v int8)   { ss.writeLong(s, int64(v)) }
func (ss *ShapeSerializer) WriteInt16(s *smithy.Schema, v int16) { ss.writeLong(s, int64(v)) }
func (ss *ShapeSerializer) WriteInt32(s *smithy.Schema, v int32) { ss.writeLong(s, int64(v)) }
func (ss *ShapeSerializer) WriteInt64(s *smithy.Schema, v int64) { ss.writeLong(s, v) }

func (ss *ShapeSerializer) writeLong(s *smithy.Schema, v int64) {
	val, done := ss.openValue(s)
	val.Long(v)
	done()
}

func (ss *ShapeSerializer) WriteInt8Ptr(s *smithy.Schema, v *int8) {
	if v != nil {
		ss.WriteInt8(s, *v)
	}
}

func (ss *ShapeSerializer) WriteInt16Ptr(s *smithy.Schema, v *int16) {
	if v != nil {
		ss.WriteInt16(s, *v)
	}
}

func (ss *ShapeSerializer) WriteInt32Ptr(s *smithy.Schema, v *int32) {
	if v != nil {
		ss.WriteInt32(s, *v)
	}
}

func (ss *ShapeSerializer) WriteInt64Ptr(s *smithy.Schema, v *int64) {
	if v != nil {
		ss.WriteInt64(s, *v)
	}
}

func (ss *ShapeSerializer) WriteFloat32(s *smithy.Schema, v float32) {
	val, done := ss.openValue(s)
	val.Float(v)
	done()
}

func (ss *ShapeSerializer) WriteFloat64(s *smithy.Schema, v float64) {
	val, done := ss.openValue(s)
	val.Double(v)
	done()
}

func (ss *ShapeSerializer) WriteFloat32Ptr(s *smithy.Schema, v *float32) {
	if v != nil {
		ss.WriteFloat32(s, *v)
	}
}

func (ss *ShapeSerializer) WriteFloat64Ptr(s *smithy.Schema, v *float64) {
	if v != nil {
		ss.WriteFloat64(s, *v)
	}
}

func (ss *ShapeSerializer) WriteBool(s *smithy.Schema, v bool) {
	val, done := ss.openValue(s)
	val.Boolean(v)
	done()
}

func (ss *ShapeSerializer) WriteBoolPtr(s *smithy.Schema, v *bool) {
	if v != nil {
		ss.WriteBool(s, *v)
	}
}

func (ss *ShapeSerializer) WriteString(s *smithy.Schema, v string) {
	val, done := ss.openValue(s)
	val.String(v)
	done()
}

func (ss *ShapeSerializer) WriteStringPtr(s *smithy.Schema, v *string) {
	if v != nil {
		ss.WriteString(s, *v)
	}
}

func (ss *ShapeSerializer) WriteBigInteger(s *smithy.Schema, v big.Int) {
	val, done := ss.openValue(s)
	val.BigInteger(&v)
	done()
}

func (ss *ShapeSerializer) WriteBigDecimal(s *smithy.Schema, v big.Float) {
	val, done := ss.openValue(s)
	val.BigDecimal(&v)
	done()
}

func (ss *ShapeSerializer) WriteBlob(s *smithy.Schema, v []byte) {
	val, done := ss.openValue(s)
	val.Base64EncodeBytes(v)
	done()
}

func (ss *ShapeSerializer) WriteTime(s *smithy.Schema, v time.Time) {
	val, done := ss.openValue(s)
	format := "date-time"
	if tf, ok := smithy.SchemaTrait[*traits.TimestampFormat](s); ok {
		format = tf.Format
	}
	switch format {
	case "http-date":
		val.String(smithytime.FormatHTTPDate(v))
	case "epoch-seconds":
		val.Double(smithytime.FormatEpochSeconds(v))
	default:
		val.String(smithytime.FormatDateTime(v))
	}
	done()
}

func (ss *ShapeSerializer) WriteTimePtr(s *smithy.Schema, v *time.Time) {
	if v != nil {
		ss.WriteTime(s, *v)
	}
}

func (ss *ShapeSerializer) WriteStruct(s *smithy.Schema, v smithy.Serializable) {
	if v == nil {
		return
	}
	val, done := ss.openValue(s)
	obj := val.NestedElement()
	ss.head.Push(obj)
	v.Serialize(ss)
	ss.head.Pop()
	obj.Close()
	done()
}

// WriteUnion writes the single active variant as a child element of the
// union's own wrapping element, matching how restXml unions are modeled:
// the union's member name labels the container, the variant's member name
// labels its one child.
func (ss *ShapeSerializer) WriteUnion(s, variant *smithy.Schema, v smithy.Serializable) {
	val, done := ss.openValue(s)
	obj := val.NestedElement()
	ss.head.Push(obj)
	ss.head.Push(obj.Key(elementName(variant), nil))
	v.Serialize(ss)
	ss.head.Pop()
	obj.Close()
	done()
}

// WriteDocument has no restXml representation; document shapes don't occur
// in XML-protocol services and this is never called by generated code for
// them.
func (ss *ShapeSerializer) WriteDocument(s *smithy.Schema, v smithy.Document2) {
	panic(fmt.Sprintf("xmlshape: document shapes are not supported in XML protocols (member %s)", s.ID.Member))
}

func (ss *ShapeSerializer) WriteNil(s *smithy.Schema) {
	val, done := ss.openValue(s)
	val.Null()
	done()
}

func (ss *ShapeSerializer) WriteList(s *smithy.Schema) {
	val, done := ss.openValue(s)
	var arr *smithyxml.Array
	if _, ok := smithy.SchemaTrait[*traits.XMLFlattened](s); ok {
		arr = val.FlattenedArray()
	} else {
		arr = val.Array()
	}
	ss.head.Push(&listFrame{arr: arr, done: done})
}

func (ss *ShapeSerializer) CloseList() {
	f, ok := ss.head.Top().(*listFrame)
	if !ok {
		return
	}
	f.arr.Close()
	ss.head.Pop()
	f.done()
}

func (ss *ShapeSerializer) WriteMap(s *smithy.Schema) {
	val, done := ss.openValue(s)
	var m *smithyxml.Map
	if _, ok := smithy.SchemaTrait[*traits.XMLFlattened](s); ok {
		m = val.FlattenedMap()
	} else {
		m = val.Map()
	}
	ss.head.Push(&mapFrame{m: m, done: done})
}

func (ss *ShapeSerializer) WriteKey(s *smithy.Schema, key string) {
	f, ok := ss.head.Top().(*mapFrame)
	if !ok {
		return
	}
	entry := f.m.Entry()
	entry.Key("key", nil).String(key)
	ss.head.Push(&mapEntry{entry: entry, value: entry.Key("value", nil)})
}

func (ss *ShapeSerializer) CloseMap() {
	f, ok := ss.head.Top().(*mapFrame)
	if !ok {
		return
	}
	f.m.Close()
	ss.head.Pop()
	f.done()
}

type stack struct {
	values []any
}

func (s *stack) Top() any {
	if len(s.values) == 0 {
		return nil
	}
	return s.values[len(s.values)-1]
}

func (s *stack) Push(v any) {
	s.values = append(s.values, v)
}

func (s *stack) Pop() {
	s.values = s.values[:len(s.values)-1]
}

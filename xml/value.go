package xml

import (
	"encoding/base64"
	"math"
	"math/big"
	"strconv"
)

// Value represents an XML Value type
// XML Value types: Object, Array, Map, String, Number, Boolean, and Null.
//
// A zero Value (start == end == nil) writes no surrounding element tag,
// used for top-level scalar encoding and in tests that probe the raw
// content encoding in isolation.
type Value struct {
	w       writer
	scratch *[]byte

	start *StartElement
	end   *EndElement
}

// newValue returns a new Value encoder
func newValue(w writer, scratch *[]byte, start *StartElement, end *EndElement) Value {
	return Value{w: w, scratch: scratch, start: start, end: end}
}

func (jv Value) openTag() {
	writeStartElement(jv.w, jv.start)
}

func (jv Value) closeTag() {
	writeEndElement(jv.w, jv.end)
}

// String encodes v as a XML string.
// It will auto close the xml element tag.
func (jv Value) String(v string) {
	jv.openTag()
	escapeString(jv.w, v)
	jv.closeTag()
}

// Byte encodes v as a XML number
func (jv Value) Byte(v int8) {
	jv.Long(int64(v))
}

// Short encodes v as a XML number
func (jv Value) Short(v int16) {
	jv.Long(int64(v))
}

// Integer encodes v as a XML number
func (jv Value) Integer(v int32) {
	jv.Long(int64(v))
}

// Long encodes v as a XML number.
// It will auto close the xml element tag.
func (jv Value) Long(v int64) {
	jv.openTag()

	*jv.scratch = strconv.AppendInt((*jv.scratch)[:0], v, 10)
	jv.w.Write(*jv.scratch)

	jv.closeTag()
}

// Float encodes v as a XML number.
// It will auto close the xml element tag.
func (jv Value) Float(v float32) {
	jv.openTag()
	jv.float(float64(v), 32)
	jv.closeTag()
}

// Double encodes v as a XML number.
// It will auto close the xml element tag.
func (jv Value) Double(v float64) {
	jv.openTag()
	jv.float(v, 64)
	jv.closeTag()
}

func (jv Value) float(v float64, bits int) {
	*jv.scratch = encodeFloat(v, bits)
	jv.w.Write(*jv.scratch)
}

// Boolean encodes v as a XML boolean.
// It will auto close the xml element tag.
func (jv Value) Boolean(v bool) {
	jv.openTag()

	*jv.scratch = strconv.AppendBool((*jv.scratch)[:0], v)
	jv.w.Write(*jv.scratch)

	jv.closeTag()
}

// Base64EncodeBytes writes v as a base64 value in XML string.
// It will auto close the xml element tag.
func (jv Value) Base64EncodeBytes(v []byte) {
	jv.openTag()
	encodeByteSlice(jv.w, (*jv.scratch)[:0], v)
	jv.closeTag()
}

// BigInteger encodes v big.Int as XML value.
// It will auto close the xml element tag.
func (jv Value) BigInteger(v *big.Int) {
	jv.openTag()
	jv.w.Write([]byte(v.Text(10)))
	jv.closeTag()
}

// BigDecimal encodes v big.Float as XML value.
// It will auto close the xml element tag.
func (jv Value) BigDecimal(v *big.Float) {
	if i, accuracy := v.Int64(); accuracy == big.Exact {
		jv.Long(i)
		return
	}

	jv.openTag()
	jv.w.Write([]byte(v.Text('e', -1)))
	jv.closeTag()
}

// Null encodes a null element tag like <root></root>.
// It will auto close the xml element tag.
func (jv Value) Null() {
	jv.openTag()
	jv.closeTag()
}

// Write writes v directly to the xml document
// if escapeXMLText is set to true, write will escape text.
// It will auto close the xml element tag.
func (jv Value) Write(v []byte, escapeXMLText bool) {
	jv.openTag()

	if escapeXMLText {
		escapeText(jv.w, v)
	} else {
		jv.w.Write(v)
	}

	jv.closeTag()
}

// NestedElement opens jv's own element tag and returns an Object used to
// encode its children; the Object's Close writes jv's closing tag.
func (jv Value) NestedElement() *Object {
	jv.openTag()
	return newObject(jv.w, jv.scratch, jv.end)
}

// Array opens jv's own element tag and returns an Array encoder whose
// members are wrapped in a default `<member>` element; Close writes jv's
// closing tag.
func (jv Value) Array() *Array {
	jv.openTag()
	return newArray(jv.w, jv.scratch, jv.end, arrayMemberWrapper)
}

// ArrayWithCustomName is like Array but wraps each member in name instead
// of the default `member` element.
func (jv Value) ArrayWithCustomName(name string) *Array {
	jv.openTag()
	return newArray(jv.w, jv.scratch, jv.end, name)
}

// FlattenedArray returns an Array encoder that does not write jv's own
// element tag; instead every member repeats jv's element name, flattening
// the list into the parent element.
func (jv Value) FlattenedArray() *Array {
	return newFlattenedArray(jv.w, jv.scratch, jv.start, jv.end)
}

// Map opens jv's own element tag and returns a Map encoder whose entries
// are wrapped in a default `<entry>` element; Close writes jv's closing
// tag.
func (jv Value) Map() *Map {
	jv.openTag()
	return newMap(jv.w, jv.scratch, jv.end)
}

// FlattenedMap is the map analog of FlattenedArray: entries repeat jv's
// own element name instead of a nested map wrapper.
func (jv Value) FlattenedMap() *Map {
	return newFlattenedMap(jv.w, jv.scratch, jv.start, jv.end)
}

// encodeFloat formats a float the way the stdlib xml encoder does.
func encodeFloat(v float64, bits int) []byte {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		panic("xml: invalid float value: " + strconv.FormatFloat(v, 'g', -1, bits))
	}
	return []byte(strconv.FormatFloat(v, 'g', -1, bits))
}

// encodeByteSlice is a modified copy of the JSON encoder's byte-slice
// encoder, used to base64 encode a byte slice directly into w.
func encodeByteSlice(w writer, scratch []byte, v []byte) {
	if v == nil {
		return
	}

	encodedLen := base64.StdEncoding.EncodedLen(len(v))
	if encodedLen <= len(scratch) {
		dst := scratch[:encodedLen]
		base64.StdEncoding.Encode(dst, v)
		w.Write(dst)
	} else if encodedLen <= 1024 {
		dst := make([]byte, encodedLen)
		base64.StdEncoding.Encode(dst, v)
		w.Write(dst)
	} else {
		enc := base64.NewEncoder(base64.StdEncoding, w)
		enc.Write(v)
		enc.Close()
	}
}

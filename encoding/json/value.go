package json

import (
	"encoding/base64"
	"math"
	"strconv"
)

// Value represents a single JSON value position: a string, number, boolean,
// null, or the start of a nested object/array.
type Value struct {
	w writer
}

// newValue returns a new Value encoder.
func newValue(w writer) Value {
	return Value{w: w}
}

// String encodes v as a JSON string.
func (jv Value) String(v string) {
	escapeStringBytes(jv.w, v)
}

// Byte encodes v as a JSON number.
func (jv Value) Byte(v int8) {
	jv.Long(int64(v))
}

// Short encodes v as a JSON number.
func (jv Value) Short(v int16) {
	jv.Long(int64(v))
}

// Integer encodes v as a JSON number.
func (jv Value) Integer(v int32) {
	jv.Long(int64(v))
}

// Long encodes v as a JSON number.
func (jv Value) Long(v int64) {
	jv.w.WriteString(strconv.FormatInt(v, 10))
}

// Float encodes v as a JSON number per the rules in Double.
func (jv Value) Float(v float32) {
	jv.float(float64(v), 32)
}

// Double encodes v as a JSON number. NaN and +/-Infinity, which JSON cannot
// represent, are written as the quoted strings the AWS JSON/REST-JSON
// protocols use for them.
func (jv Value) Double(v float64) {
	jv.float(v, 64)
}

func (jv Value) float(v float64, bits int) {
	switch {
	case math.IsNaN(v):
		jv.String("NaN")
	case math.IsInf(v, 1):
		jv.String("Infinity")
	case math.IsInf(v, -1):
		jv.String("-Infinity")
	default:
		jv.w.WriteString(strconv.FormatFloat(v, 'g', -1, bits))
	}
}

// Boolean encodes v as a JSON boolean.
func (jv Value) Boolean(v bool) {
	jv.w.WriteString(strconv.FormatBool(v))
}

// Null encodes a JSON null.
func (jv Value) Null() {
	jv.w.WriteString("null")
}

// Base64EncodeBytes writes v as a base64-encoded JSON string.
func (jv Value) Base64EncodeBytes(v []byte) {
	if v == nil {
		jv.Null()
		return
	}

	jv.w.WriteRune('"')
	enc := base64.NewEncoder(base64.StdEncoding, jv.w)
	enc.Write(v)
	enc.Close()
	jv.w.WriteRune('"')
}

// Write writes v directly to the document without quoting or escaping,
// used for values that are already valid encoded JSON (e.g. a pre-rendered
// document type).
func (jv Value) Write(v []byte) {
	jv.w.Write(v)
}

// Object starts a nested JSON object and returns its encoder.
func (jv Value) Object() *Object {
	return newObject(jv.w)
}

// Array starts a nested JSON array and returns its encoder.
func (jv Value) Array() *Array {
	return newArray(jv.w)
}

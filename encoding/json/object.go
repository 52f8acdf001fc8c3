package json

// Object represents the encoding of a JSON object.
type Object struct {
	w          writer
	writeComma bool
}

// newObject returns a new object encoder, writing the opening `{`.
func newObject(w writer) *Object {
	w.WriteRune('{')
	return &Object{w: w}
}

// Key returns a Value encoder for the named member. Key may be called
// repeatedly; a separating comma is written automatically.
func (o *Object) Key(name string) Value {
	if o.writeComma {
		o.w.WriteRune(',')
	}
	o.writeComma = true

	escapeStringBytes(o.w, name)
	o.w.WriteRune(':')

	return newValue(o.w)
}

// Close writes the object's closing `}`.
func (o *Object) Close() {
	o.w.WriteRune('}')
}

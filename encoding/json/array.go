package json

// Array represents the encoding of a JSON array.
type Array struct {
	w          writer
	writeComma bool
}

// newArray returns a new array encoder, writing the opening `[`.
func newArray(w writer) *Array {
	w.WriteRune('[')
	return &Array{w: w}
}

// Value returns a Value encoder for the next array element. Value may be
// called repeatedly; a separating comma is written automatically.
func (a *Array) Value() Value {
	if a.writeComma {
		a.w.WriteRune(',')
	}
	a.writeComma = true

	return newValue(a.w)
}

// Close writes the array's closing `]`.
func (a *Array) Close() {
	a.w.WriteRune(']')
}

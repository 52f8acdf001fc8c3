package xmlshape

import (
	"bytes"
	"encoding/base64"
	encxml "encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/smithygen/smithy-codegen"
	"github.com/smithygen/smithy-codegen/traits"
)

// ShapeDeserializer implements unmarshaling of XML into Smithy shapes. It
// reads off the standard library's token-level decoder rather than
// buffering a DOM, so elements unknown to the target schema are skipped
// rather than collected.
//
// Known limitation: a union variant's own wrapping element is left
// unconsumed once its value has been read, same as the JSON codec. This is
// harmless when the union is the last (or only) thing read at its nesting
// level, which covers the common case of a union as a top-level operation
// output or a struct's final member; a union with trailing sibling content
// after it would desync the reader.
type ShapeDeserializer struct {
	dec  *encxml.Decoder
	head stack

	// pending holds a StartElement already consumed off the wire (by
	// ReadStructMember, ReadListItem, or ReadMapKey) whose corresponding
	// Read* call hasn't run yet. consumeStart hands it back instead of
	// reading a new token.
	pending *encxml.StartElement

	// entryOpen is true between ReadMapKey returning a key and the next
	// call to ReadMapKey, marking that the current <entry>'s closing tag
	// still needs to be consumed first.
	entryOpen bool
}

var _ smithy.ShapeDeserializer = (*ShapeDeserializer)(nil)

// NewShapeDeserializer returns a deserializer reading from p.
func NewShapeDeserializer(p []byte) *ShapeDeserializer {
	return &ShapeDeserializer{dec: encxml.NewDecoder(bytes.NewReader(p))}
}

func (d *ShapeDeserializer) consumeStart() (encxml.StartElement, error) {
	if d.pending != nil {
		t := *d.pending
		d.pending = nil
		return t, nil
	}
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return encxml.StartElement{}, err
		}
		if se, ok := tok.(encxml.StartElement); ok {
			return se, nil
		}
	}
}

func (d *ShapeDeserializer) nextStart() (encxml.StartElement, error) {
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return encxml.StartElement{}, err
		}
		if se, ok := tok.(encxml.StartElement); ok {
			return se, nil
		}
	}
}

// readText consumes the CharData content of the element whose start tag
// was already consumed (via consumeStart), up to and including its
// matching EndElement.
func (d *ShapeDeserializer) readText() (string, error) {
	if _, err := d.consumeStart(); err != nil {
		return "", err
	}
	var sb strings.Builder
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case encxml.CharData:
			sb.Write(t)
		case encxml.EndElement:
			return sb.String(), nil
		}
	}
}

// skip discards an entire subtree whose opening StartElement has already
// been consumed.
func (d *ShapeDeserializer) skip() error {
	depth := 1
	for depth > 0 {
		tok, err := d.dec.Token()
		if err != nil {
			return err
		}
		switch tok.(type) {
		case encxml.StartElement:
			depth++
		case encxml.EndElement:
			depth--
		}
	}
	return nil
}

func lookupMember(parent *smithy.Schema, name string) *smithy.Schema {
	for _, m := range parent.Members {
		if n, ok := smithy.SchemaTrait[*traits.XMLName](m); ok {
			if n.Name == name {
				return m
			}
			continue
		}
		if m.ID.Member == name {
			return m
		}
	}
	return nil
}

func (d *ShapeDeserializer) ReadInt8(s *smithy.Schema, v *int8) error {
	n, err := d.readInt(8)
	*v = int8(n)
	return err
}

func (d *ShapeDeserializer) ReadInt16(s *smithy.Schema, v *int16) error {
	n, err := d.readInt(16)
	*v = int16(n)
	return err
}

func (d *ShapeDeserializer) ReadInt32(s *smithy.Schema, v *int32) error {
	n, err := d.readInt(32)
	*v = int32(n)
	return err
}

func (d *ShapeDeserializer) ReadInt64(s *smithy.Schema, v *int64) error {
	n, err := d.readInt(64)
	*v = n
	return err
}

func (d *ShapeDeserializer) readInt(bits int) (int64, error) {
	str, err := d.readText()
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(str, 10, bits)
}

func (d *ShapeDeserializer) ReadInt8Ptr(s *smithy.Schema, v **int8) error {
	if *v == nil {
		*v = new(int8)
	}
	return d.ReadInt8(s, *v)
}

func (d *ShapeDeserializer) ReadInt16Ptr(s *smithy.Schema, v **int16) error {
	if *v == nil {
		*v = new(int16)
	}
	return d.ReadInt16(s, *v)
}

func (d *ShapeDeserializer) ReadInt32Ptr(s *smithy.Schema, v **int32) error {
	if *v == nil {
		*v = new(int32)
	}
	return d.ReadInt32(s, *v)
}

func (d *ShapeDeserializer) ReadInt64Ptr(s *smithy.Schema, v **int64) error {
	if *v == nil {
		*v = new(int64)
	}
	return d.ReadInt64(s, *v)
}

func (d *ShapeDeserializer) ReadFloat32(s *smithy.Schema, v *float32) error {
	n, err := d.readFloat(32)
	*v = float32(n)
	return err
}

func (d *ShapeDeserializer) ReadFloat64(s *smithy.Schema, v *float64) error {
	n, err := d.readFloat(64)
	*v = n
	return err
}

func (d *ShapeDeserializer) readFloat(bits int) (float64, error) {
	str, err := d.readText()
	if err != nil {
		return 0, err
	}
	switch strings.ToLower(str) {
	case "nan":
		return strconv.ParseFloat("NaN", bits)
	case "infinity":
		return strconv.ParseFloat("+Inf", bits)
	case "-infinity":
		return strconv.ParseFloat("-Inf", bits)
	}
	return strconv.ParseFloat(str, bits)
}

func (d *ShapeDeserializer) ReadFloat32Ptr(s *smithy.Schema, v **float32) error {
	if *v == nil {
		*v = new(float32)
	}
	return d.ReadFloat32(s, *v)
}

func (d *ShapeDeserializer) ReadFloat64Ptr(s *smithy.Schema, v **float64) error {
	if *v == nil {
		*v = new(float64)
	}
	return d.ReadFloat64(s, *v)
}

func (d *ShapeDeserializer) ReadBool(s *smithy.Schema, v *bool) error {
	str, err := d.readText()
	if err != nil {
		return err
	}
	b, err := strconv.ParseBool(str)
	*v = b
	return err
}

func (d *ShapeDeserializer) ReadBoolPtr(s *smithy.Schema, v **bool) error {
	if *v == nil {
		*v = new(bool)
	}
	return d.ReadBool(s, *v)
}

func (d *ShapeDeserializer) ReadString(s *smithy.Schema, v *string) error {
	str, err := d.readText()
	*v = str
	return err
}

func (d *ShapeDeserializer) ReadStringPtr(s *smithy.Schema, v **string) error {
	if *v == nil {
		*v = new(string)
	}
	return d.ReadString(s, *v)
}

func (d *ShapeDeserializer) ReadBlob(s *smithy.Schema, v *[]byte) error {
	str, err := d.readText()
	if err != nil {
		return err
	}
	b, err := base64.StdEncoding.DecodeString(str)
	if err != nil {
		return fmt.Errorf("decode base64 blob: %w", err)
	}
	*v = b
	return nil
}

func (d *ShapeDeserializer) ReadTime(s *smithy.Schema, v *time.Time) error {
	format := "date-time"
	if tf, ok := smithy.SchemaTrait[*traits.TimestampFormat](s); ok {
		format = tf.Format
	}

	str, err := d.readText()
	if err != nil {
		return err
	}

	switch format {
	case "http-date":
		t, err := time.Parse(time.RFC1123, str)
		if err != nil {
			return fmt.Errorf("parse http-date timestamp: %w", err)
		}
		*v = t
	case "epoch-seconds":
		n, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return fmt.Errorf("parse epoch-seconds timestamp: %w", err)
		}
		secs := int64(n)
		nanos := int64((n - float64(secs)) * float64(time.Second))
		*v = time.Unix(secs, nanos).UTC()
	default:
		t, err := time.Parse(time.RFC3339, str)
		if err != nil {
			return fmt.Errorf("parse date-time timestamp: %w", err)
		}
		*v = t
	}
	return nil
}

func (d *ShapeDeserializer) ReadTimePtr(s *smithy.Schema, v **time.Time) error {
	if *v == nil {
		*v = new(time.Time)
	}
	return d.ReadTime(s, *v)
}

// ReadDocument has no restXml representation; see WriteDocument.
func (d *ShapeDeserializer) ReadDocument(s *smithy.Schema, v *smithy.Document2) error {
	return fmt.Errorf("xmlshape: document shapes are not supported in XML protocols (member %s)", s.ID.Member)
}

func (d *ShapeDeserializer) ReadList(s *smithy.Schema) error {
	if _, err := d.consumeStart(); err != nil {
		return err
	}
	d.head.Push(s)
	return nil
}

func (d *ShapeDeserializer) ReadListItem(s *smithy.Schema) (bool, error) {
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return false, err
		}
		switch t := tok.(type) {
		case encxml.EndElement:
			d.head.Pop()
			return false, nil
		case encxml.StartElement:
			d.pending = &t
			return true, nil
		}
	}
}

func (d *ShapeDeserializer) ReadMap(s *smithy.Schema) error {
	if _, err := d.consumeStart(); err != nil {
		return err
	}
	d.head.Push(s)
	return nil
}

func (d *ShapeDeserializer) ReadMapKey(s *smithy.Schema) (string, bool, error) {
	if d.entryOpen {
		// consume the previous entry's </entry>
		for {
			tok, err := d.dec.Token()
			if err != nil {
				return "", false, err
			}
			if _, ok := tok.(encxml.EndElement); ok {
				break
			}
		}
		d.entryOpen = false
	}

	for {
		tok, err := d.dec.Token()
		if err != nil {
			return "", false, err
		}
		switch tok.(type) {
		case encxml.EndElement:
			d.head.Pop()
			return "", false, nil
		case encxml.StartElement: // <entry>
			key, err := d.readEntryKey()
			if err != nil {
				return "", false, err
			}
			d.entryOpen = true
			return key, true, nil
		}
	}
}

func (d *ShapeDeserializer) readEntryKey() (string, error) {
	if _, err := d.nextStart(); err != nil { // <key>
		return "", err
	}
	var sb strings.Builder
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case encxml.CharData:
			sb.Write(t)
		case encxml.EndElement:
			goto doneKey
		}
	}
doneKey:
	se, err := d.nextStart() // <value>
	if err != nil {
		return "", err
	}
	d.pending = &se
	return sb.String(), nil
}

func (d *ShapeDeserializer) ReadStruct(s *smithy.Schema) error {
	if _, err := d.consumeStart(); err != nil {
		return err
	}
	d.head.Push(s)
	return nil
}

func (d *ShapeDeserializer) ReadStructMember() (*smithy.Schema, error) {
	schema, ok := d.head.Top().(*smithy.Schema)
	if !ok {
		return nil, fmt.Errorf("ReadStructMember called without ReadStruct?")
	}

	for {
		tok, err := d.dec.Token()
		if err != nil {
			if err == io.EOF {
				d.head.Pop()
				return nil, nil
			}
			return nil, err
		}

		switch t := tok.(type) {
		case encxml.EndElement:
			d.head.Pop()
			return nil, nil
		case encxml.StartElement:
			member := lookupMember(schema, t.Name.Local)
			if member == nil {
				if err := d.skip(); err != nil {
					return nil, err
				}
				continue
			}
			d.pending = &t
			return member, nil
		}
	}
}

func (d *ShapeDeserializer) ReadUnion(s *smithy.Schema) (*smithy.Schema, error) {
	if _, err := d.consumeStart(); err != nil {
		return nil, err
	}

	t, err := d.nextStart()
	if err != nil {
		return nil, err
	}

	member := lookupMember(s, t.Name.Local)
	if member == nil {
		return nil, fmt.Errorf("xmlshape: unknown union variant %q", t.Name.Local)
	}
	d.pending = &t
	return member, nil
}

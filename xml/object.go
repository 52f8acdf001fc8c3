package xml

import "strings"

// Object represents the encoding of structured data within an XML node.
// Its own wrapping element tag (if any) was already written by whatever
// produced it (a Value's NestedElement, or a Map's Entry); Close writes
// the matching end tag.
type Object struct {
	w       writer
	scratch *[]byte

	endElement *EndElement
}

// newObject returns a new object encoder type.
func newObject(w writer, scratch *[]byte, endElement *EndElement) *Object {
	return &Object{w: w, scratch: scratch, endElement: endElement}
}

// Key returns a Value encoder for a new named child element. A name
// containing a colon (`prefix:local`) is split into an explicit namespace
// and local name, matching the xmlName+xmlNamespace trait combination.
func (o *Object) Key(name string, attr *[]Attr) Value {
	var space string
	if strings.ContainsRune(name, ':') {
		ns := strings.SplitN(name, ":", 2)
		space = ns[0]
		name = ns[1]
	}

	var attrs []Attr
	if attr != nil {
		attrs = *attr
	}

	start := StartElement{
		Name: Name{Space: space, Local: name},
		Attr: attrs,
	}
	end := start.End()

	return newValue(o.w, o.scratch, &start, &end)
}

// Close writes the object's own closing element tag.
func (o *Object) Close() {
	writeEndElement(o.w, o.endElement)
}

/*
TagMetadata represents the metadata required when building the
xml element tag.

Namespaces are stored as key value pairs in a map where Namespace URI is the key,
and the namespace prefix corresponds to the value. The namespace prefix can be empty,
whereas namespace URI is required if a namespace is set.

Attributes are stored as key value pairs in a map where Attribute name is the key,
and Attribute value corresponds to the value.

This is in accordance to https://awslabs.github.io/smithy/1.0/spec/core/xml-traits.html#xmlattribute-trait
*/
type TagMetadata struct {
	Namespaces map[string]string
	Attributes map[string]string
}

package xmlshape

import (
	"github.com/smithygen/smithy-codegen"
)

// Codec is the shared XML codec used by the restXml protocol.
type Codec struct{}

var _ smithy.Codec = (*Codec)(nil)

// Serializer returns an XML shape serializer.
func (c *Codec) Serializer() smithy.ShapeSerializer {
	return NewShapeSerializer()
}

// Deserializer returns an XML shape deserializer.
func (c *Codec) Deserializer(p []byte) smithy.ShapeDeserializer {
	return NewShapeDeserializer(p)
}

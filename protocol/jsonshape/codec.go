package jsonshape

import (
	"github.com/smithygen/smithy-codegen"
)

// Codec is the shared JSON codec used by the awsjson and restjson protocols.
type Codec struct{}

var _ smithy.Codec = (*Codec)(nil)

// Serializer returns a JSON shape serializer.
func (c *Codec) Serializer() smithy.ShapeSerializer {
	return NewShapeSerializer()
}

// Deserializer returns a JSON shape deserializer.
func (c *Codec) Deserializer(p []byte) smithy.ShapeDeserializer {
	return NewShapeDeserializer(p)
}

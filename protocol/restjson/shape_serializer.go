package restjson

import (
	"math/big"
	"time"

	"github.com/smithygen/smithy-codegen"
	"github.com/smithygen/smithy-codegen/protocol/httpbinding"
	"github.com/smithygen/smithy-codegen/protocol/jsonshape"
	"github.com/smithygen/smithy-codegen/traits"
	smithyhttp "github.com/smithygen/smithy-codegen/transport/http"
)

// shapeSerializer fans each member out to either the HTTP binding serializer
// (headers, query, labels) or the JSON body serializer, based on which
// binding trait, if any, the member's schema carries. Members with no
// binding trait always fall to the body.
type shapeSerializer struct {
	binding *httpbinding.ShapeSerializer
	body    *jsonshape.ShapeSerializer
}

var _ smithy.ShapeSerializer = (*shapeSerializer)(nil)

func newShapeSerializer(req *smithyhttp.Request) *shapeSerializer {
	return &shapeSerializer{
		binding: httpbinding.New(req),
		body:    jsonshape.NewShapeSerializer(),
	}
}

func (s *shapeSerializer) Labels() map[string]string {
	return s.binding.Labels()
}

func (s *shapeSerializer) Bytes() []byte {
	return s.body.Bytes()
}

func isBound(schema *smithy.Schema) bool {
	if _, ok := smithy.SchemaTrait[*traits.HTTPHeader](schema); ok {
		return true
	}
	if _, ok := smithy.SchemaTrait[*traits.HTTPQuery](schema); ok {
		return true
	}
	if _, ok := smithy.SchemaTrait[*traits.HTTPLabel](schema); ok {
		return true
	}
	if _, ok := smithy.SchemaTrait[*traits.HTTPPrefixHeaders](schema); ok {
		return true
	}
	return false
}

func (s *shapeSerializer) WriteInt8(schema *smithy.Schema, v int8) {
	if isBound(schema) {
		s.binding.WriteInt8(schema, v)
		return
	}
	s.body.WriteInt8(schema, v)
}

func (s *shapeSerializer) WriteInt16(schema *smithy.Schema, v int16) {
	if isBound(schema) {
		s.binding.WriteInt16(schema, v)
		return
	}
	s.body.WriteInt16(schema, v)
}

func (s *shapeSerializer) WriteInt32(schema *smithy.Schema, v int32) {
	if isBound(schema) {
		s.binding.WriteInt32(schema, v)
		return
	}
	s.body.WriteInt32(schema, v)
}

func (s *shapeSerializer) WriteInt64(schema *smithy.Schema, v int64) {
	if isBound(schema) {
		s.binding.WriteInt64(schema, v)
		return
	}
	s.body.WriteInt64(schema, v)
}

func (s *shapeSerializer) WriteInt8Ptr(schema *smithy.Schema, v *int8) {
	if v != nil {
		s.WriteInt8(schema, *v)
	}
}

func (s *shapeSerializer) WriteInt16Ptr(schema *smithy.Schema, v *int16) {
	if v != nil {
		s.WriteInt16(schema, *v)
	}
}

func (s *shapeSerializer) WriteInt32Ptr(schema *smithy.Schema, v *int32) {
	if v != nil {
		s.WriteInt32(schema, *v)
	}
}

func (s *shapeSerializer) WriteInt64Ptr(schema *smithy.Schema, v *int64) {
	if v != nil {
		s.WriteInt64(schema, *v)
	}
}

func (s *shapeSerializer) WriteFloat32(schema *smithy.Schema, v float32) {
	if isBound(schema) {
		s.binding.WriteFloat32(schema, v)
		return
	}
	s.body.WriteFloat32(schema, v)
}

func (s *shapeSerializer) WriteFloat64(schema *smithy.Schema, v float64) {
	if isBound(schema) {
		s.binding.WriteFloat64(schema, v)
		return
	}
	s.body.WriteFloat64(schema, v)
}

func (s *shapeSerializer) WriteFloat32Ptr(schema *smithy.Schema, v *float32) {
	if v != nil {
		s.WriteFloat32(schema, *v)
	}
}

func (s *shapeSerializer) WriteFloat64Ptr(schema *smithy.Schema, v *float64) {
	if v != nil {
		s.WriteFloat64(schema, *v)
	}
}

func (s *shapeSerializer) WriteBool(schema *smithy.Schema, v bool) {
	if isBound(schema) {
		s.binding.WriteBool(schema, v)
		return
	}
	s.body.WriteBool(schema, v)
}

func (s *shapeSerializer) WriteBoolPtr(schema *smithy.Schema, v *bool) {
	if v != nil {
		s.WriteBool(schema, *v)
	}
}

func (s *shapeSerializer) WriteString(schema *smithy.Schema, v string) {
	if isBound(schema) {
		s.binding.WriteString(schema, v)
		return
	}
	s.body.WriteString(schema, v)
}

func (s *shapeSerializer) WriteStringPtr(schema *smithy.Schema, v *string) {
	if v != nil {
		s.WriteString(schema, *v)
	}
}

func (s *shapeSerializer) WriteBigInteger(schema *smithy.Schema, v big.Int) {
	if isBound(schema) {
		s.binding.WriteBigInteger(schema, v)
		return
	}
	s.body.WriteBigInteger(schema, v)
}

func (s *shapeSerializer) WriteBigDecimal(schema *smithy.Schema, v big.Float) {
	if isBound(schema) {
		s.binding.WriteBigDecimal(schema, v)
		return
	}
	s.body.WriteBigDecimal(schema, v)
}

func (s *shapeSerializer) WriteBlob(schema *smithy.Schema, v []byte) {
	if isBound(schema) {
		s.binding.WriteBlob(schema, v)
		return
	}
	s.body.WriteBlob(schema, v)
}

func (s *shapeSerializer) WriteTime(schema *smithy.Schema, v time.Time) {
	if isBound(schema) {
		s.binding.WriteTime(schema, v)
		return
	}
	s.body.WriteTime(schema, v)
}

func (s *shapeSerializer) WriteTimePtr(schema *smithy.Schema, v *time.Time) {
	if v != nil {
		s.WriteTime(schema, *v)
	}
}

// WriteStruct always goes to the body: a struct member can only become the
// literal HTTP payload via the httpPayload trait, which replaces the normal
// enveloped body rather than routing through a header or query binding.
func (s *shapeSerializer) WriteStruct(schema *smithy.Schema, v smithy.Serializable) {
	s.body.WriteStruct(schema, v)
}

func (s *shapeSerializer) WriteUnion(schema, variant *smithy.Schema, v smithy.Serializable) {
	s.body.WriteUnion(schema, variant, v)
}

func (s *shapeSerializer) WriteDocument(schema *smithy.Schema, v smithy.Document2) {
	s.body.WriteDocument(schema, v)
}

func (s *shapeSerializer) WriteNil(schema *smithy.Schema) {
	if isBound(schema) {
		return
	}
	s.body.WriteNil(schema)
}

func (s *shapeSerializer) WriteList(schema *smithy.Schema) {
	s.body.WriteList(schema)
}

func (s *shapeSerializer) CloseList() {
	s.body.CloseList()
}

func (s *shapeSerializer) WriteMap(schema *smithy.Schema) {
	if _, ok := smithy.SchemaTrait[*traits.HTTPQueryParams](schema); ok {
		return
	}
	s.body.WriteMap(schema)
}

func (s *shapeSerializer) WriteKey(schema *smithy.Schema, key string) {
	s.body.WriteKey(schema, key)
}

func (s *shapeSerializer) CloseMap() {
	s.body.CloseMap()
}

// Package schema builds the per-shape compile-time descriptor tree consumed
// by the protocol codecs and code emitter: HTTP bindings, serial kind, and
// member layout, derived from the shape graph and its traits.
package schema

import (
	"github.com/smithygen/smithy-codegen/ident"
	"github.com/smithygen/smithy-codegen/model"
)

// Binding names where a structure member's value is carried on the wire.
type Binding int

const (
	BindingNone Binding = iota
	BindingPath
	BindingQuery
	BindingQueryParams
	BindingHeader
	BindingHeaderPrefix
	BindingPayload
	BindingBody
	BindingStatusCode
)

func (b Binding) String() string {
	switch b {
	case BindingPath:
		return "path"
	case BindingQuery:
		return "query"
	case BindingQueryParams:
		return "query_params"
	case BindingHeader:
		return "header"
	case BindingHeaderPrefix:
		return "header_prefix"
	case BindingPayload:
		return "payload"
	case BindingBody:
		return "body"
	case BindingStatusCode:
		return "status_code"
	default:
		return "none"
	}
}

// SerialKind names the wire-level shape kind used to pick a codec routine,
// distinct from the in-memory model.ShapeType because it also encodes
// sparse/set/timestamp-format variants.
type SerialKind int

const (
	SerialUnknown SerialKind = iota
	SerialString
	SerialBlob
	SerialBoolean
	SerialByte
	SerialShort
	SerialInteger
	SerialLong
	SerialFloat
	SerialDouble
	SerialBigInteger
	SerialBigDecimal
	SerialListDense
	SerialListSparse
	SerialSet
	SerialMap
	SerialStructure
	SerialTaggedUnion
	SerialStrEnum
	SerialIntEnum
	SerialTimestampEpochSeconds
	SerialTimestampDateTime
	SerialTimestampHTTPDate
	SerialDocument
)

// TimestampFormat names one of the three wire encodings for a timestamp.
type TimestampFormat int

const (
	TimestampDateTime TimestampFormat = iota
	TimestampHTTPDate
	TimestampEpochSeconds
)

// MemberSchema describes one structure/union member's wire layout.
type MemberSchema struct {
	Name       string
	Target     ident.ID
	Binding    Binding
	Required   bool
	HeaderName string
	QueryName  string
	PrefixName string

	XMLName      string
	XMLAttribute bool
	XMLFlattened bool
	XMLNamespace string
	XMLPrefix    string
}

// Descriptor is the compile-time schema for a single shape: its serial
// kind, HTTP method and URI (if it is an operation with @http), and
// per-member layout.
type Descriptor struct {
	ShapeID ident.ID
	Kind    SerialKind

	// list/set/map
	MemberSchema *MemberSchema
	KeySchema    *MemberSchema
	ValueSchema  *MemberSchema
	Sparse       bool
	UniqueItems  bool

	// structure/union
	Members []MemberSchema

	// HTTP operation binding, when ShapeID is an operation carrying @http.
	HTTPMethod string
	HTTPURI    string

	TimestampFormat TimestampFormat

	// Name overrides
	XMLName      string
	XMLNamespace string
	XMLPrefix    string
}

// Builder derives Descriptors for every shape reachable in a symbol
// projection, deterministically, by inspecting the model's traits.
type Builder struct {
	Model *model.Model
}

// NewBuilder returns a Builder over m.
func NewBuilder(m *model.Model) *Builder {
	return &Builder{Model: m}
}

// Build derives the Descriptor for a single shape id. Callers typically
// invoke this once per id in a symbols.Provider's reachable set.
func (b *Builder) Build(id ident.ID, isOperationInput bool) (*Descriptor, error) {
	s, ok := b.Model.Shape[id]
	if !ok {
		return nil, &Error{Kind: "UnknownShape", ID: id}
	}
	d := &Descriptor{ShapeID: id, TimestampFormat: TimestampDateTime}

	if xn, ok := b.trait(id, "smithy.api#xmlName"); ok {
		d.XMLName = xn.(*model.XMLNameTrait).Value
	}
	if xns, ok := b.trait(id, "smithy.api#xmlNamespace"); ok {
		ns := xns.(*model.XMLNamespaceTrait)
		d.XMLNamespace, d.XMLPrefix = ns.URI, ns.Prefix
	}

	switch s.Type {
	case model.ShapeString:
		d.Kind = SerialString
	case model.ShapeBlob:
		d.Kind = SerialBlob
	case model.ShapeBoolean:
		d.Kind = SerialBoolean
	case model.ShapeByte:
		d.Kind = SerialByte
	case model.ShapeShort:
		d.Kind = SerialShort
	case model.ShapeInteger:
		d.Kind = SerialInteger
	case model.ShapeLong:
		d.Kind = SerialLong
	case model.ShapeFloat:
		d.Kind = SerialFloat
	case model.ShapeDouble:
		d.Kind = SerialDouble
	case model.ShapeBigInteger:
		d.Kind = SerialBigInteger
	case model.ShapeBigDecimal:
		d.Kind = SerialBigDecimal
	case model.ShapeDocument:
		d.Kind = SerialDocument
	case model.ShapeTimestamp:
		d.Kind = SerialTimestampDateTime
	case model.ShapeEnum:
		d.Kind = SerialStrEnum
	case model.ShapeIntEnum:
		d.Kind = SerialIntEnum
	case model.ShapeList:
		_, sparse := b.trait(id, "smithy.api#sparse")
		_, unique := b.trait(id, "smithy.api#uniqueItems")
		d.Sparse = sparse
		d.UniqueItems = unique
		if unique {
			d.Kind = SerialSet
		} else if sparse {
			d.Kind = SerialListSparse
		} else {
			d.Kind = SerialListDense
		}
		if s.Member != nil {
			d.MemberSchema = b.memberSchemaFor(s.Member, "member")
		}
	case model.ShapeMap:
		d.Kind = SerialMap
		if s.Key != nil {
			d.KeySchema = b.memberSchemaFor(s.Key, "key")
		}
		if s.Value != nil {
			d.ValueSchema = b.memberSchemaFor(s.Value, "value")
		}
	case model.ShapeStructure:
		d.Kind = SerialStructure
		if _, iserr := b.trait(id, "smithy.api#error"); iserr {
			// error structures are still serialized as ordinary
			// structures; fault classification lives in errresolve.
		}
		d.Members = b.buildMembers(s, isOperationInput)
	case model.ShapeUnion:
		d.Kind = SerialTaggedUnion
		d.Members = b.buildMembers(s, isOperationInput)
	case model.ShapeOperation:
		if ht, ok := b.trait(id, "smithy.api#http"); ok {
			h := ht.(*model.HTTPTrait)
			d.HTTPMethod, d.HTTPURI = h.Method, h.URI
		}
	}

	return d, nil
}

func (b *Builder) buildMembers(s *model.Shape, isOperationInput bool) []MemberSchema {
	var out []MemberSchema
	for _, m := range s.Members {
		ms := *b.memberSchemaFor(&m, m.Name)
		ms.Required = !isOperationInput && ms.Required
		out = append(out, ms)
	}
	return out
}

func (b *Builder) memberSchemaFor(m *model.Member, fallbackName string) *MemberSchema {
	id := m.ID
	ms := &MemberSchema{Name: m.Name, Target: m.Target}
	_ = fallbackName

	if _, ok := b.trait(id, "smithy.api#required"); ok {
		ms.Required = true
	}
	if _, ok := b.trait(id, "smithy.api#default"); ok {
		ms.Required = true
	}
	if _, ok := b.trait(id, "smithy.api#clientOptional"); ok {
		ms.Required = false
	}

	if _, ok := b.trait(id, "smithy.api#httpLabel"); ok {
		ms.Binding = BindingPath
	}
	if v, ok := b.trait(id, "smithy.api#httpQuery"); ok {
		ms.Binding = BindingQuery
		ms.QueryName = v.(*model.HTTPQueryTrait).Name
	}
	if _, ok := b.trait(id, "smithy.api#httpQueryParams"); ok {
		ms.Binding = BindingQueryParams
	}
	if v, ok := b.trait(id, "smithy.api#httpHeader"); ok {
		ms.Binding = BindingHeader
		ms.HeaderName = v.(*model.HTTPHeaderTrait).Name
	}
	if v, ok := b.trait(id, "smithy.api#httpPrefixHeaders"); ok {
		ms.Binding = BindingHeaderPrefix
		ms.PrefixName = v.(*model.HTTPPrefixHeadersTrait).Prefix
	}
	if _, ok := b.trait(id, "smithy.api#httpPayload"); ok {
		ms.Binding = BindingPayload
	}
	if _, ok := b.trait(id, "smithy.api#httpResponseCode"); ok {
		ms.Binding = BindingStatusCode
	}
	if ms.Binding == BindingNone {
		ms.Binding = BindingBody
	}

	if v, ok := b.trait(id, "smithy.api#xmlName"); ok {
		ms.XMLName = v.(*model.XMLNameTrait).Value
	} else {
		ms.XMLName = m.Name
	}
	if _, ok := b.trait(id, "smithy.api#xmlAttribute"); ok {
		ms.XMLAttribute = true
	}
	if _, ok := b.trait(id, "smithy.api#xmlFlattened"); ok {
		ms.XMLFlattened = true
	}
	if v, ok := b.trait(id, "smithy.api#xmlNamespace"); ok {
		ns := v.(*model.XMLNamespaceTrait)
		ms.XMLNamespace, ms.XMLPrefix = ns.URI, ns.Prefix
	}

	return ms
}

// trait looks up a named trait on a member's own shape id (traits attached
// directly to `Parent$member`, which is how the parser stores them).
func (b *Builder) trait(id ident.ID, traitName string) (interface{}, bool) {
	traitID := b.Model.Interner.Intern(traitName)
	return b.Model.Trait(id, traitID)
}

// Error is returned for schema-build failures.
type Error struct {
	Kind string
	ID   ident.ID
}

func (e *Error) Error() string { return "schema: " + e.Kind }

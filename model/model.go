// Package model holds the raw Smithy model produced by parsing a JSON AST,
// and the traits registry used to interpret trait payloads attached to
// shapes.
package model

import "github.com/smithygen/smithy-codegen/ident"

// ShapeType discriminates the kind of a Shape.
type ShapeType int

const (
	ShapeUnknown ShapeType = iota
	ShapeBlob
	ShapeBoolean
	ShapeString
	ShapeByte
	ShapeShort
	ShapeInteger
	ShapeLong
	ShapeFloat
	ShapeDouble
	ShapeBigInteger
	ShapeBigDecimal
	ShapeTimestamp
	ShapeDocument
	ShapeUnit
	ShapeList
	ShapeMap
	ShapeStructure
	ShapeUnion
	ShapeEnum
	ShapeIntEnum
	ShapeOperation
	ShapeResource
	ShapeService
	ShapeMember
)

func (t ShapeType) String() string {
	switch t {
	case ShapeBlob:
		return "blob"
	case ShapeBoolean:
		return "boolean"
	case ShapeString:
		return "string"
	case ShapeByte:
		return "byte"
	case ShapeShort:
		return "short"
	case ShapeInteger:
		return "integer"
	case ShapeLong:
		return "long"
	case ShapeFloat:
		return "float"
	case ShapeDouble:
		return "double"
	case ShapeBigInteger:
		return "bigInteger"
	case ShapeBigDecimal:
		return "bigDecimal"
	case ShapeTimestamp:
		return "timestamp"
	case ShapeDocument:
		return "document"
	case ShapeUnit:
		return "unit"
	case ShapeList:
		return "list"
	case ShapeMap:
		return "map"
	case ShapeStructure:
		return "structure"
	case ShapeUnion:
		return "union"
	case ShapeEnum:
		return "enum"
	case ShapeIntEnum:
		return "intEnum"
	case ShapeOperation:
		return "operation"
	case ShapeResource:
		return "resource"
	case ShapeService:
		return "service"
	case ShapeMember:
		return "member"
	default:
		return "unknown"
	}
}

var primitiveTypes = map[string]ShapeType{
	"blob": ShapeBlob, "boolean": ShapeBoolean, "string": ShapeString,
	"byte": ShapeByte, "short": ShapeShort, "integer": ShapeInteger,
	"long": ShapeLong, "float": ShapeFloat, "double": ShapeDouble,
	"bigInteger": ShapeBigInteger, "bigDecimal": ShapeBigDecimal,
	"timestamp": ShapeTimestamp, "document": ShapeDocument, "unit": ShapeUnit,
}

// Member references a target shape with a local member name, used for
// structure/union members, operation input/output, etc. ID is the member's
// own shape id (`parent$member`), distinct from Target, which is the shape
// the member refers to; traits attached directly to the member (required,
// httpLabel, xmlName, …) are keyed by ID.
type Member struct {
	Name   string
	Target ident.ID
	ID     ident.ID
}

// Shape is a tagged variant over the Smithy shape kinds. Depending on Type,
// only the relevant fields are populated.
type Shape struct {
	ID   ident.ID
	Type ShapeType

	// list/set
	Member *Member

	// map
	Key   *Member
	Value *Member

	// structure/union/enum/intEnum
	Members []Member

	// service
	Version    string
	Operations []ident.ID
	Resources  []ident.ID
	Errors     []ident.ID
	Rename     map[string]string

	// resource
	Identifiers   map[string]ident.ID
	Properties    map[string]ident.ID
	Create        *ident.ID
	Put           *ident.ID
	Read          *ident.ID
	Update        *ident.ID
	Delete        *ident.ID
	List          *ident.ID
	CollectionOps []ident.ID

	// operation
	Input  *ident.ID
	Output *ident.ID
}

// TraitValue pairs a trait's shape ID with its parsed, opaque payload.
type TraitValue struct {
	TraitID ident.ID
	Payload interface{}
}

// Model is the mutable result of parsing a Smithy JSON AST: a set of maps
// keyed by interned shape ID, owned by the parser for the duration of a
// single model load.
type Model struct {
	Interner *ident.Interner

	Meta   map[string]interface{}
	Shape  map[ident.ID]*Shape
	Name   map[ident.ID]string
	Traits map[ident.ID][]TraitValue
	Mixins map[ident.ID][]ident.ID

	ServiceID ident.ID
}

// NewModel returns an empty Model ready for the parser to populate.
func NewModel() *Model {
	return &Model{
		Interner: ident.NewInterner(),
		Meta:     make(map[string]interface{}),
		Shape:    make(map[ident.ID]*Shape),
		Name:     make(map[ident.ID]string),
		Traits:   make(map[ident.ID][]TraitValue),
		Mixins:   make(map[ident.ID][]ident.ID),
	}
}

// PutShape registers a shape under its canonical name, returning its ID.
func (m *Model) PutShape(name string, s *Shape) ident.ID {
	id := m.Interner.Intern(name)
	s.ID = id
	m.Shape[id] = s
	m.Name[id] = name
	return id
}

// AddTrait appends a trait value to shape id's trait slice. Later applies
// append rather than replace, matching Smithy's concatenative apply
// semantics.
func (m *Model) AddTrait(id ident.ID, tv TraitValue) {
	m.Traits[id] = append(m.Traits[id], tv)
}

// HasTrait reports whether shape id carries a trait with the given trait ID.
func (m *Model) HasTrait(id ident.ID, traitID ident.ID) bool {
	for _, tv := range m.Traits[id] {
		if tv.TraitID == traitID {
			return true
		}
	}
	return false
}

// Trait returns the first trait payload on id matching traitID.
func (m *Model) Trait(id ident.ID, traitID ident.ID) (interface{}, bool) {
	for _, tv := range m.Traits[id] {
		if tv.TraitID == traitID {
			return tv.Payload, true
		}
	}
	return nil, false
}

// ResolveTarget follows `target` indirection shapes (aliases) to the
// underlying non-alias shape, detecting cycles.
func (m *Model) ResolveTarget(id ident.ID) (ident.ID, error) {
	visited := map[ident.ID]bool{}
	cur := id
	for {
		if visited[cur] {
			return 0, &ModelError{Kind: "TargetCycle", Msg: "cyclic shape target chain"}
		}
		visited[cur] = true
		s, ok := m.Shape[cur]
		if !ok {
			return cur, nil
		}
		if s.Type != ShapeUnknown || s.Member == nil {
			return cur, nil
		}
		cur = s.Member.Target
	}
}

// ModelError is returned for structural model errors detected outside the
// parser's token-level scanning (e.g. during shape graph resolution).
type ModelError struct {
	Kind string
	Msg  string
}

func (e *ModelError) Error() string { return "model: " + e.Kind + ": " + e.Msg }

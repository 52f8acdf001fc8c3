package model

import (
	"fmt"
	"io"

	"github.com/smithygen/smithy-codegen/ident"
	"github.com/smithygen/smithy-codegen/jsonstream"
)

// Policy controls how the parser reacts to recoverable anomalies: an
// unknown JSON object property, or an unknown trait id.
type Policy int

const (
	// PolicyAbort fails the parse immediately with a sentinel error.
	PolicyAbort Policy = iota
	// PolicySkip records an Issue and continues parsing.
	PolicySkip
)

// Issue records a recoverable anomaly encountered while parsing under
// PolicySkip.
type Issue struct {
	Shape   string
	Message string
}

// Options configures a single parse run.
type Options struct {
	// PropertyPolicy governs unrecognized JSON object keys.
	PropertyPolicy Policy
	// TraitPolicy governs unrecognized trait shape ids.
	TraitPolicy Policy
}

// Parser drives a jsonstream.Reader over a full Smithy JSON AST document,
// building a Model. One Parser instance should be used for a single model
// document.
type Parser struct {
	opts     Options
	registry *Registry
	model    *Model
	issues   []Issue
}

// NewParser returns a Parser that will populate model using reg to resolve
// trait payloads.
func NewParser(model *Model, reg *Registry, opts Options) *Parser {
	return &Parser{opts: opts, registry: reg, model: model}
}

// Issues returns the anomalies recorded under PolicySkip during Parse.
func (p *Parser) Issues() []Issue { return p.issues }

// ParseError is a fatal, non-recoverable parse failure.
type ParseError struct {
	Kind string
	Msg  string
}

func (e *ParseError) Error() string { return fmt.Sprintf("model: %s: %s", e.Kind, e.Msg) }

// Parse reads a complete Smithy 2.0 JSON AST document from r into the
// Parser's Model.
func (p *Parser) Parse(r io.Reader) error {
	jr := jsonstream.NewReader(r)
	return jr.NextScope(jsonstream.KindObjectBegin, func(jr *jsonstream.Reader) error {
		key, err := jr.NextString()
		if err != nil {
			return err
		}
		switch key {
		case "smithy":
			return p.parseVersion(jr)
		case "metadata":
			return p.parseMetadata(jr)
		case "shapes":
			return p.parseShapes(jr)
		default:
			return p.handleUnknownProperty(jr, "<root>", key)
		}
	})
}

func (p *Parser) parseVersion(jr *jsonstream.Reader) error {
	v, err := jr.NextString()
	if err != nil {
		return err
	}
	if v != "2" && v != "2.0" {
		return &ParseError{Kind: "InvalidVersion", Msg: fmt.Sprintf("unsupported smithy version %q", v)}
	}
	return nil
}

func (p *Parser) parseMetadata(jr *jsonstream.Reader) error {
	return jr.NextScope(jsonstream.KindObjectBegin, func(jr *jsonstream.Reader) error {
		key, err := jr.NextString()
		if err != nil {
			return err
		}
		v, err := decodeAny(jr)
		if err != nil {
			return err
		}
		p.model.Meta[key] = v
		return nil
	})
}

func (p *Parser) parseShapes(jr *jsonstream.Reader) error {
	return jr.NextScope(jsonstream.KindObjectBegin, func(jr *jsonstream.Reader) error {
		name, err := jr.NextString()
		if err != nil {
			return err
		}
		return p.parseShapeBody(jr, name)
	})
}

func (p *Parser) parseShapeBody(jr *jsonstream.Reader, name string) error {
	var shapeType string
	var traitsTok bool
	shape := &Shape{}
	var mixins []string
	members := map[string]*Member{}
	var memberOrder []string

	err := jr.NextScope(jsonstream.KindObjectBegin, func(jr *jsonstream.Reader) error {
		key, err := jr.NextString()
		if err != nil {
			return err
		}
		switch key {
		case "type":
			shapeType, err = jr.NextString()
		case "traits":
			traitsTok = true
			err = p.parseTraitsInto(jr, name)
		case "member":
			m, e := p.parseMemberBody(jr, name, "member")
			if e != nil {
				return e
			}
			shape.Member = m
		case "key":
			m, e := p.parseMemberBody(jr, name, "key")
			if e != nil {
				return e
			}
			shape.Key = m
		case "value":
			m, e := p.parseMemberBody(jr, name, "value")
			if e != nil {
				return e
			}
			shape.Value = m
		case "members":
			err = jr.NextScope(jsonstream.KindObjectBegin, func(jr *jsonstream.Reader) error {
				mname, err := jr.NextString()
				if err != nil {
					return err
				}
				mref, err := p.parseMemberBody(jr, name, mname)
				if err != nil {
					return err
				}
				members[mname] = mref
				memberOrder = append(memberOrder, mname)
				return nil
			})
		case "target":
			var t string
			t, err = jr.NextString()
			if err == nil {
				shape.Member = &Member{Name: "target", Target: p.model.Interner.Intern(t)}
			}
		case "mixins":
			err = jr.NextScope(jsonstream.KindArrayBegin, func(jr *jsonstream.Reader) error {
				return p.parseShapeIDRefInto(jr, &mixins)
			})
		case "version":
			shape.Version, err = jr.NextString()
		case "input":
			id, e := p.parseShapeIDRef(jr)
			if e != nil {
				return e
			}
			shape.Input = &id
		case "output":
			id, e := p.parseShapeIDRef(jr)
			if e != nil {
				return e
			}
			shape.Output = &id
		case "operations":
			shape.Operations, err = p.parseShapeIDRefList(jr)
		case "resources":
			shape.Resources, err = p.parseShapeIDRefList(jr)
		case "errors":
			shape.Errors, err = p.parseShapeIDRefList(jr)
		case "collectionOperations":
			shape.CollectionOps, err = p.parseShapeIDRefList(jr)
		case "identifiers":
			shape.Identifiers, err = p.parseShapeIDRefMap(jr)
		case "properties":
			shape.Properties, err = p.parseShapeIDRefMap(jr)
		case "create":
			id, e := p.parseShapeIDRef(jr)
			if e != nil {
				return e
			}
			shape.Create = &id
		case "put":
			id, e := p.parseShapeIDRef(jr)
			if e != nil {
				return e
			}
			shape.Put = &id
		case "read":
			id, e := p.parseShapeIDRef(jr)
			if e != nil {
				return e
			}
			shape.Read = &id
		case "update":
			id, e := p.parseShapeIDRef(jr)
			if e != nil {
				return e
			}
			shape.Update = &id
		case "delete":
			id, e := p.parseShapeIDRef(jr)
			if e != nil {
				return e
			}
			shape.Delete = &id
		case "list":
			id, e := p.parseShapeIDRef(jr)
			if e != nil {
				return e
			}
			shape.List = &id
		case "rename":
			shape.Rename, err = p.parseStringMap(jr)
		default:
			err = p.handleUnknownProperty(jr, name, key)
		}
		return err
	})
	if err != nil {
		return err
	}
	_ = traitsTok

	if shapeType == "apply" {
		// apply shapes contribute only traits, already merged above; no
		// new shape is created.
		return nil
	}

	st, ok := smithyTypeToShapeType(shapeType)
	if !ok {
		if p.opts.PropertyPolicy == PolicySkip {
			p.issues = append(p.issues, Issue{Shape: name, Message: "UnknownType: " + shapeType})
			return nil
		}
		return &ParseError{Kind: "UnknownType", Msg: shapeType}
	}
	shape.Type = st

	for _, mname := range memberOrder {
		memberID := p.model.Interner.Intern(name + "$" + mname)
		shape.Members = append(shape.Members, Member{Name: mname, Target: members[mname].Target, ID: memberID})
	}

	p.model.PutShape(name, shape)
	for _, mname := range memberOrder {
		p.model.PutShape(name+"$"+mname, &Shape{Type: ShapeMember, Member: members[mname]})
	}
	if len(mixins) > 0 {
		id := p.model.Interner.Intern(name)
		for _, mx := range mixins {
			p.model.Mixins[id] = append(p.model.Mixins[id], p.model.Interner.Intern(mx))
		}
	}
	if st == ShapeService {
		p.model.ServiceID = p.model.Interner.Intern(name)
	}
	return nil
}

func (p *Parser) parseMemberBody(jr *jsonstream.Reader, parentName, memberName string) (*Member, error) {
	ref := &Member{Name: memberName, ID: p.model.Interner.Intern(parentName + "$" + memberName)}
	err := jr.NextScope(jsonstream.KindObjectBegin, func(jr *jsonstream.Reader) error {
		key, err := jr.NextString()
		if err != nil {
			return err
		}
		switch key {
		case "target":
			t, err := jr.NextString()
			if err != nil {
				return err
			}
			ref.Target = p.model.Interner.Intern(t)
			return nil
		case "traits":
			return p.parseTraitsInto(jr, parentName+"$"+memberName)
		default:
			return p.handleUnknownProperty(jr, parentName+"$"+memberName, key)
		}
	})
	return ref, err
}

func (p *Parser) parseTraitsInto(jr *jsonstream.Reader, shapeName string) error {
	id := p.model.Interner.Intern(shapeName)
	return jr.NextScope(jsonstream.KindObjectBegin, func(jr *jsonstream.Reader) error {
		traitName, err := jr.NextString()
		if err != nil {
			return err
		}
		traitID := p.model.Interner.Intern(traitName)
		parser, ok := p.registry.Lookup(traitID)
		if !ok {
			if p.opts.TraitPolicy == PolicySkip {
				p.issues = append(p.issues, Issue{Shape: shapeName, Message: "UnknownTrait: " + traitName})
				return jr.SkipValueOrScope()
			}
			return &UnknownTraitError{Name: traitName}
		}
		payload, err := parser(jr)
		if err != nil {
			return err
		}
		p.model.AddTrait(id, TraitValue{TraitID: traitID, Payload: payload})
		return nil
	})
}

func (p *Parser) parseShapeIDRef(jr *jsonstream.Reader) (ident.ID, error) {
	var id ident.ID
	err := jr.NextScope(jsonstream.KindObjectBegin, func(jr *jsonstream.Reader) error {
		key, err := jr.NextString()
		if err != nil {
			return err
		}
		if key == "target" {
			t, err := jr.NextString()
			if err != nil {
				return err
			}
			id = p.model.Interner.Intern(t)
			return nil
		}
		return p.handleUnknownProperty(jr, "<ref>", key)
	})
	return id, err
}

func (p *Parser) parseShapeIDRefList(jr *jsonstream.Reader) ([]ident.ID, error) {
	var out []ident.ID
	err := jr.NextScope(jsonstream.KindArrayBegin, func(jr *jsonstream.Reader) error {
		id, err := p.parseShapeIDRef(jr)
		if err != nil {
			return err
		}
		out = append(out, id)
		return nil
	})
	return out, err
}

func (p *Parser) parseShapeIDRefMap(jr *jsonstream.Reader) (map[string]ident.ID, error) {
	out := map[string]ident.ID{}
	err := jr.NextScope(jsonstream.KindObjectBegin, func(jr *jsonstream.Reader) error {
		key, err := jr.NextString()
		if err != nil {
			return err
		}
		t, err := jr.NextString()
		if err != nil {
			return err
		}
		out[key] = p.model.Interner.Intern(t)
		return nil
	})
	return out, err
}

func (p *Parser) parseStringMap(jr *jsonstream.Reader) (map[string]string, error) {
	out := map[string]string{}
	err := jr.NextScope(jsonstream.KindObjectBegin, func(jr *jsonstream.Reader) error {
		key, err := jr.NextString()
		if err != nil {
			return err
		}
		v, err := jr.NextString()
		if err != nil {
			return err
		}
		out[key] = v
		return nil
	})
	return out, err
}

func (p *Parser) parseShapeIDRefInto(jr *jsonstream.Reader, out *[]string) error {
	id, err := p.parseShapeIDRef(jr)
	if err != nil {
		return err
	}
	name, _ := p.model.Interner.Name(id)
	*out = append(*out, name)
	return nil
}

func (p *Parser) handleUnknownProperty(jr *jsonstream.Reader, shape, key string) error {
	if p.opts.PropertyPolicy == PolicySkip {
		p.issues = append(p.issues, Issue{Shape: shape, Message: "UnknownProperty: " + key})
		return jr.SkipValueOrScope()
	}
	return &ParseError{Kind: "UnknownProperty", Msg: fmt.Sprintf("%s: %s", shape, key)}
}

func smithyTypeToShapeType(t string) (ShapeType, bool) {
	if pt, ok := primitiveTypes[t]; ok {
		return pt, true
	}
	switch t {
	case "list", "set":
		return ShapeList, true
	case "map":
		return ShapeMap, true
	case "structure":
		return ShapeStructure, true
	case "union":
		return ShapeUnion, true
	case "enum":
		return ShapeEnum, true
	case "intEnum":
		return ShapeIntEnum, true
	case "operation":
		return ShapeOperation, true
	case "resource":
		return ShapeResource, true
	case "service":
		return ShapeService, true
	case "member":
		return ShapeMember, true
	default:
		return ShapeUnknown, false
	}
}

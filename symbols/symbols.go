// Package symbols projects a parsed model.Model into an immutable,
// queryable view: the set of operations and data shapes reachable from a
// service, with a deterministic emission order for the code emitter to
// drive.
package symbols

import (
	"sort"
	"strings"

	"github.com/smithygen/smithy-codegen/ident"
	"github.com/smithygen/smithy-codegen/model"
)

// Provider is an immutable, reachability-closed projection of a Model
// rooted at a single service shape.
type Provider struct {
	Model *model.Model

	ServiceID ident.ID

	Operations  []ident.ID
	DataShapes  []ident.ID
	Errors      []ident.ID
	AuthSchemes []string

	visited map[ident.ID]bool
	queue   []ident.ID
}

// Project walks m starting at serviceID, classifying every reachable shape
// and building the emission queue. It is the sole entry point into this
// package; the returned Provider is ready for read-only queries.
func Project(m *model.Model, serviceID ident.ID) (*Provider, error) {
	p := &Provider{
		Model:     m,
		ServiceID: serviceID,
		visited:   map[ident.ID]bool{},
	}
	if err := p.walkService(serviceID); err != nil {
		return nil, err
	}
	p.AuthSchemes = p.detectAuthSchemes(serviceID)
	return p, nil
}

func (p *Provider) enqueue(id ident.ID) {
	if p.visited[id] {
		return
	}
	p.visited[id] = true
	p.queue = append(p.queue, id)
}

// Visited reports whether id has already been walked.
func (p *Provider) Visited(id ident.ID) bool { return p.visited[id] }

// Next drains the FIFO emission queue primed during the reachability walk,
// returning false once exhausted.
func (p *Provider) Next() (ident.ID, bool) {
	if len(p.queue) == 0 {
		return 0, false
	}
	id := p.queue[0]
	p.queue = p.queue[1:]
	return id, true
}

func (p *Provider) walkService(id ident.ID) error {
	p.enqueue(id)
	s, ok := p.Model.Shape[id]
	if !ok || s.Type != model.ShapeService {
		return &Error{Kind: "NotAService", ID: id}
	}
	for _, opID := range s.Operations {
		if err := p.walkOperation(opID); err != nil {
			return err
		}
	}
	for _, resID := range s.Resources {
		if err := p.walkResource(resID); err != nil {
			return err
		}
	}
	return nil
}

func (p *Provider) walkResource(id ident.ID) error {
	if p.visited[id] {
		return nil
	}
	p.enqueue(id)
	s, ok := p.Model.Shape[id]
	if !ok || s.Type != model.ShapeResource {
		return &Error{Kind: "UnknownResource", ID: id}
	}
	lifecycle := []*ident.ID{s.Create, s.Put, s.Read, s.Update, s.Delete, s.List}
	for _, op := range lifecycle {
		if op != nil {
			if err := p.walkOperation(*op); err != nil {
				return err
			}
		}
	}
	for _, opID := range s.Operations {
		if err := p.walkOperation(opID); err != nil {
			return err
		}
	}
	for _, opID := range s.CollectionOps {
		if err := p.walkOperation(opID); err != nil {
			return err
		}
	}
	for _, childID := range s.Resources {
		if err := p.walkResource(childID); err != nil {
			return err
		}
	}
	return nil
}

func (p *Provider) walkOperation(id ident.ID) error {
	if p.visited[id] {
		return nil
	}
	p.enqueue(id)
	p.Operations = append(p.Operations, id)

	s, ok := p.Model.Shape[id]
	if !ok || s.Type != model.ShapeOperation {
		return &Error{Kind: "UnknownOperation", ID: id}
	}
	if s.Input != nil {
		if err := p.walkDataShape(*s.Input); err != nil {
			return err
		}
	}
	if s.Output != nil {
		if err := p.walkDataShape(*s.Output); err != nil {
			return err
		}
	}
	for _, errID := range s.Errors {
		if err := p.walkError(errID); err != nil {
			return err
		}
	}
	return nil
}

func (p *Provider) walkError(id ident.ID) error {
	if p.visited[id] {
		return nil
	}
	p.enqueue(id)
	p.Errors = append(p.Errors, id)
	return p.walkMembers(id)
}

func (p *Provider) walkDataShape(id ident.ID) error {
	if p.visited[id] {
		return nil
	}

	s, ok := p.Model.Shape[id]
	if !ok {
		p.enqueue(id)
		return nil
	}

	switch s.Type {
	case model.ShapeStructure, model.ShapeUnion:
		if isErrorShape(p.Model, id) {
			return p.walkError(id)
		}
		p.enqueue(id)
		p.DataShapes = append(p.DataShapes, id)
		return p.walkMembers(id)
	case model.ShapeEnum, model.ShapeIntEnum:
		p.enqueue(id)
		p.DataShapes = append(p.DataShapes, id)
		return nil
	case model.ShapeList:
		p.enqueue(id)
		if s.Member != nil {
			return p.walkDataShape(s.Member.Target)
		}
		return nil
	case model.ShapeMap:
		p.enqueue(id)
		var err error
		if s.Key != nil {
			if err = p.walkDataShape(s.Key.Target); err != nil {
				return err
			}
		}
		if s.Value != nil {
			return p.walkDataShape(s.Value.Target)
		}
		return nil
	case model.ShapeMember:
		p.enqueue(id)
		if s.Member != nil {
			return p.walkDataShape(s.Member.Target)
		}
		return nil
	default:
		// primitives and unit/document/target aliases only contribute to
		// the walk, never the data-shape list.
		p.enqueue(id)
		return nil
	}
}

func (p *Provider) walkMembers(id ident.ID) error {
	s, ok := p.Model.Shape[id]
	if !ok {
		return nil
	}
	for _, m := range s.Members {
		if err := p.walkDataShape(m.Target); err != nil {
			return err
		}
	}
	return nil
}

func isErrorShape(m *model.Model, id ident.ID) bool {
	errTraitID := m.Interner.Intern("smithy.api#error")
	return m.HasTrait(id, errTraitID)
}

func (p *Provider) detectAuthSchemes(serviceID ident.ID) []string {
	checks := map[string]string{
		"smithy.api#httpBasicAuth":  "httpBasicAuth",
		"smithy.api#httpBearerAuth": "httpBearerAuth",
		"smithy.api#httpDigestAuth": "httpDigestAuth",
		"smithy.api#httpApiKeyAuth": "httpApiKeyAuth",
	}
	var found []string
	for traitName, schemeName := range checks {
		id := p.Model.Interner.Intern(traitName)
		if p.Model.HasTrait(serviceID, id) {
			found = append(found, schemeName)
		}
	}
	sort.Slice(found, func(i, j int) bool {
		return strings.ToLower(found[i]) < strings.ToLower(found[j])
	})
	return found
}

// Error is returned for structural problems encountered while projecting a
// symbol graph (e.g. a dangling reference to an unmodeled shape kind).
type Error struct {
	Kind string
	ID   ident.ID
}

func (e *Error) Error() string {
	return "symbols: " + e.Kind
}

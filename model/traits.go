package model

import (
	"fmt"
	"sync"

	"github.com/smithygen/smithy-codegen/ident"
	"github.com/smithygen/smithy-codegen/jsonstream"
)

// TraitParser parses a trait's JSON payload (positioned at the value
// immediately following the trait's shape-id key in a `traits` object) into
// an opaque, trait-specific Go value.
type TraitParser func(r *jsonstream.Reader) (interface{}, error)

// Registry maps trait shape ID to its parser callback. Registration is
// additive, normally performed once at pipeline startup before any model is
// parsed.
type Registry struct {
	mu      sync.RWMutex
	parsers map[ident.ID]TraitParser
	names   map[ident.ID]string
}

// NewRegistry returns a Registry pre-populated with parsers for every
// built-in Smithy trait named in the data model.
func NewRegistry(in *ident.Interner) *Registry {
	reg := &Registry{
		parsers: make(map[ident.ID]TraitParser),
		names:   make(map[ident.ID]string),
	}
	reg.registerBuiltins(in)
	return reg
}

// Register adds or replaces the parser for a trait shape ID.
func (r *Registry) Register(in *ident.Interner, name string, p TraitParser) ident.ID {
	id := in.Intern(name)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parsers[id] = p
	r.names[id] = name
	return id
}

// Lookup returns the parser registered for traitID, if any.
func (r *Registry) Lookup(traitID ident.ID) (TraitParser, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.parsers[traitID]
	return p, ok
}

// Name returns the trait's absolute shape name, if registered.
func (r *Registry) Name(traitID ident.ID) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.names[traitID]
	return n, ok
}

// UnknownTraitError is returned by the parser when it encounters a trait id
// with no registered parser and the active TraitPolicy is PolicyAbort.
type UnknownTraitError struct {
	Name string
}

func (e *UnknownTraitError) Error() string {
	return fmt.Sprintf("model: unknown trait %q", e.Name)
}

// --- Built-in trait payload types ---

// DocumentationTrait holds the `@documentation` trait's markdown/HTML body.
type DocumentationTrait struct{ Value string }

// ErrorTrait marks a structure as a modeled error with a fault side
// ("client" or "server").
type ErrorTrait struct{ Fault string }

// RetryableTrait marks an error as retryable, optionally as throttling.
type RetryableTrait struct{ Throttling bool }

// HTTPErrorTrait binds a fixed HTTP status code to an error shape.
type HTTPErrorTrait struct{ Code int }

// HTTPTrait carries the `@http` binding for an operation.
type HTTPTrait struct {
	Method string
	URI    string
	Code   int
}

// HTTPLabelTrait marks a member as bound to a URI path label.
type HTTPLabelTrait struct{}

// HTTPQueryTrait binds a member to a named query string parameter.
type HTTPQueryTrait struct{ Name string }

// HTTPQueryParamsTrait binds a map member to all unmodeled query params.
type HTTPQueryParamsTrait struct{}

// HTTPHeaderTrait binds a member to a named HTTP header.
type HTTPHeaderTrait struct{ Name string }

// HTTPPrefixHeadersTrait binds a map member to all headers with a prefix.
type HTTPPrefixHeadersTrait struct{ Prefix string }

// HTTPPayloadTrait marks a member as the sole HTTP payload body.
type HTTPPayloadTrait struct{}

// HTTPResponseCodeTrait binds an integer member to the HTTP status code.
type HTTPResponseCodeTrait struct{}

// RequiredTrait marks a member as required.
type RequiredTrait struct{}

// DefaultTrait carries a member's modeled zero/default value.
type DefaultTrait struct{ Value interface{} }

// ClientOptionalTrait forces a member to be treated as optional client-side
// even if Required or Default would otherwise apply.
type ClientOptionalTrait struct{}

// SparseTrait marks a list/map as permitting null members/values.
type SparseTrait struct{}

// UniqueItemsTrait marks a list as a set with unique elements.
type UniqueItemsTrait struct{}

// EnumValueTrait carries an enum member's wire string or integer value.
type EnumValueTrait struct {
	String string
	Int    int64
	IsInt  bool
}

// InputTrait marks a structure as the input of exactly one operation.
type InputTrait struct{}

// OutputTrait marks a structure as the output of exactly one operation.
type OutputTrait struct{}

// MediaTypeTrait carries a blob/string member's MIME media type.
type MediaTypeTrait struct{ Value string }

// XMLAttributeTrait marks a member as an XML attribute rather than element.
type XMLAttributeTrait struct{}

// XMLFlattenedTrait marks a list/map as flattened (no wrapper element).
type XMLFlattenedTrait struct{}

// XMLNameTrait overrides a shape or member's XML element/attribute name.
type XMLNameTrait struct{ Value string }

// XMLNamespaceTrait carries an XML namespace URI and optional prefix.
type XMLNamespaceTrait struct {
	URI    string
	Prefix string
}

// EndpointRuleSetTrait carries the service's endpoint rule-set document as a
// raw, unparsed JSON-like tree (the endpoint codegen component parses it).
type EndpointRuleSetTrait struct{ Raw interface{} }

// EndpointTestsTrait carries the service's endpoint test-case document.
type EndpointTestsTrait struct{ Raw interface{} }

// HTTPBasicAuthTrait marks a service as supporting HTTP Basic auth.
type HTTPBasicAuthTrait struct{}

// HTTPBearerAuthTrait marks a service as supporting HTTP Bearer auth.
type HTTPBearerAuthTrait struct{}

// HTTPDigestAuthTrait marks a service as supporting HTTP Digest auth.
type HTTPDigestAuthTrait struct{}

// HTTPAPIKeyAuthTrait marks a service as supporting an API key auth scheme.
type HTTPAPIKeyAuthTrait struct {
	Name   string
	In     string
	Scheme string
}

func (r *Registry) registerBuiltins(in *ident.Interner) {
	reg := func(name string, p TraitParser) {
		id := in.Intern(name)
		r.parsers[id] = p
		r.names[id] = name
	}

	reg("smithy.api#documentation", func(r *jsonstream.Reader) (interface{}, error) {
		s, err := r.NextString()
		return &DocumentationTrait{Value: s}, err
	})
	reg("smithy.api#error", func(r *jsonstream.Reader) (interface{}, error) {
		s, err := r.NextString()
		return &ErrorTrait{Fault: s}, err
	})
	reg("smithy.api#retryable", func(r *jsonstream.Reader) (interface{}, error) {
		out := &RetryableTrait{}
		err := r.NextScope(jsonstream.KindObjectBegin, func(r *jsonstream.Reader) error {
			key, err := r.NextString()
			if err != nil {
				return err
			}
			if key == "throttling" {
				v, err := r.NextBoolean()
				if err != nil {
					return err
				}
				out.Throttling = v
				return nil
			}
			return r.SkipValueOrScope()
		})
		return out, err
	})
	reg("smithy.api#httpError", func(r *jsonstream.Reader) (interface{}, error) {
		n, err := r.NextInteger()
		return &HTTPErrorTrait{Code: int(n)}, err
	})
	reg("smithy.api#http", func(r *jsonstream.Reader) (interface{}, error) {
		out := &HTTPTrait{}
		err := r.NextScope(jsonstream.KindObjectBegin, func(r *jsonstream.Reader) error {
			key, err := r.NextString()
			if err != nil {
				return err
			}
			switch key {
			case "method":
				out.Method, err = r.NextString()
			case "uri":
				out.URI, err = r.NextString()
			case "code":
				var n int64
				n, err = r.NextInteger()
				out.Code = int(n)
			default:
				err = r.SkipValueOrScope()
			}
			return err
		})
		return out, err
	})
	reg("smithy.api#httpLabel", scopelessTrue(func() interface{} { return &HTTPLabelTrait{} }))
	reg("smithy.api#httpQuery", func(r *jsonstream.Reader) (interface{}, error) {
		s, err := r.NextString()
		return &HTTPQueryTrait{Name: s}, err
	})
	reg("smithy.api#httpQueryParams", scopelessTrue(func() interface{} { return &HTTPQueryParamsTrait{} }))
	reg("smithy.api#httpHeader", func(r *jsonstream.Reader) (interface{}, error) {
		s, err := r.NextString()
		return &HTTPHeaderTrait{Name: s}, err
	})
	reg("smithy.api#httpPrefixHeaders", func(r *jsonstream.Reader) (interface{}, error) {
		s, err := r.NextString()
		return &HTTPPrefixHeadersTrait{Prefix: s}, err
	})
	reg("smithy.api#httpPayload", scopelessTrue(func() interface{} { return &HTTPPayloadTrait{} }))
	reg("smithy.api#httpResponseCode", scopelessTrue(func() interface{} { return &HTTPResponseCodeTrait{} }))
	reg("smithy.api#required", scopelessTrue(func() interface{} { return &RequiredTrait{} }))
	reg("smithy.api#default", func(r *jsonstream.Reader) (interface{}, error) {
		v, err := decodeAny(r)
		return &DefaultTrait{Value: v}, err
	})
	reg("smithy.api#clientOptional", scopelessTrue(func() interface{} { return &ClientOptionalTrait{} }))
	reg("smithy.api#sparse", scopelessTrue(func() interface{} { return &SparseTrait{} }))
	reg("smithy.api#uniqueItems", scopelessTrue(func() interface{} { return &UniqueItemsTrait{} }))
	reg("smithy.api#enumValue", func(r *jsonstream.Reader) (interface{}, error) {
		kind, err := r.Peek()
		if err != nil {
			return nil, err
		}
		if kind == jsonstream.KindString {
			s, err := r.NextString()
			return &EnumValueTrait{String: s}, err
		}
		n, err := r.NextInteger()
		return &EnumValueTrait{Int: n, IsInt: true}, err
	})
	reg("smithy.api#input", scopelessTrue(func() interface{} { return &InputTrait{} }))
	reg("smithy.api#output", scopelessTrue(func() interface{} { return &OutputTrait{} }))
	reg("smithy.api#mediaType", func(r *jsonstream.Reader) (interface{}, error) {
		s, err := r.NextString()
		return &MediaTypeTrait{Value: s}, err
	})
	reg("smithy.api#xmlAttribute", scopelessTrue(func() interface{} { return &XMLAttributeTrait{} }))
	reg("smithy.api#xmlFlattened", scopelessTrue(func() interface{} { return &XMLFlattenedTrait{} }))
	reg("smithy.api#xmlName", func(r *jsonstream.Reader) (interface{}, error) {
		s, err := r.NextString()
		return &XMLNameTrait{Value: s}, err
	})
	reg("smithy.api#xmlNamespace", func(r *jsonstream.Reader) (interface{}, error) {
		out := &XMLNamespaceTrait{}
		err := r.NextScope(jsonstream.KindObjectBegin, func(r *jsonstream.Reader) error {
			key, err := r.NextString()
			if err != nil {
				return err
			}
			switch key {
			case "uri":
				out.URI, err = r.NextString()
			case "prefix":
				out.Prefix, err = r.NextString()
			default:
				err = r.SkipValueOrScope()
			}
			return err
		})
		return out, err
	})
	reg("smithy.api#endpointRuleSet", func(r *jsonstream.Reader) (interface{}, error) {
		v, err := decodeAny(r)
		return &EndpointRuleSetTrait{Raw: v}, err
	})
	reg("smithy.api#endpointTests", func(r *jsonstream.Reader) (interface{}, error) {
		v, err := decodeAny(r)
		return &EndpointTestsTrait{Raw: v}, err
	})
	reg("smithy.api#httpBasicAuth", scopelessTrue(func() interface{} { return &HTTPBasicAuthTrait{} }))
	reg("smithy.api#httpBearerAuth", scopelessTrue(func() interface{} { return &HTTPBearerAuthTrait{} }))
	reg("smithy.api#httpDigestAuth", scopelessTrue(func() interface{} { return &HTTPDigestAuthTrait{} }))
	reg("smithy.api#httpApiKeyAuth", func(r *jsonstream.Reader) (interface{}, error) {
		out := &HTTPAPIKeyAuthTrait{}
		err := r.NextScope(jsonstream.KindObjectBegin, func(r *jsonstream.Reader) error {
			key, err := r.NextString()
			if err != nil {
				return err
			}
			switch key {
			case "name":
				out.Name, err = r.NextString()
			case "in":
				out.In, err = r.NextString()
			case "scheme":
				out.Scheme, err = r.NextString()
			default:
				err = r.SkipValueOrScope()
			}
			return err
		})
		return out, err
	})
}

// scopelessTrue builds a parser for traits whose value is always `{}` (or
// absent content of interest): it skips whatever value follows and returns
// a constructed marker value.
func scopelessTrue(ctor func() interface{}) TraitParser {
	return func(r *jsonstream.Reader) (interface{}, error) {
		if err := r.SkipValueOrScope(); err != nil {
			return nil, err
		}
		return ctor(), nil
	}
}

// decodeAny decodes an arbitrary JSON value into generic Go values (used for
// trait payloads with no fixed schema, such as endpoint rule-sets).
func decodeAny(r *jsonstream.Reader) (interface{}, error) {
	kind, err := r.Peek()
	if err != nil {
		return nil, err
	}
	switch kind {
	case jsonstream.KindObjectBegin:
		out := map[string]interface{}{}
		err := r.NextScope(jsonstream.KindObjectBegin, func(r *jsonstream.Reader) error {
			key, err := r.NextString()
			if err != nil {
				return err
			}
			v, err := decodeAny(r)
			if err != nil {
				return err
			}
			out[key] = v
			return nil
		})
		return out, err
	case jsonstream.KindArrayBegin:
		var out []interface{}
		err := r.NextScope(jsonstream.KindArrayBegin, func(r *jsonstream.Reader) error {
			v, err := decodeAny(r)
			if err != nil {
				return err
			}
			out = append(out, v)
			return nil
		})
		return out, err
	case jsonstream.KindString:
		return r.NextString()
	case jsonstream.KindNumber:
		return r.NextNumber()
	case jsonstream.KindBoolean:
		return r.NextBoolean()
	case jsonstream.KindNull:
		_, err := r.Next()
		return nil, err
	default:
		return nil, fmt.Errorf("model: unexpected token kind %v", kind)
	}
}
